package logging

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingWrapper gives every request its own LogData and emits it once the
// handler returns. Responses with a 5xx status are logged at error level.
func LoggingWrapper(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		loggingName := routeName(req)
		logData := NewLogData(log)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		log.Debugf("Handler.%v.Start", loggingName)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("duration")
		next.ServeHTTP(recorder, req.WithContext(WithLogData(req.Context(), logData)))
		endTimer()

		logData.AddData("status", recorder.status)
		if recorder.status >= http.StatusInternalServerError {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	})
}

func routeName(req *http.Request) string {
	if route := mux.CurrentRoute(req); route != nil {
		if name := route.GetName(); name != "" {
			return name
		}
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return req.URL.Path
}
