package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/transactions-report/internal/logging"
)

type Handler struct {
	Backend string
}

func NewHandler(backend string) Handler {
	return Handler{Backend: backend}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request) error {
	logData := logging.GetLogData(req.Context())
	logData.AddData("backend", h.Backend)

	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

// ServeHTTP adapts Handler for a router, recording any error on the request's LogData.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := h.Handler(w, req); err != nil {
		logging.GetLogData(req.Context()).AddData("error", err.Error())
	}
}
