package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/operator"
	"github.com/carson-networks/transactions-report/internal/service"
	"github.com/carson-networks/transactions-report/internal/storage"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// syncBuffer lets the test read logs written from server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type stubFetcher struct{}

func (stubFetcher) FetchTransactions(ctx context.Context) ([]*transaction.TransactionCreate, error) {
	return []*transaction.TransactionCreate{
		{Title: "a", Price: 50, Sold: true, Category: "A", DateOfSale: time.Date(2022, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Title: "b", Price: 150, Sold: false, Category: "B", DateOfSale: time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *syncBuffer) {
	t.Helper()

	logs := &syncBuffer{}
	logger := logging.SetupLogging(logrus.InfoLevel)
	logger.Out = logs

	store := storage.NewMemoryStorage()
	delegator := operator.NewOperatorDelegator(store)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	rest := &Rest{
		Logger:         logger,
		Service:        service.NewService(store, stubFetcher{}, delegator),
		Backend:        store.Backend,
		RequestTimeout: 5 * time.Second,
		SeedTimeout:    5 * time.Second,
		AllowedOrigins: []string{"*"},
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server, logs
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRoutes_SeedThenReport(t *testing.T) {
	server, logs := newTestServer(t)

	code, body := get(t, server.URL+"/api/seed")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Database seeded successfully", body)

	code, body = get(t, server.URL+"/api/statistics?month=March")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"totalSaleAmount":200,"soldItems":1,"unsoldItems":1}`, body)

	code, body = get(t, server.URL+"/api/transactions?page=1&perPage=1")
	require.Equal(t, http.StatusOK, code)
	var listing struct {
		Transactions []map[string]interface{} `json:"transactions"`
		Total        int                      `json:"total"`
		Page         int                      `json:"page"`
		PerPage      int                      `json:"perPage"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Len(t, listing.Transactions, 1)
	assert.Equal(t, 2, listing.Total)
	assert.Equal(t, 1, listing.PerPage)

	assert.Contains(t, logs.String(), "Handler./api/seed.Complete")
	assert.Contains(t, logs.String(), `"seeded":2`)
}

func TestRoutes_WelcomeAndStatus(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Welcome to the Transactions API!", body)

	code, _ = get(t, server.URL+"/status")
	assert.Equal(t, http.StatusOK, code)

	resp, err := http.Post(server.URL+"/status", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	code, _ = get(t, server.URL+"/openapi.json")
	assert.Equal(t, http.StatusOK, code)
}

func TestRoutes_MissingMonth(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := get(t, server.URL+"/api/bar-chart")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "Month parameter is required")
}

func TestRoutes_CORS(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/pie-chart", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://frontend.test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDeadline(t *testing.T) {
	rest := &Rest{RequestTimeout: time.Second, SeedTimeout: time.Minute}

	var got time.Duration
	handler := rest.deadline(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		deadline, ok := req.Context().Deadline()
		require.True(t, ok)
		got = time.Until(deadline)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/statistics", nil))
	assert.LessOrEqual(t, got, time.Second)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/seed", nil))
	assert.Greater(t, got, time.Minute-time.Second)
}
