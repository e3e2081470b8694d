package productfeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
  {"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack","category":"men's clothing","image":"https://example.test/1.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
  {"id":2,"title":"Slim Fit T-Shirt","price":44.6,"description":"Slim-fitting style","category":"men's clothing","image":"https://example.test/2.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
]`

func newClient(url string) *Client {
	return NewClient(url, 5*time.Second, logrus.New())
}

func TestFetchTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sample))
	}))
	defer server.Close()

	creates, err := newClient(server.URL).FetchTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, creates, 2)

	assert.Equal(t, "Fjallraven Backpack", creates[0].Title)
	assert.Equal(t, 329.85, creates[0].Price)
	assert.False(t, creates[0].Sold)
	assert.Equal(t, time.Date(2021, time.November, 27, 14, 59, 54, 0, time.UTC), creates[0].DateOfSale)
	assert.Equal(t, time.UTC, creates[0].DateOfSale.Location())
	assert.True(t, creates[1].Sold)
	assert.Equal(t, "men's clothing", creates[1].Category)
}

func TestFetchTransactions_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newClient(server.URL).FetchTransactions(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "503")
}

func TestFetchTransactions_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).FetchTransactions(context.Background())
	assert.ErrorContains(t, err, "failed to decode response")
}

func TestFetchTransactions_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newClient(url).FetchTransactions(context.Background())
	assert.ErrorContains(t, err, "request failed")
}

func TestFetchTransactions_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newClient(server.URL).FetchTransactions(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchTransactions_SkipsEntriesWithoutDateOfSale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
  {"id":1,"title":"dated","price":10,"category":"a","dateOfSale":"2022-01-15T10:00:00Z"},
  {"id":2,"title":"undated","price":20,"category":"a"},
  {"id":3,"title":"null date","price":30,"category":"a","dateOfSale":null}
]`))
	}))
	defer server.Close()

	creates, err := newClient(server.URL).FetchTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, creates, 1)
	assert.Equal(t, "dated", creates[0].Title)
}

func TestToCreate(t *testing.T) {
	sold := time.Date(2022, time.March, 5, 23, 30, 0, 0, time.FixedZone("IST", 19800))

	create, err := (&Product{ID: 7, Title: "Ring", Price: 100.004, DateOfSale: &sold}).ToCreate()
	require.NoError(t, err)
	assert.Equal(t, 100.0, create.Price)
	assert.Equal(t, time.Date(2022, time.March, 5, 18, 0, 0, 0, time.UTC), create.DateOfSale)

	create, err = (&Product{Price: 109.955, DateOfSale: &sold}).ToCreate()
	require.NoError(t, err)
	assert.Equal(t, 109.96, create.Price)

	_, err = (&Product{ID: 8, Title: "Undated"}).ToCreate()
	assert.ErrorIs(t, err, ErrMissingDateOfSale)
	assert.ErrorContains(t, err, "product 8")
}
