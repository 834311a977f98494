package ratesapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ebanking/portal_backend/internal/adapters/ratesapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"GBP":0.79,"EUR":0.92}}`))
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.True(t, decimal.RequireFromString("0.79").Equal(rates["GBP"]))
	assert.True(t, decimal.RequireFromString("0.92").Equal(rates["EUR"]))
}

func TestFetchRates_TrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Write([]byte(`{"base":"USD","rates":{"GBP":0.79}}`))
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL + "/")
	_, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
}

func TestFetchRates_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL)
	rates, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Nil(t, rates)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchRates_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":`))
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
}

func TestFetchRates_MissingRatesField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD"}`))
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rates field")
}

func TestFetchRates_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"base":"USD","rates":{"GBP":0.79}}`))
	}))
	defer server.Close()

	client := ratesapi.NewClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchRates(ctx, "USD")

	require.Error(t, err)
}
