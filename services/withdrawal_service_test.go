package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/models"
	"github.com/arnav1824/stagepass_admin/mutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettlementFixture(t *testing.T, handler http.Handler) (*WithdrawalService, *QueryService) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw := gateway.NewClient(server.URL, "key", gateway.NewMemoryTokenStore())
	qc := cache.New(cache.DefaultTTL)
	engine := mutation.NewEngine(qc)
	return NewWithdrawalService(gw, engine, qc, nil, nil), NewQueryService(gw, qc)
}

func TestRejectWithoutNoteSkipsNetwork(t *testing.T) {
	var requests int64
	svc, _ := newSettlementFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))

	_, err := svc.Reject(context.Background(), "W1", "", "admin@stagepass.in")
	require.ErrorIs(t, err, ErrNoteRequired)
	_, err = svc.Reject(context.Background(), "W1", "   ", "admin@stagepass.in")
	require.ErrorIs(t, err, ErrNoteRequired)

	assert.Equal(t, int64(0), atomic.LoadInt64(&requests))
}

func TestProcessSettlesAndExposesLedgerTransaction(t *testing.T) {
	var puts int64

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/admin/withdrawals/W1/status":
			atomic.AddInt64(&puts, 1)
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "processed", body["status"])
			assert.NotContains(t, body, "adminNotes")
			json.NewEncoder(w).Encode(models.WithdrawRequest{
				ID:          "W1",
				Status:      models.WithdrawalProcessed,
				Amount:      5000,
				Transaction: &models.LinkedTransaction{ID: "TX9"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/withdrawals/W1":
			json.NewEncoder(w).Encode(models.WithdrawRequest{
				ID:     "W1",
				Status: models.WithdrawalProcessed,
				Amount: 5000,
				Transaction: &models.LinkedTransaction{
					ID:          "TX9",
					Transaction: &models.WalletTransaction{ID: "TX9", Type: "debit", Amount: 5000},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	svc, queries := newSettlementFixture(t, handler)

	updated, err := svc.Process(context.Background(), "W1", "admin@stagepass.in")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalProcessed, updated.Status)
	assert.Equal(t, int64(1), atomic.LoadInt64(&puts))

	detail, err := queries.Withdrawal(context.Background(), "W1")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalProcessed, detail.Status)
	require.NotNil(t, detail.Transaction)
	require.NotNil(t, detail.Transaction.Transaction)
	assert.Equal(t, "TX9", detail.Transaction.Transaction.ID)
}

func TestDuplicateProcessCollapsesToOneUpstreamCall(t *testing.T) {
	var puts int64
	started := make(chan struct{})
	release := make(chan struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&puts, 1)
		close(started)
		<-release
		json.NewEncoder(w).Encode(models.WithdrawRequest{ID: "W1", Status: models.WithdrawalProcessed})
	})

	svc, _ := newSettlementFixture(t, handler)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Process(context.Background(), "W1", "admin@stagepass.in")
		done <- err
	}()

	<-started
	_, err := svc.Process(context.Background(), "W1", "admin@stagepass.in")
	require.ErrorIs(t, err, mutation.ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int64(1), atomic.LoadInt64(&puts), "the rapid second click must not produce a second upstream call")
}

func TestDistinctRequestsSettleConcurrently(t *testing.T) {
	arrivals := make(chan string, 2)
	release := make(chan struct{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arrivals <- r.URL.Path
		<-release
		json.NewEncoder(w).Encode(models.WithdrawRequest{ID: "W"})
	})

	svc, _ := newSettlementFixture(t, handler)

	errs := make(chan error, 2)
	go func() {
		_, err := svc.Process(context.Background(), "W-A", "admin@stagepass.in")
		errs <- err
	}()
	go func() {
		_, err := svc.Reject(context.Background(), "W-B", "Invalid account details", "admin@stagepass.in")
		errs <- err
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-arrivals:
		case <-time.After(time.Second):
			t.Fatal("settling one request blocked the other")
		}
	}

	close(release)
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestStatsFallsBackToLocalDerivation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/withdrawals/stats":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "aggregation unavailable"})
		case "/api/admin/withdrawals":
			json.NewEncoder(w).Encode([]models.WithdrawRequest{
				{ID: "W1", Status: models.WithdrawalPending, Amount: 1500},
				{ID: "W2", Status: models.WithdrawalProcessed, Amount: 2000},
				{ID: "W3", Status: models.WithdrawalRejected, Amount: 900},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	svc, _ := newSettlementFixture(t, handler)

	cards, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 4)
	assert.Equal(t, models.StatValue("3"), cards[0].Value)
	assert.Equal(t, "₹1500.00 total amount", cards[1].Subtitle)
	assert.Equal(t, "₹2000.00 disbursed", cards[2].Subtitle)
	assert.Equal(t, models.StatValue("1"), cards[3].Value)
}

func TestComputeStatsBucketsByStatus(t *testing.T) {
	requests := []models.WithdrawRequest{
		{Status: models.WithdrawalPending, Amount: 100},
		{Status: models.WithdrawalPending, Amount: 250.5},
		{Status: models.WithdrawalProcessed, Amount: 4000},
		{Status: models.WithdrawalRejected, Amount: 75},
	}

	cards := ComputeStats(requests)
	require.Len(t, cards, 4)
	assert.Equal(t, models.StatValue("4"), cards[0].Value)
	assert.Equal(t, models.StatValue("2"), cards[1].Value)
	assert.Equal(t, "₹350.50 total amount", cards[1].Subtitle)
	assert.Equal(t, models.StatValue("1"), cards[2].Value)
	assert.Equal(t, "₹4000.00 disbursed", cards[2].Subtitle)
	assert.Equal(t, models.StatValue("1"), cards[3].Value)
}
