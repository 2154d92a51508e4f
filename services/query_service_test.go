package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsReadThroughCache(t *testing.T) {
	var fetches int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/transactions", r.URL.Path)
		atomic.AddInt64(&fetches, 1)
		json.NewEncoder(w).Encode([]models.Transaction{
			{
				ID:             "TXN-1",
				EventName:      "Sunburn Goa",
				ArtistName:     "Asha Rao",
				AdvancePayment: 2000,
				TotalPayment:   15000,
				ReceivedAmount: 2000,
				PendingAmount:  13000,
				Status:         "pending",
				Type:           "incoming",
			},
		})
	}))
	t.Cleanup(server.Close)

	gw := gateway.NewClient(server.URL, "key", gateway.NewMemoryTokenStore())
	queries := NewQueryService(gw, cache.New(cache.DefaultTTL))

	transactions, err := queries.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Sunburn Goa", transactions[0].EventName)
	assert.Equal(t, float64(13000), transactions[0].PendingAmount)
	assert.Equal(t, "incoming", transactions[0].Type)

	_, err = queries.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fetches), "the second read inside the window is served from cache")
}
