package jobs

import (
	"context"
	"log"
	"time"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/services"
)

const sweepHorizon = 30 * time.Minute

// CacheJobs owns the periodic maintenance of the query cache: dropping
// entries nobody has refreshed in a while and keeping the dashboard keys
// warm so the first admin of the day does not eat the cold fetch.
type CacheJobs struct {
	Cache   *cache.QueryCache
	Queries *services.QueryService
}

func NewCacheJobs(qc *cache.QueryCache, queries *services.QueryService) *CacheJobs {
	return &CacheJobs{Cache: qc, Queries: queries}
}

func (j *CacheJobs) SweepCache() {
	if dropped := j.Cache.Sweep(sweepHorizon); dropped > 0 {
		log.Printf("Cache sweep evicted %d entries", dropped)
	}
}

func (j *CacheJobs) WarmDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if j.needsWarm(cache.Key("dashboard-stats")) {
		if _, err := j.Queries.DashboardStats(ctx); err != nil {
			log.Printf("Dashboard stats warm-up failed: %v", err)
		}
	}
	if j.needsWarm(cache.Key("revenue-chart")) {
		if _, err := j.Queries.RevenueChart(ctx); err != nil {
			log.Printf("Revenue chart warm-up failed: %v", err)
		}
	}
	if j.needsWarm(cache.Key("booking-trends")) {
		if _, err := j.Queries.BookingTrends(ctx); err != nil {
			log.Printf("Booking trends warm-up failed: %v", err)
		}
	}
}

// needsWarm skips keys that are still fresh, so the job only spends upstream
// calls on entries an admin would otherwise eat the cold fetch for.
func (j *CacheJobs) needsWarm(key string) bool {
	res, ok := j.Cache.Peek(key)
	return !ok || res.Stale
}
