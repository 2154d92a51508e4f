package services

import (
	"context"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/models"
)

// QueryService is the read side: every list/detail/stat endpoint resolves
// through the shared query cache before touching the marketplace API.
type QueryService struct {
	Gateway *gateway.Client
	Cache   *cache.QueryCache
}

func NewQueryService(gw *gateway.Client, qc *cache.QueryCache) *QueryService {
	return &QueryService{Gateway: gw, Cache: qc}
}

func (s *QueryService) Artists(ctx context.Context) ([]models.Artist, error) {
	v, err := s.Cache.Get(ctx, cache.Key("artists"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListArtists(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Artist), nil
}

func (s *QueryService) Artist(ctx context.Context, id string) (*models.ArtistDetails, error) {
	v, err := s.Cache.Get(ctx, cache.Key("artist", id), func(ctx context.Context) (any, error) {
		return s.Gateway.GetArtist(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.ArtistDetails), nil
}

func (s *QueryService) Planners(ctx context.Context) ([]models.Planner, error) {
	v, err := s.Cache.Get(ctx, cache.Key("planners"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListPlanners(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Planner), nil
}

func (s *QueryService) Planner(ctx context.Context, id string) (*models.PlannerDetails, error) {
	v, err := s.Cache.Get(ctx, cache.Key("planner", id), func(ctx context.Context) (any, error) {
		return s.Gateway.GetPlanner(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.PlannerDetails), nil
}

func (s *QueryService) Events(ctx context.Context) ([]models.Event, error) {
	v, err := s.Cache.Get(ctx, cache.Key("events"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListEvents(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Event), nil
}

func (s *QueryService) Event(ctx context.Context, id string) (*models.EventDetails, error) {
	v, err := s.Cache.Get(ctx, cache.Key("event", id), func(ctx context.Context) (any, error) {
		return s.Gateway.GetEvent(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.EventDetails), nil
}

func (s *QueryService) Bookings(ctx context.Context) ([]models.BookingSummary, error) {
	v, err := s.Cache.Get(ctx, cache.Key("bookings"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListBookings(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.BookingSummary), nil
}

func (s *QueryService) Booking(ctx context.Context, id string) (*models.BookingDetails, error) {
	v, err := s.Cache.Get(ctx, cache.Key("booking", id), func(ctx context.Context) (any, error) {
		return s.Gateway.GetBooking(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.BookingDetails), nil
}

func (s *QueryService) BookingStats(ctx context.Context) ([]models.StatCard, error) {
	v, err := s.Cache.Get(ctx, cache.Key("booking-stats"), func(ctx context.Context) (any, error) {
		return s.Gateway.BookingStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.StatCard), nil
}

func (s *QueryService) Withdrawals(ctx context.Context) ([]models.WithdrawRequest, error) {
	v, err := s.Cache.Get(ctx, cache.Key("withdraw-requests"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListWithdrawals(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.WithdrawRequest), nil
}

func (s *QueryService) Withdrawal(ctx context.Context, id string) (*models.WithdrawRequest, error) {
	v, err := s.Cache.Get(ctx, cache.Key("withdrawal-request", id), func(ctx context.Context) (any, error) {
		return s.Gateway.GetWithdrawal(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.WithdrawRequest), nil
}

func (s *QueryService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	v, err := s.Cache.Get(ctx, cache.Key("transactions"), func(ctx context.Context) (any, error) {
		return s.Gateway.ListTransactions(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Transaction), nil
}

func (s *QueryService) DashboardStats(ctx context.Context) ([]models.StatCard, error) {
	v, err := s.Cache.Get(ctx, cache.Key("dashboard-stats"), func(ctx context.Context) (any, error) {
		return s.Gateway.DashboardStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.StatCard), nil
}

func (s *QueryService) RevenueChart(ctx context.Context) ([]models.RevenueChartData, error) {
	v, err := s.Cache.Get(ctx, cache.Key("revenue-chart"), func(ctx context.Context) (any, error) {
		return s.Gateway.RevenueChart(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.RevenueChartData), nil
}

func (s *QueryService) BookingTrends(ctx context.Context) ([]models.BookingTrendData, error) {
	v, err := s.Cache.Get(ctx, cache.Key("booking-trends"), func(ctx context.Context) (any, error) {
		return s.Gateway.BookingTrends(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.BookingTrendData), nil
}
