package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/models"
	"github.com/arnav1824/stagepass_admin/mutation"
	"gorm.io/gorm"
)

// ErrNoteRequired blocks a withdrawal rejection before any network call when
// no admin note was supplied.
var ErrNoteRequired = errors.New("an admin note is required to reject a withdrawal")

// WithdrawalService drives payout settlement: pending -> processed or
// pending -> rejected, both terminal. The in-flight guard is per request id,
// so approving one request never blocks rejecting another, while two rapid
// actions on the same request collapse to one upstream call.
type WithdrawalService struct {
	Gateway *gateway.Client
	Engine  *mutation.Engine
	Cache   *cache.QueryCache
	DB      *gorm.DB
	Hub     Notifier
}

func NewWithdrawalService(gw *gateway.Client, engine *mutation.Engine, qc *cache.QueryCache, db *gorm.DB, hub Notifier) *WithdrawalService {
	return &WithdrawalService{Gateway: gw, Engine: engine, Cache: qc, DB: db, Hub: hub}
}

func withdrawalInvalidations(id string) []string {
	return []string{
		cache.Key("withdraw-requests"),
		cache.Key("withdrawal-request", id),
		cache.Key("withdrawal-stats"),
	}
}

// Process settles a pending request. The linked ledger transaction id is
// established upstream; callers see it on the post-invalidation refetch.
func (s *WithdrawalService) Process(ctx context.Context, id, adminEmail string) (*models.WithdrawRequest, error) {
	target := cache.Key("withdrawal-request", id)

	var updated *models.WithdrawRequest
	err := s.Engine.Run(target, withdrawalInvalidations(id), func() error {
		var err error
		updated, err = s.Gateway.UpdateWithdrawalStatus(ctx, id, models.WithdrawalProcessed, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	recordAudit(s.DB, adminEmail, "withdrawal.processed", "withdrawal", id, nil)
	notify(s.Hub, "withdrawal.processed", "withdrawal", id, "Request approved successfully")
	return updated, nil
}

func (s *WithdrawalService) Reject(ctx context.Context, id, adminNotes, adminEmail string) (*models.WithdrawRequest, error) {
	adminNotes = strings.TrimSpace(adminNotes)
	if adminNotes == "" {
		return nil, ErrNoteRequired
	}

	target := cache.Key("withdrawal-request", id)

	var updated *models.WithdrawRequest
	err := s.Engine.Run(target, withdrawalInvalidations(id), func() error {
		var err error
		updated, err = s.Gateway.UpdateWithdrawalStatus(ctx, id, models.WithdrawalRejected, adminNotes)
		return err
	})
	if err != nil {
		return nil, err
	}

	recordAudit(s.DB, adminEmail, "withdrawal.rejected", "withdrawal", id, &adminNotes)
	notify(s.Hub, "withdrawal.rejected", "withdrawal", id, "Request rejected successfully")
	return updated, nil
}

// Stats serves the withdrawal stat cards. The upstream aggregate endpoint is
// preferred; when it fails the cards are derived locally from the cached
// collection, which keeps them a pure function of the list the admin is
// looking at.
func (s *WithdrawalService) Stats(ctx context.Context) ([]models.StatCard, error) {
	v, err := s.Cache.Get(ctx, cache.Key("withdrawal-stats"), func(ctx context.Context) (any, error) {
		stats, err := s.Gateway.WithdrawalStats(ctx)
		if err == nil {
			return stats, nil
		}

		requests, listErr := s.Gateway.ListWithdrawals(ctx)
		if listErr != nil {
			return nil, err
		}
		return ComputeStats(requests), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.StatCard), nil
}

// ComputeStats derives the stat cards from the withdrawal collection. It
// must stay a pure function: the cards and the list are invalidated
// together, so they can never drift apart.
func ComputeStats(requests []models.WithdrawRequest) []models.StatCard {
	var pending, processed, rejected int
	var pendingAmount, disbursed float64

	for _, r := range requests {
		switch r.Status {
		case models.WithdrawalPending:
			pending++
			pendingAmount += r.Amount
		case models.WithdrawalProcessed:
			processed++
			disbursed += r.Amount
		case models.WithdrawalRejected:
			rejected++
		}
	}

	return []models.StatCard{
		{
			Title:    "Total Requests",
			Value:    models.StatValue(strconv.Itoa(len(requests))),
			Subtitle: "All time requests",
			Icon:     "wallet",
			Variant:  "default",
		},
		{
			Title:    "Pending",
			Value:    models.StatValue(strconv.Itoa(pending)),
			Subtitle: fmt.Sprintf("₹%.2f total amount", pendingAmount),
			Icon:     "clock",
			Variant:  "primary",
		},
		{
			Title:    "Approved",
			Value:    models.StatValue(strconv.Itoa(processed)),
			Subtitle: fmt.Sprintf("₹%.2f disbursed", disbursed),
			Icon:     "check-circle",
			Variant:  "success",
		},
		{
			Title:    "Rejected",
			Value:    models.StatValue(strconv.Itoa(rejected)),
			Subtitle: "Due to invalid details",
			Icon:     "x-circle",
			Variant:  "accent",
		},
	}
}
