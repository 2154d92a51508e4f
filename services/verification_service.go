package services

import (
	"context"
	"errors"
	"strings"

	"github.com/arnav1824/stagepass_admin/cache"
	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/mutation"
	"gorm.io/gorm"
)

// ErrReasonRequired blocks a rejection before any network call when the
// reason is blank or whitespace.
var ErrReasonRequired = errors.New("a rejection reason is required")

// VerificationService drives the profile verification lifecycle:
// pending -> verified or pending -> rejected, both terminal. The UI only
// offers these actions for pending profiles; a forced call against a
// settled profile is the server's to refuse, and a refusal leaves the
// cached state untouched.
type VerificationService struct {
	Gateway *gateway.Client
	Engine  *mutation.Engine
	DB      *gorm.DB
	Hub     Notifier
}

func NewVerificationService(gw *gateway.Client, engine *mutation.Engine, db *gorm.DB, hub Notifier) *VerificationService {
	return &VerificationService{Gateway: gw, Engine: engine, DB: db, Hub: hub}
}

func (s *VerificationService) VerifyArtist(ctx context.Context, id, adminEmail string) error {
	target := cache.Key("artist", id)
	invalidates := []string{cache.Key("artists"), target, cache.Key("dashboard-stats")}

	err := s.Engine.Run(target, invalidates, func() error {
		return s.Gateway.VerifyArtist(ctx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(s.DB, adminEmail, "artist.verified", "artist", id, nil)
	notify(s.Hub, "artist.verified", "artist", id, "Artist verified successfully!")
	return nil
}

func (s *VerificationService) RejectArtist(ctx context.Context, id, reason, adminEmail string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}

	target := cache.Key("artist", id)
	invalidates := []string{cache.Key("artists"), target, cache.Key("dashboard-stats")}

	err := s.Engine.Run(target, invalidates, func() error {
		return s.Gateway.RejectArtist(ctx, id, reason)
	})
	if err != nil {
		return err
	}

	recordAudit(s.DB, adminEmail, "artist.rejected", "artist", id, &reason)
	notify(s.Hub, "artist.rejected", "artist", id, "Artist rejected")
	return nil
}

func (s *VerificationService) VerifyPlanner(ctx context.Context, id, adminEmail string) error {
	target := cache.Key("planner", id)
	invalidates := []string{cache.Key("planners"), target, cache.Key("dashboard-stats")}

	err := s.Engine.Run(target, invalidates, func() error {
		return s.Gateway.VerifyPlanner(ctx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(s.DB, adminEmail, "planner.verified", "planner", id, nil)
	notify(s.Hub, "planner.verified", "planner", id, "Planner verified successfully!")
	return nil
}

func (s *VerificationService) RejectPlanner(ctx context.Context, id, reason, adminEmail string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}

	target := cache.Key("planner", id)
	invalidates := []string{cache.Key("planners"), target, cache.Key("dashboard-stats")}

	err := s.Engine.Run(target, invalidates, func() error {
		return s.Gateway.RejectPlanner(ctx, id, reason)
	})
	if err != nil {
		return err
	}

	recordAudit(s.DB, adminEmail, "planner.rejected", "planner", id, &reason)
	notify(s.Hub, "planner.rejected", "planner", id, "Planner rejected")
	return nil
}
