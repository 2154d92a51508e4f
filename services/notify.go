package services

import (
	"log"

	"github.com/arnav1824/stagepass_admin/models"
	"github.com/arnav1824/stagepass_admin/websocket"
	"gorm.io/gorm"
)

// Notifier is the push surface for moderation events. Satisfied by
// *websocket.Hub.
type Notifier interface {
	Broadcast(event websocket.ModerationEvent)
}

// recordAudit persists a moderation decision. Audit failures are logged and
// swallowed: the upstream mutation already succeeded and must not be
// reported as failed because the local trail hiccuped.
func recordAudit(db *gorm.DB, adminEmail, action, targetType, targetID string, note *string) {
	if db == nil {
		return
	}
	entry := models.AuditLog{
		AdminEmail: adminEmail,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Note:       note,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to record audit entry for %s on %s: %v", action, targetID, err)
	}
}

func notify(hub Notifier, action, targetType, targetID, message string) {
	if hub == nil {
		return
	}
	hub.Broadcast(websocket.ModerationEvent{
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Message:    message,
	})
}
