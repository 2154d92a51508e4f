package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records every moderation decision taken through this console.
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AdminEmail string    `gorm:"size:255;not null" json:"admin_email"`
	Action     string    `gorm:"size:50;not null" json:"action"`
	TargetType string    `gorm:"size:20;not null" json:"target_type"`
	TargetID   string    `gorm:"size:64;not null;index" json:"target_id"`
	Note       *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
