package models

import (
	"encoding/json"
	"time"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// PrincipalUser is the marketplace account embedded in artist and planner
// profiles and in withdrawal requests.
type PrincipalUser struct {
	ID          string `json:"_id"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role,omitempty"`
}

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type Artist struct {
	ID                 string             `json:"_id"`
	User               PrincipalUser      `json:"userId"`
	Location           Location           `json:"location"`
	ProfileImage       string             `json:"profileImage"`
	Category           []string           `json:"category"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	IsVerified         bool               `json:"isVerified"`
}

type Wallet struct {
	Balance       float64             `json:"balance"`
	PendingAmount float64             `json:"pendingAmount"`
	Transactions  []WalletTransaction `json:"transactions"`
}

// Bookings and Calendar are relayed to the UI untouched; the upstream does
// not commit to a stable shape for them.
type ArtistDetails struct {
	Artist
	Wallet           Wallet            `json:"wallet"`
	Bio              string            `json:"bio"`
	Bookings         []json.RawMessage `json:"bookings"`
	WhatsappUpdates  bool              `json:"whatsappUpdates"`
	VerificationNote string            `json:"verificationNote"`
	Calendar         []json.RawMessage `json:"calendar"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
