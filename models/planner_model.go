package models

import (
	"encoding/json"
	"time"
)

type Planner struct {
	ID                 string             `json:"_id"`
	User               PrincipalUser      `json:"userId"`
	Organization       string             `json:"organization"`
	LogoURL            string             `json:"logoUrl"`
	Location           Location           `json:"location"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	IsVerified         bool               `json:"isVerified"`
}

type PlannerDetails struct {
	Planner
	Wallet           Wallet            `json:"wallet"`
	Bio              string            `json:"bio"`
	Events           []json.RawMessage `json:"events"`
	VerificationNote string            `json:"verificationNote"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}
