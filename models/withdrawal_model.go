package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalProcessed WithdrawalStatus = "processed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

type OwnerType string

const (
	OwnerArtist  OwnerType = "artist"
	OwnerPlanner OwnerType = "planner"
)

type PayoutMethod string

const (
	PayoutMethodUPI         PayoutMethod = "upi"
	PayoutMethodBankAccount PayoutMethod = "bank_account"
	PayoutMethodUnknown     PayoutMethod = "unknown"
)

// BankDetails is a variant: either a UPI handle or a full bank account.
type BankDetails struct {
	UPIID             string `json:"upiId,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty"`
	BankName          string `json:"bankName,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
}

func (b BankDetails) Method() PayoutMethod {
	switch {
	case b.UPIID != "":
		return PayoutMethodUPI
	case b.AccountNumber != "":
		return PayoutMethodBankAccount
	default:
		return PayoutMethodUnknown
	}
}

func (b BankDetails) Summary() string {
	switch b.Method() {
	case PayoutMethodUPI:
		return b.UPIID
	case PayoutMethodBankAccount:
		if len(b.AccountNumber) > 4 {
			return fmt.Sprintf("%s ****%s", b.BankName, b.AccountNumber[len(b.AccountNumber)-4:])
		}
		return b.BankName
	default:
		return "Not provided"
	}
}

// WalletTransaction is the ledger entry owned by the accounting subsystem.
// Read-only here.
type WalletTransaction struct {
	ID          string    `json:"_id"`
	OwnerID     string    `json:"ownerId"`
	OwnerType   OwnerType `json:"ownerType"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Source      string    `json:"source"`
	ReferenceID *string   `json:"referenceId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LinkedTransaction is the upstream "transactionId" field, which is either a
// bare ledger transaction id or the populated transaction document.
type LinkedTransaction struct {
	ID          string
	Transaction *WalletTransaction
}

func (lt *LinkedTransaction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &lt.ID)
	}
	var tx WalletTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return err
	}
	lt.ID = tx.ID
	lt.Transaction = &tx
	return nil
}

func (lt LinkedTransaction) MarshalJSON() ([]byte, error) {
	if lt.Transaction != nil {
		return json.Marshal(lt.Transaction)
	}
	if lt.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(lt.ID)
}

type WithdrawRequest struct {
	ID          string             `json:"_id"`
	User        PrincipalUser      `json:"userId"`
	UserType    OwnerType          `json:"userType"`
	Amount      float64            `json:"amount"`
	Status      WithdrawalStatus   `json:"status"`
	BankDetails *BankDetails       `json:"bankDetails,omitempty"`
	Transaction *LinkedTransaction `json:"transactionId,omitempty"`
	AdminNotes  string             `json:"adminNotes,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
