package domain

import (
	"time"

	"github.com/iho/ohadacore/internal/money"
)

// ProvisionRecord is a doubtful-debt provision recorded by a closing session.
type ProvisionRecord struct {
	ID           string       `json:"id"             validate:"required"`
	SessionID    string       `json:"session_id"     validate:"required"`
	ThirdPartyID string       `json:"third_party_id" validate:"required"`
	Amount       money.Amount `json:"amount"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ProvisionPatch is a partial update of a provision record.
type ProvisionPatch struct {
	Amount    *money.Amount
	UpdatedAt time.Time
}
