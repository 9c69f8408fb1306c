package domain

import (
	"fmt"

	"github.com/iho/ohadacore/internal/money"
)

// PartyType classifies a third party.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
	PartyBoth     PartyType = "both"
)

// Role is the side of the relationship an analysis looks at.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleSupplier:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// ThirdParty is a customer or supplier. AccountCode is its auxiliary
// receivable/payable account, e.g. "4111002".
type ThirdParty struct {
	ID          string       `json:"id"                     validate:"required"`
	Name        string       `json:"name"`
	Type        PartyType    `json:"type"                   validate:"oneof=customer supplier both"`
	AccountCode string       `json:"account_code,omitempty" validate:"omitempty,alphanum"`
	Balance     money.Amount `json:"balance"`
}

// Plays reports whether the third party acts in the given role.
func (p *ThirdParty) Plays(role Role) bool {
	switch role {
	case RoleCustomer:
		return p.Type == PartyCustomer || p.Type == PartyBoth
	case RoleSupplier:
		return p.Type == PartySupplier || p.Type == PartyBoth
	default:
		return false
	}
}
