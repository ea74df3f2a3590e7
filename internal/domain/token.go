package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability a token carries
type Role string

const (
	// RoleAdmin may manage assets, config, tokens and the freeze list.
	RoleAdmin Role = "ADMIN"
	// RoleOperator may run checkout/check-in/reconciliation cycles.
	RoleOperator Role = "OPERATOR"
)

// CapabilityToken is an unforgeable capability handle. The random token ID
// is the secret presented by callers; possession of a live, unfrozen token
// with the required role is the entire authorization model; there is no
// role inheritance.
type CapabilityToken struct {
	ID       uuid.UUID `json:"id"`
	Role     Role      `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
	Revoked  bool      `json:"revoked"`
	Frozen   bool      `json:"frozen"`
}

// Usable reports whether the token may authorize a call with the given role
func (t *CapabilityToken) Usable(role Role) bool {
	return t != nil && !t.Revoked && !t.Frozen && t.Role == role
}
