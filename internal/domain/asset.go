package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AssetKind represents the kind of custodial asset a record wraps
type AssetKind string

const (
	// AssetKindBalance is a plain fungible balance held by the vault.
	AssetKindBalance AssetKind = "BALANCE"
	// AssetKindPosition is an opaque handle to an external strategy position.
	AssetKindPosition AssetKind = "POSITION"
)

// AssetRecord represents a custodial asset owned by the vault registry.
// At any time a record is owned by exactly one party: the registry, or the
// operator that checked it out. Balances may reach zero, but records are
// never destroyed implicitly.
type AssetRecord struct {
	Key            string          `json:"key"`
	Kind           AssetKind       `json:"kind"`
	Balance        decimal.Decimal `json:"balance"`         // raw units, BALANCE kind only
	Decimals       int32           `json:"decimals"`        // unit scale for BALANCE kind
	PositionHandle string          `json:"position_handle"` // opaque, POSITION kind only
}

// Validate ensures the asset record adheres to domain rules
func (r *AssetRecord) Validate() error {
	if r.Key == "" {
		return errors.New("asset key cannot be empty")
	}

	switch r.Kind {
	case AssetKindBalance:
		if r.Balance.IsNegative() {
			return errors.New("asset balance cannot be negative")
		}
		if r.Decimals < 0 {
			return errors.New("asset decimals cannot be negative")
		}
	case AssetKindPosition:
		if r.PositionHandle == "" {
			return errors.New("position asset must have a position handle")
		}
	default:
		return errors.New("unknown asset kind")
	}

	return nil
}

// Clone returns a deep copy of the record
func (r *AssetRecord) Clone() *AssetRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
