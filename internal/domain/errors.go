package domain

import "errors"

// Sentinel errors for the vault error taxonomy.
// Services wrap these with fmt.Errorf("...: %w", err) and callers
// match them with errors.Is.
var (
	// ErrUnauthorized is returned when a capability token is unknown,
	// revoked, frozen, or lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidReading is returned when a price reading is non-positive
	// or not strictly newer than the cached point for its source.
	ErrInvalidReading = errors.New("invalid price reading")

	// ErrStale is returned when a cached price or valuation is at least
	// as old as the staleness window.
	ErrStale = errors.New("stale value")

	// ErrUnavailable is returned when every configured price source for
	// an asset is stale.
	ErrUnavailable = errors.New("no price source available")

	// ErrAssetsNotReturned is returned by check-in when at least one
	// borrowed asset record is missing.
	ErrAssetsNotReturned = errors.New("assets not returned")

	// ErrValueNotUpdated is returned by reconciliation when at least one
	// borrowed asset has not been revalued.
	ErrValueNotUpdated = errors.New("value not updated")

	// ErrLossLimitExceeded is returned when a charge would push the
	// accumulated period loss over the governed limit.
	ErrLossLimitExceeded = errors.New("loss limit exceeded")

	// ErrDoubleCheckout is returned when checking out an asset that is
	// already checked out.
	ErrDoubleCheckout = errors.New("asset already checked out")

	// ErrDoubleCheckin is returned when checking in an asset that is
	// already present in the registry.
	ErrDoubleCheckin = errors.New("asset already checked in")

	// ErrOverflow is returned when a fixed-point conversion would not fit
	// the target representation.
	ErrOverflow = errors.New("numeric overflow")

	// ErrDivisionByZero is returned when a divisor is zero; divisors are
	// asserted immediately before every division.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrVaultBusy is returned when an operation requires Normal status
	// but the vault is mid-operation or disabled.
	ErrVaultBusy = errors.New("vault is not in normal status")

	// ErrAssetNotFound is returned for operations on unknown asset keys.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetExists is returned when adding an asset key that already exists.
	ErrAssetExists = errors.New("asset already exists")

	// ErrSlippageExceeded is returned when an issue or redeem would settle
	// below the request's slippage bound.
	ErrSlippageExceeded = errors.New("slippage bound exceeded")

	// ErrInsufficientLiquidity is returned when a redemption exceeds the
	// vault's free principal.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrReconcileNotArmed is returned when reconciliation is attempted
	// before every borrowed asset has been checked back in.
	ErrReconcileNotArmed = errors.New("reconciliation not armed")

	// ErrAbandonTooEarly is returned when a force-abandon is attempted
	// before the abandon timeout has elapsed.
	ErrAbandonTooEarly = errors.New("abandon timeout not reached")
)
