package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrBraceletNotFound = errors.New("bracelet not found")
	ErrBraceletInactive = errors.New("bracelet is inactive")
	ErrCharmNotFound    = errors.New("charm not found")

	// Design errors
	ErrDesignNotFound    = errors.New("design not found")
	ErrAlreadyOrdered    = errors.New("design is already ordered")
	ErrUnknownCharm      = errors.New("unknown charm referenced by placement")
	ErrInsufficientStock = errors.New("insufficient charm stock")
	ErrPlacementLimit    = errors.New("placement limit exceeded for charm")

	// Order / checkout errors
	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
