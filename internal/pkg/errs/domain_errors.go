package errs

import "errors"

// Error taxonomy shared by the publish flow and the delivery worker
var (
	// Malformed idempotency key or request body. Never opens a transaction.
	ErrValidation = errors.New("validation error")

	// Duplicate key still in progress, or the wait for it timed out. Retriable.
	ErrConflict = errors.New("request with this idempotency key is in progress")

	// Any database failure while claiming, writing the issue, enqueueing, or completing.
	ErrStorage = errors.New("storage error")

	// Worker-side send failure. Never surfaces through the publish response.
	ErrDelivery = errors.New("delivery error")

	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
)

// The email provider refused the message; retrying cannot succeed.
var ErrDeliveryRejected = errors.New("email rejected by provider")
