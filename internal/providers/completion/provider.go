package completion

import "context"

// Provider condenses a product description into a short marketing blurb.
// Implementations must be safe to call concurrently; failures are reported as
// errors and callers treat them as non-fatal.
type Provider interface {
	ShortDescription(ctx context.Context, description string) (string, error)
}

// NoOp returns an empty description without calling any external service.
type NoOp struct{}

func (NoOp) ShortDescription(context.Context, string) (string, error) { return "", nil }
