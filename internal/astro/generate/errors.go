package generate

import "errors"

// Engine errors. Generation is deterministic, so none of these are worth
// retrying; a failed call produces no instance config at all.
var (
	// ErrUnknownClassification reports a requested key absent from the
	// registry.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrInvalidOverride reports an override that fails basic sanity
	// (undeclared field, non-finite value, or a negative value where the
	// field has no physical meaning for one).
	ErrInvalidOverride = errors.New("invalid override")

	// ErrCompositionFailed reports that a composite generation (binary,
	// merger sequence, population) failed as a whole. Composites never
	// return partial results; the underlying cause is wrapped.
	ErrCompositionFailed = errors.New("composition failed")
)
