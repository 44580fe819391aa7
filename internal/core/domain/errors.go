package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSelection = errors.New("missing selection")
	ErrInvalidInput     = errors.New("invalid input")
	ErrParsing          = errors.New("parsing failed")
	ErrSchemaMismatch   = errors.New("schema mismatch")
	ErrPrediction       = errors.New("prediction failed")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// KindName returns a stable label for the first matching error kind.
func KindName(err error) string {
	switch {
	case err == nil:
		return ""
	case IsKind(err, ErrMissingSelection):
		return "missing_selection"
	case IsKind(err, ErrInvalidInput):
		return "invalid_input"
	case IsKind(err, ErrParsing):
		return "parsing"
	case IsKind(err, ErrSchemaMismatch):
		return "schema_mismatch"
	case IsKind(err, ErrTemporary):
		return "temporary"
	default:
		return "prediction"
	}
}
