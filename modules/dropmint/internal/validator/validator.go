package validator

import "github.com/dropforge/drop-engine/common/errs"

// Validator accumulates the outcome of a chain of checks. The first
// failing check wins; later checks short-circuit once Valid is false.
type Validator struct {
	Valid  bool
	Reason string
	Kind   errs.ErrorKind
}

func New() *Validator {
	return &Validator{
		Valid: true,
	}
}

// Fail marks the chain as failed with the given kind and reason. It is
// a no-op if the chain has already failed.
func (v *Validator) Fail(kind errs.ErrorKind, reason string) {
	if !v.Valid {
		return
	}
	v.Valid = false
	v.Reason = reason
	v.Kind = kind
}
