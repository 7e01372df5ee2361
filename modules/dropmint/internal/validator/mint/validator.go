package mintvalidator

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/validator"
	"github.com/holiman/uint256"
)

// MintValidator runs the mint precondition chain. Checks must run in
// order: eligibility, then supply, then per-wallet limit, then payment.
type MintValidator struct {
	validator.Validator
}

func New() *MintValidator {
	v := validator.New()
	return &MintValidator{
		Validator: *v,
	}
}

func (v *MintValidator) Eligible(eligible bool) bool {
	if !v.Valid {
		return false
	}
	if !eligible {
		v.Fail(errs.NotAllowedToMint, NOT_ALLOWED_TO_MINT)
		return v.Valid
	}
	return v.Valid
}

func (v *MintValidator) EnoughSupply(remaining int64, count int64) bool {
	if !v.Valid {
		return false
	}
	if count > remaining {
		v.Fail(errs.NotEnoughSupply, NOT_ENOUGH_SUPPLY)
		return v.Valid
	}
	return v.Valid
}

// WithinMintLimit checks minted + count against the wallet limit.
// A zero or negative limit blocks every mint at this step.
func (v *MintValidator) WithinMintLimit(limit int64, minted int64, count int64) bool {
	if !v.Valid {
		return false
	}
	if minted+count > limit {
		v.Fail(errs.MintingTooMany, MINTING_TOO_MANY)
		return v.Valid
	}
	return v.Valid
}

// ExactPayment requires paid == unitPrice * count. Overpayment is
// rejected the same as underpayment.
func (v *MintValidator) ExactPayment(unitPrice *uint256.Int, count int64, paid *uint256.Int) bool {
	if !v.Valid {
		return false
	}
	total := new(uint256.Int).Mul(unitPrice, uint256.NewInt(uint64(count)))
	if paid == nil {
		paid = uint256.NewInt(0)
	}
	if !total.Eq(paid) {
		v.Fail(errs.WrongPrice, WRONG_PRICE)
		return v.Valid
	}
	return v.Valid
}

// Err converts a failed chain into its error. Returns nil while the
// chain is still valid.
func (v *MintValidator) Err() error {
	if v.Valid {
		return nil
	}
	return errors.Wrap(v.Kind, v.Reason)
}
