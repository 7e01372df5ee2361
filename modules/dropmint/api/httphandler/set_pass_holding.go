package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type setPassHoldingRequest struct {
	PassAddress string `json:"passAddress"`
	Wallet      string `json:"wallet"`
	Balance     uint64 `json:"balance"`
}

func (r setPassHoldingRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.PassAddress) {
		errList = append(errList, errors.Errorf("passAddress '%s' is not a valid address", r.PassAddress))
	}
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setPassHoldingResult struct {
	Updated bool `json:"updated"`
}

type setPassHoldingResponse = HttpResponse[setPassHoldingResult]

// SetPassHolding upserts a wallet's recorded pass balance. Discount
// quoting reads these balances through the store pass source.
func (h *HttpHandler) SetPassHolding(ctx *fiber.Ctx) (err error) {
	var req setPassHoldingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.SetPassHolding(ctx.UserContext(), req.PassAddress, req.Wallet, req.Balance); err != nil {
		return errors.Wrap(publicError(err), "error during SetPassHolding")
	}

	resp := setPassHoldingResponse{
		Result: &setPassHoldingResult{
			Updated: true,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
