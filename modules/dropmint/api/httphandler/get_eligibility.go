package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getEligibilityRequest struct {
	ID     int64  `params:"id"`
	Wallet string `query:"wallet"`
}

func (r getEligibilityRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getEligibilityResult struct {
	Wallet             string `json:"wallet"`
	Eligible           bool   `json:"eligible"`
	CurrentMintLimit   int64  `json:"currentMintLimit"`
	RemainingAllowance int64  `json:"remainingAllowance"`
}

type getEligibilityResponse = HttpResponse[getEligibilityResult]

func (h *HttpHandler) GetEligibility(ctx *fiber.Ctx) (err error) {
	var req getEligibilityRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	eligible, err := h.engine.IsEligible(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during IsEligible")
	}
	limit, err := h.engine.CurrentMintLimit(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during CurrentMintLimit")
	}
	allowance, err := h.engine.RemainingMintAllowance(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during RemainingMintAllowance")
	}

	resp := getEligibilityResponse{
		Result: &getEligibilityResult{
			Wallet:             req.Wallet,
			Eligible:           eligible,
			CurrentMintLimit:   limit,
			RemainingAllowance: allowance,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
