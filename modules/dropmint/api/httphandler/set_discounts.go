package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	"github.com/gofiber/fiber/v2"
)

type setDiscountsRequest struct {
	ID                     int64  `params:"id"`
	Caller                 string `json:"caller"`
	AnnualPassAddress      string `json:"annualPassAddress"`
	LifetimePassAddress    string `json:"lifetimePassAddress"`
	AnnualAllowListPrice   string `json:"annualAllowListPrice"`
	AnnualGeneralPrice     string `json:"annualGeneralPrice"`
	LifetimeAllowListPrice string `json:"lifetimeAllowListPrice"`
	LifetimeGeneralPrice   string `json:"lifetimeGeneralPrice"`
}

func (r setDiscountsRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.AnnualPassAddress != "" && !isWalletAddress(r.AnnualPassAddress) {
		errList = append(errList, errors.Errorf("annualPassAddress '%s' is not a valid address", r.AnnualPassAddress))
	}
	if r.LifetimePassAddress != "" && !isWalletAddress(r.LifetimePassAddress) {
		errList = append(errList, errors.Errorf("lifetimePassAddress '%s' is not a valid address", r.LifetimePassAddress))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setDiscountsResult struct {
	Updated bool `json:"updated"`
}

type setDiscountsResponse = HttpResponse[setDiscountsResult]

func (h *HttpHandler) SetDiscounts(ctx *fiber.Ctx) (err error) {
	var req setDiscountsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	annualAllowListPrice, err := parseWei(req.AnnualAllowListPrice)
	if err != nil {
		return errors.WithStack(err)
	}
	annualGeneralPrice, err := parseWei(req.AnnualGeneralPrice)
	if err != nil {
		return errors.WithStack(err)
	}
	lifetimeAllowListPrice, err := parseWei(req.LifetimeAllowListPrice)
	if err != nil {
		return errors.WithStack(err)
	}
	lifetimeGeneralPrice, err := parseWei(req.LifetimeGeneralPrice)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.SetDiscounts(ctx.UserContext(), req.ID, req.Caller, engine.SetDiscountsParams{
		AnnualPassAddress:      req.AnnualPassAddress,
		LifetimePassAddress:    req.LifetimePassAddress,
		AnnualAllowListPrice:   annualAllowListPrice,
		AnnualGeneralPrice:     annualGeneralPrice,
		LifetimeAllowListPrice: lifetimeAllowListPrice,
		LifetimeGeneralPrice:   lifetimeGeneralPrice,
	}); err != nil {
		return errors.Wrap(publicError(err), "error during SetDiscounts")
	}

	resp := setDiscountsResponse{
		Result: &setDiscountsResult{
			Updated: true,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
