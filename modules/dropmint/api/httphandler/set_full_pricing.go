package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	"github.com/gofiber/fiber/v2"
)

type setFullPricingRequest struct {
	ID                 int64  `params:"id"`
	Caller             string `json:"caller"`
	RoyaltyBPS         int32  `json:"royaltyBps"`
	SplitBPS           int32  `json:"splitBps"`
	AllowListPrice     string `json:"allowListPrice"`
	GeneralPrice       string `json:"generalPrice"`
	AllowListMintLimit int64  `json:"allowListMintLimit"`
	GeneralMintLimit   int64  `json:"generalMintLimit"`
}

func (r setFullPricingRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.RoyaltyBPS < 0 || r.RoyaltyBPS > 10000 {
		errList = append(errList, errors.New("royaltyBps must be in [0, 10000]"))
	}
	if r.SplitBPS < 0 || r.SplitBPS > 10000 {
		errList = append(errList, errors.New("splitBps must be in [0, 10000]"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setFullPricingResult struct {
	Updated bool `json:"updated"`
}

type setFullPricingResponse = HttpResponse[setFullPricingResult]

func (h *HttpHandler) SetFullPricing(ctx *fiber.Ctx) (err error) {
	var req setFullPricingRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	allowListPrice, err := parseWei(req.AllowListPrice)
	if err != nil {
		return errors.WithStack(err)
	}
	generalPrice, err := parseWei(req.GeneralPrice)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.SetFullPricing(ctx.UserContext(), req.ID, req.Caller, engine.SetFullPricingParams{
		RoyaltyBPS:         req.RoyaltyBPS,
		SplitBPS:           req.SplitBPS,
		AllowListPrice:     allowListPrice,
		GeneralPrice:       generalPrice,
		AllowListMintLimit: req.AllowListMintLimit,
		GeneralMintLimit:   req.GeneralMintLimit,
	}); err != nil {
		return errors.Wrap(publicError(err), "error during SetFullPricing")
	}

	resp := setFullPricingResponse{
		Result: &setFullPricingResult{
			Updated: true,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
