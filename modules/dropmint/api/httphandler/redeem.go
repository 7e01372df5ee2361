package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type startRedeemRequest struct {
	ID      int64  `params:"id"`
	Caller  string `json:"caller"`
	TokenID int64  `json:"tokenId"`
}

func (r startRedeemRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.TokenID < 1 {
		errList = append(errList, errors.New("tokenId must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type redeemResult struct {
	TokenID int64  `json:"tokenId"`
	State   string `json:"state"`
}

type redeemResponse = HttpResponse[redeemResult]

func (h *HttpHandler) StartRedeem(ctx *fiber.Ctx) (err error) {
	var req startRedeemRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.StartRedeem(ctx.UserContext(), req.ID, req.Caller, req.TokenID); err != nil {
		return errors.Wrap(publicError(err), "error during StartRedeem")
	}

	token, err := h.engine.GetToken(ctx.UserContext(), req.ID, req.TokenID)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetToken")
	}

	resp := redeemResponse{
		Result: &redeemResult{
			TokenID: req.TokenID,
			State:   token.State.String(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type completeProductionRequest struct {
	ID          int64  `params:"id"`
	Caller      string `json:"caller"`
	TokenID     int64  `json:"tokenId"`
	RedeemedURL string `json:"redeemedUrl"`
}

func (r completeProductionRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.TokenID < 1 {
		errList = append(errList, errors.New("tokenId must be positive"))
	}
	if r.RedeemedURL == "" {
		errList = append(errList, errors.New("redeemedUrl is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) CompleteProduction(ctx *fiber.Ctx) (err error) {
	var req completeProductionRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.CompleteProduction(ctx.UserContext(), req.ID, req.Caller, req.TokenID, req.RedeemedURL); err != nil {
		return errors.Wrap(publicError(err), "error during CompleteProduction")
	}

	token, err := h.engine.GetToken(ctx.UserContext(), req.ID, req.TokenID)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetToken")
	}

	resp := redeemResponse{
		Result: &redeemResult{
			TokenID: req.TokenID,
			State:   token.State.String(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
