package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type burnRequest struct {
	ID      int64  `params:"id"`
	Caller  string `json:"caller"`
	TokenID int64  `json:"tokenId"`
}

func (r burnRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.TokenID < 1 {
		errList = append(errList, errors.New("tokenId must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type burnResult struct {
	TokenID int64 `json:"tokenId"`
	Burned  bool  `json:"burned"`
}

type burnResponse = HttpResponse[burnResult]

func (h *HttpHandler) Burn(ctx *fiber.Ctx) (err error) {
	var req burnRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.Burn(ctx.UserContext(), req.ID, req.Caller, req.TokenID); err != nil {
		return errors.Wrap(publicError(err), "error during Burn")
	}

	resp := burnResponse{
		Result: &burnResult{
			TokenID: req.TokenID,
			Burned:  true,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
