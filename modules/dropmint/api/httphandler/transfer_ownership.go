package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type transferOwnershipRequest struct {
	ID       int64  `params:"id"`
	Caller   string `json:"caller"`
	NewOwner string `json:"newOwner"`
}

func (r transferOwnershipRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if !isWalletAddress(r.NewOwner) {
		errList = append(errList, errors.Errorf("newOwner '%s' is not a valid wallet address", r.NewOwner))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferOwnershipResult struct {
	NewOwner string `json:"newOwner"`
}

type transferOwnershipResponse = HttpResponse[transferOwnershipResult]

func (h *HttpHandler) TransferOwnership(ctx *fiber.Ctx) (err error) {
	var req transferOwnershipRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.TransferOwnership(ctx.UserContext(), req.ID, req.Caller, req.NewOwner); err != nil {
		return errors.Wrap(publicError(err), "error during TransferOwnership")
	}

	resp := transferOwnershipResponse{
		Result: &transferOwnershipResult{
			NewOwner: req.NewOwner,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
