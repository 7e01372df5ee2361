package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type setAllowListRequest struct {
	ID      int64    `params:"id"`
	Caller  string   `json:"caller"`
	Wallets []string `json:"wallets"`
	Flags   []bool   `json:"flags"`
}

func (r setAllowListRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if len(r.Wallets) == 0 {
		errList = append(errList, errors.New("wallets must not be empty"))
	}
	for _, wallet := range r.Wallets {
		if !isWalletAddress(wallet) {
			errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", wallet))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setAllowListResult struct {
	Updated int `json:"updated"`
}

type setAllowListResponse = HttpResponse[setAllowListResult]

func (h *HttpHandler) SetAllowListMembership(ctx *fiber.Ctx) (err error) {
	var req setAllowListRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.SetAllowListMembership(ctx.UserContext(), req.ID, req.Caller, req.Wallets, req.Flags); err != nil {
		return errors.Wrap(publicError(err), "error during SetAllowListMembership")
	}

	resp := setAllowListResponse{
		Result: &setAllowListResult{
			Updated: len(req.Wallets),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
