package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getTokensByWalletRequest struct {
	ID     int64  `params:"id"`
	Wallet string `query:"wallet"`
}

func (r getTokensByWalletRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getTokensByWalletResult struct {
	Wallet string        `json:"wallet"`
	Tokens []tokenResult `json:"tokens"`
}

type getTokensByWalletResponse = HttpResponse[getTokensByWalletResult]

func (h *HttpHandler) GetTokensByWallet(ctx *fiber.Ctx) (err error) {
	var req getTokensByWalletRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.engine.GetTokensByWallet(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetTokensByWallet")
	}

	resp := getTokensByWalletResponse{
		Result: &getTokensByWalletResult{
			Wallet: req.Wallet,
			Tokens: lo.Map(tokens, func(token entity.Token, _ int) tokenResult {
				return mapTokenToResult(token)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
