package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getRoyaltyRequest struct {
	ID        int64  `params:"id"`
	TokenID   int64  `query:"tokenId"`
	SalePrice string `query:"salePrice"`
}

type getRoyaltyResult struct {
	Receiver  string `json:"receiver"`
	AmountWei string `json:"amountWei"`
}

type getRoyaltyResponse = HttpResponse[getRoyaltyResult]

func (h *HttpHandler) GetRoyaltyInfo(ctx *fiber.Ctx) (err error) {
	var req getRoyaltyRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	salePrice, err := parseWei(req.SalePrice)
	if err != nil {
		return errors.WithStack(err)
	}

	receiver, amount, err := h.engine.RoyaltyInfo(ctx.UserContext(), req.ID, req.TokenID, salePrice)
	if err != nil {
		return errors.Wrap(publicError(err), "error during RoyaltyInfo")
	}

	resp := getRoyaltyResponse{
		Result: &getRoyaltyResult{
			Receiver:  receiver,
			AmountWei: amount.Dec(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
