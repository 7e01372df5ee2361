package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/pkg/decimals"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type getQuoteRequest struct {
	ID     int64  `params:"id"`
	Wallet string `query:"wallet"`
}

func (r getQuoteRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getQuoteResult struct {
	Wallet     string          `json:"wallet"`
	PriceWei   string          `json:"priceWei"`
	PriceEther decimal.Decimal `json:"priceEther"`
}

type getQuoteResponse = HttpResponse[getQuoteResult]

func (h *HttpHandler) GetQuote(ctx *fiber.Ctx) (err error) {
	var req getQuoteRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	price, err := h.engine.QuotePrice(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during QuotePrice")
	}

	resp := getQuoteResponse{
		Result: &getQuoteResult{
			Wallet:     req.Wallet,
			PriceWei:   price.Dec(),
			PriceEther: decimals.WeiToEther(price),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
