package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type setPricesRequest struct {
	ID             int64   `params:"id"`
	Caller         string  `json:"caller"`
	AllowListPrice *string `json:"allowListPrice"`
	GeneralPrice   *string `json:"generalPrice"`
}

func (r setPricesRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.AllowListPrice == nil && r.GeneralPrice == nil {
		errList = append(errList, errors.New("at least one of allowListPrice, generalPrice is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setPricesResult struct {
	Updated bool `json:"updated"`
}

type setPricesResponse = HttpResponse[setPricesResult]

// SetPrices updates prices. Sending both prices keeps the tier as is;
// sending only the allow-list price switches the tier to ALLOWLIST and
// sending only the general price switches it to ANYONE.
func (h *HttpHandler) SetPrices(ctx *fiber.Ctx) (err error) {
	var req setPricesRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	switch {
	case req.AllowListPrice != nil && req.GeneralPrice != nil:
		allowListPrice, err := parseWei(*req.AllowListPrice)
		if err != nil {
			return errors.WithStack(err)
		}
		generalPrice, err := parseWei(*req.GeneralPrice)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := h.engine.SetBasePrices(ctx.UserContext(), req.ID, req.Caller, allowListPrice, generalPrice); err != nil {
			return errors.Wrap(publicError(err), "error during SetBasePrices")
		}
	case req.AllowListPrice != nil:
		allowListPrice, err := parseWei(*req.AllowListPrice)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := h.engine.SetAllowListPrice(ctx.UserContext(), req.ID, req.Caller, allowListPrice); err != nil {
			return errors.Wrap(publicError(err), "error during SetAllowListPrice")
		}
	default:
		generalPrice, err := parseWei(*req.GeneralPrice)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := h.engine.SetGeneralPrice(ctx.UserContext(), req.ID, req.Caller, generalPrice); err != nil {
			return errors.Wrap(publicError(err), "error during SetGeneralPrice")
		}
	}

	resp := setPricesResponse{
		Result: &setPricesResult{
			Updated: true,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
