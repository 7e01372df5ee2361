package httphandler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type setAccessTierRequest struct {
	ID     int64  `params:"id"`
	Caller string `json:"caller"`
	Tier   string `json:"tier"`
}

func parseAccessTier(s string) (entity.AccessTier, bool) {
	switch strings.ToUpper(s) {
	case "NOT_FOR_SALE":
		return entity.TierNotForSale, true
	case "ALLOWLIST":
		return entity.TierAllowList, true
	case "ANYONE":
		return entity.TierAnyone, true
	}
	return 0, false
}

func (r setAccessTierRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if _, ok := parseAccessTier(r.Tier); !ok {
		errList = append(errList, errors.Errorf("tier '%s' is not one of NOT_FOR_SALE, ALLOWLIST, ANYONE", r.Tier))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type setAccessTierResult struct {
	Tier string `json:"tier"`
}

type setAccessTierResponse = HttpResponse[setAccessTierResult]

func (h *HttpHandler) SetAccessTier(ctx *fiber.Ctx) (err error) {
	var req setAccessTierRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	tier, _ := parseAccessTier(req.Tier)
	if err := h.engine.SetAccessTier(ctx.UserContext(), req.ID, req.Caller, tier); err != nil {
		return errors.Wrap(publicError(err), "error during SetAccessTier")
	}

	resp := setAccessTierResponse{
		Result: &setAccessTierResult{
			Tier: tier.String(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
