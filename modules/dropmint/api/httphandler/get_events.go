package httphandler

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getEventsRequest struct {
	ID    int64 `params:"id"`
	Limit int32 `query:"limit"`
}

type eventResult struct {
	ID        int64           `json:"id"`
	DropID    int64           `json:"dropId"`
	Type      string          `json:"type"`
	Caller    string          `json:"caller"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

func mapEventToResult(event entity.DropEvent) eventResult {
	return eventResult{
		ID:        event.ID,
		DropID:    event.DropID,
		Type:      string(event.Type),
		Caller:    event.Caller,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}
}

type getEventsResult struct {
	Events []eventResult `json:"events"`
}

type getEventsResponse = HttpResponse[getEventsResult]

func (h *HttpHandler) GetEvents(ctx *fiber.Ctx) (err error) {
	var req getEventsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	events, err := h.engine.GetEvents(ctx.UserContext(), req.ID, req.Limit)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetEvents")
	}

	resp := getEventsResponse{
		Result: &getEventsResult{
			Events: lo.Map(events, func(event entity.DropEvent, _ int) eventResult {
				return mapEventToResult(event)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getEventsByWalletRequest struct {
	Wallet string `params:"wallet"`
}

func (r getEventsByWalletRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) GetEventsByWallet(ctx *fiber.Ctx) (err error) {
	var req getEventsByWalletRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	events, err := h.engine.GetEventsByWallet(ctx.UserContext(), req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetEventsByWallet")
	}

	resp := getEventsResponse{
		Result: &getEventsResult{
			Events: lo.Map(events, func(event entity.DropEvent, _ int) eventResult {
				return mapEventToResult(event)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
