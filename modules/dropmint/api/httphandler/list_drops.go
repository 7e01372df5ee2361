package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type listDropsRequest struct {
	Limit  int32 `query:"limit"`
	Offset int32 `query:"offset"`
}

type listDropsResult struct {
	Drops []dropResult `json:"drops"`
	Total int64        `json:"total"`
}

type listDropsResponse = HttpResponse[listDropsResult]

func (h *HttpHandler) ListDrops(ctx *fiber.Ctx) (err error) {
	var req listDropsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	drops, total, err := h.engine.ListDrops(ctx.UserContext(), req.Limit, req.Offset)
	if err != nil {
		return errors.Wrap(err, "error during ListDrops")
	}

	resp := listDropsResponse{
		Result: &listDropsResult{
			Drops: lo.Map(drops, func(drop entity.Drop, _ int) dropResult {
				return mapDropToResult(drop)
			}),
			Total: total,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
