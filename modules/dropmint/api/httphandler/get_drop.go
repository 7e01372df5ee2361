package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type getDropRequest struct {
	ID int64 `params:"id"`
}

func (r getDropRequest) Validate() error {
	if r.ID <= 0 {
		return errs.NewPublicError("id must be a positive integer")
	}
	return nil
}

type dropResult struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Symbol            string    `json:"symbol"`
	BaseDir           string    `json:"baseDir"`
	ArtistWallet      string    `json:"artistWallet"`
	Owner             string    `json:"owner"`
	DropSize          int64     `json:"dropSize"`
	ClaimCount        int64     `json:"claimCount"`
	NumberCanMint     int64     `json:"numberCanMint"`
	RandomMint        bool      `json:"randomMint"`
	DifferentEditions int32     `json:"differentEditions"`
	CreatedAt         time.Time `json:"createdAt"`
}

func mapDropToResult(drop entity.Drop) dropResult {
	return dropResult{
		ID:                drop.ID,
		Name:              drop.Name,
		Symbol:            drop.Symbol,
		BaseDir:           drop.BaseDir,
		ArtistWallet:      drop.ArtistWallet,
		Owner:             drop.Owner,
		DropSize:          drop.DropSize,
		ClaimCount:        drop.ClaimCount,
		NumberCanMint:     drop.RemainingSupply(),
		RandomMint:        drop.RandomMint,
		DifferentEditions: drop.DifferentEditions,
		CreatedAt:         drop.CreatedAt,
	}
}

type getDropResponse = HttpResponse[dropResult]

func (h *HttpHandler) GetDrop(ctx *fiber.Ctx) (err error) {
	var req getDropRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	drop, err := h.engine.GetDropAtID(ctx.UserContext(), req.ID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("drop not found")
		}
		return errors.Wrap(err, "error during GetDropAtID")
	}

	result := mapDropToResult(*drop)
	resp := getDropResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
