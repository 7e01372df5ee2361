package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type getTokenRequest struct {
	ID      int64 `params:"id"`
	TokenID int64 `params:"tokenId"`
}

type tokenResult struct {
	TokenID     int64     `json:"tokenId"`
	State       string    `json:"state"`
	OwnerWallet string    `json:"ownerWallet"`
	MetadataURL string    `json:"metadataUrl"`
	MintedAt    time.Time `json:"mintedAt"`
}

func mapTokenToResult(token entity.Token) tokenResult {
	return tokenResult{
		TokenID:     token.TokenID,
		State:       token.State.String(),
		OwnerWallet: token.OwnerWallet,
		MetadataURL: token.MetadataURL(),
		MintedAt:    token.MintedAt,
	}
}

type getTokenResponse = HttpResponse[tokenResult]

func (h *HttpHandler) GetToken(ctx *fiber.Ctx) (err error) {
	var req getTokenRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.engine.GetToken(ctx.UserContext(), req.ID, req.TokenID)
	if err != nil {
		return errors.Wrap(publicError(err), "error during GetToken")
	}

	result := mapTokenToResult(*token)
	resp := getTokenResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
