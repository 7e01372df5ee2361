package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type mintBatchRequest struct {
	ID         int64    `params:"id"`
	Caller     string   `json:"caller"`
	Recipients []string `json:"recipients"`
	Paid       string   `json:"paid"`
}

func (r mintBatchRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if len(r.Recipients) == 0 {
		errList = append(errList, errors.New("recipients must not be empty"))
	}
	for _, recipient := range r.Recipients {
		if !isWalletAddress(recipient) {
			errList = append(errList, errors.Errorf("recipient '%s' is not a valid wallet address", recipient))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintBatchResult struct {
	Tokens []tokenResult `json:"tokens"`
}

type mintBatchResponse = HttpResponse[mintBatchResult]

func (h *HttpHandler) MintBatch(ctx *fiber.Ctx) (err error) {
	var req mintBatchRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	paid, err := parseWei(req.Paid)
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.engine.MintBatch(ctx.UserContext(), engine.MintBatchParams{
		DropID:     req.ID,
		Caller:     req.Caller,
		Recipients: req.Recipients,
		Paid:       paid,
	})
	if err != nil {
		return errors.Wrap(publicError(err), "error during MintBatch")
	}

	resp := mintBatchResponse{
		Result: &mintBatchResult{
			Tokens: lo.Map(tokens, func(token entity.Token, _ int) tokenResult {
				return mapTokenToResult(token)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
