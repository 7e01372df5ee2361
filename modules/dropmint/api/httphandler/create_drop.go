package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	"github.com/gofiber/fiber/v2"
)

type createDropRequest struct {
	Caller            string `json:"caller"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	BaseDir           string `json:"baseDir"`
	ArtistWallet      string `json:"artistWallet"`
	DropSize          int64  `json:"dropSize"`
	DifferentEditions int32  `json:"differentEditions"`
	RandomMint        bool   `json:"randomMint"`
}

func (r createDropRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if r.Name == "" {
		errList = append(errList, errors.New("name is required"))
	}
	if r.Symbol == "" {
		errList = append(errList, errors.New("symbol is required"))
	}
	if r.BaseDir == "" {
		errList = append(errList, errors.New("baseDir is required"))
	}
	if r.DropSize < 0 {
		errList = append(errList, errors.New("dropSize must not be negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type createDropResult struct {
	ID int64 `json:"id"`
}

type createDropResponse = HttpResponse[createDropResult]

func (h *HttpHandler) CreateDrop(ctx *fiber.Ctx) (err error) {
	var req createDropRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	dropID, err := h.engine.CreateDrop(ctx.UserContext(), engine.CreateDropParams{
		Caller:            req.Caller,
		Name:              req.Name,
		Symbol:            req.Symbol,
		BaseDir:           req.BaseDir,
		ArtistWallet:      req.ArtistWallet,
		DropSize:          req.DropSize,
		DifferentEditions: req.DifferentEditions,
		RandomMint:        req.RandomMint,
	})
	if err != nil {
		return errors.Wrap(publicError(err), "error during CreateDrop")
	}

	resp := createDropResponse{
		Result: &createDropResult{
			ID: dropID,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
