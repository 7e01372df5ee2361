package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/gofiber/fiber/v2"
)

type reserveRequest struct {
	ID       int64    `params:"id"`
	Caller   string   `json:"caller"`
	Wallets  []string `json:"wallets"`
	TokenIDs []int64  `json:"tokenIds"`
}

func (r reserveRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if len(r.Wallets) == 0 {
		errList = append(errList, errors.New("wallets must not be empty"))
	}
	for _, wallet := range r.Wallets {
		if !isWalletAddress(wallet) {
			errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", wallet))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type reserveResult struct {
	Reserved int `json:"reserved"`
}

type reserveResponse = HttpResponse[reserveResult]

func (h *HttpHandler) Reserve(ctx *fiber.Ctx) (err error) {
	var req reserveRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.Reserve(ctx.UserContext(), req.ID, req.Caller, req.Wallets, req.TokenIDs); err != nil {
		return errors.Wrap(publicError(err), "error during Reserve")
	}

	resp := reserveResponse{
		Result: &reserveResult{
			Reserved: len(req.TokenIDs),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type unreserveRequest struct {
	ID       int64   `params:"id"`
	Caller   string  `json:"caller"`
	TokenIDs []int64 `json:"tokenIds"`
}

func (r unreserveRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Caller) {
		errList = append(errList, errors.Errorf("caller '%s' is not a valid wallet address", r.Caller))
	}
	if len(r.TokenIDs) == 0 {
		errList = append(errList, errors.New("tokenIds must not be empty"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type unreserveResult struct {
	Unreserved int `json:"unreserved"`
}

type unreserveResponse = HttpResponse[unreserveResult]

func (h *HttpHandler) Unreserve(ctx *fiber.Ctx) (err error) {
	var req unreserveRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.engine.Unreserve(ctx.UserContext(), req.ID, req.Caller, req.TokenIDs); err != nil {
		return errors.Wrap(publicError(err), "error during Unreserve")
	}

	resp := unreserveResponse{
		Result: &unreserveResult{
			Unreserved: len(req.TokenIDs),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getReservationRequest struct {
	ID      int64 `params:"id"`
	TokenID int64 `params:"tokenId"`
}

type getReservationResult struct {
	TokenID  int64  `json:"tokenId"`
	Reserved bool   `json:"reserved"`
	Wallet   string `json:"wallet"`
}

type getReservationResponse = HttpResponse[getReservationResult]

func (h *HttpHandler) GetReservation(ctx *fiber.Ctx) (err error) {
	var req getReservationRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	reserved, err := h.engine.IsReserved(ctx.UserContext(), req.ID, req.TokenID)
	if err != nil {
		return errors.Wrap(publicError(err), "error during IsReserved")
	}
	wallet, err := h.engine.WhoReserved(ctx.UserContext(), req.ID, req.TokenID)
	if err != nil {
		return errors.Wrap(publicError(err), "error during WhoReserved")
	}

	resp := getReservationResponse{
		Result: &getReservationResult{
			TokenID:  req.TokenID,
			Reserved: reserved,
			Wallet:   wallet,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getReservationsByWalletRequest struct {
	ID     int64  `params:"id"`
	Wallet string `query:"wallet"`
}

func (r getReservationsByWalletRequest) Validate() error {
	var errList []error
	if !isWalletAddress(r.Wallet) {
		errList = append(errList, errors.Errorf("wallet '%s' is not a valid wallet address", r.Wallet))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getReservationsByWalletResult struct {
	Wallet   string  `json:"wallet"`
	Count    int64   `json:"count"`
	TokenIDs []int64 `json:"tokenIds"`
}

type getReservationsByWalletResponse = HttpResponse[getReservationsByWalletResult]

// GetReservationsByWallet lists a wallet's reservation slots. Token id
// zero marks a released slot; Count only counts live reservations.
func (h *HttpHandler) GetReservationsByWallet(ctx *fiber.Ctx) (err error) {
	var req getReservationsByWalletRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	count, err := h.engine.ReservationCount(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during ReservationCount")
	}
	tokenIDs, err := h.engine.ReservationList(ctx.UserContext(), req.ID, req.Wallet)
	if err != nil {
		return errors.Wrap(publicError(err), "error during ReservationList")
	}

	resp := getReservationsByWalletResponse{
		Result: &getReservationsByWalletResult{
			Wallet:   req.Wallet,
			Count:    count,
			TokenIDs: tokenIDs,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
