package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/dropmint")

	r.Post("/drops", h.CreateDrop)
	r.Get("/drops", h.ListDrops)
	r.Get("/drops/:id", h.GetDrop)
	r.Post("/drops/:id/transfer-ownership", h.TransferOwnership)

	r.Put("/drops/:id/tier", h.SetAccessTier)
	r.Put("/drops/:id/allow-list", h.SetAllowListMembership)
	r.Put("/drops/:id/prices", h.SetPrices)
	r.Put("/drops/:id/pricing", h.SetFullPricing)
	r.Put("/drops/:id/discounts", h.SetDiscounts)
	r.Get("/drops/:id/quote", h.GetQuote)
	r.Get("/drops/:id/eligibility", h.GetEligibility)
	r.Get("/drops/:id/royalty", h.GetRoyaltyInfo)

	r.Post("/drops/:id/mint", h.MintBatch)
	r.Get("/drops/:id/tokens", h.GetTokensByWallet)
	r.Get("/drops/:id/tokens/:tokenId", h.GetToken)
	r.Post("/drops/:id/burn", h.Burn)

	r.Post("/drops/:id/redeem/start", h.StartRedeem)
	r.Post("/drops/:id/redeem/complete", h.CompleteProduction)

	r.Post("/drops/:id/reservations", h.Reserve)
	r.Delete("/drops/:id/reservations", h.Unreserve)
	r.Get("/drops/:id/reservations", h.GetReservationsByWallet)
	r.Get("/drops/:id/reservations/:tokenId", h.GetReservation)

	r.Put("/passes/holdings", h.SetPassHolding)

	r.Get("/drops/:id/events", h.GetEvents)
	r.Get("/events/wallet/:wallet", h.GetEventsByWallet)
	return nil
}
