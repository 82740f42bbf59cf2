package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leeboklee/rsvshop-sub002/internal/app/config"
	"github.com/leeboklee/rsvshop-sub002/internal/app/http/handlers"
	"github.com/leeboklee/rsvshop-sub002/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {

		r.Get("/pricing/quote", h.Quote)
		r.Post("/bookings", h.CreateBooking)

		r.Get("/hotels", h.ListHotels)
		r.Get("/rooms", h.ListRooms)
		r.Get("/packages", h.ListPackages)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Get("/bookings", h.ListBookings)
			r.Patch("/bookings/{id}", h.UpdateBookingStatus)

			r.Get("/surcharge-rules", h.ListSurchargeRules)
			r.Post("/surcharge-rules", h.CreateSurchargeRule)
			r.Put("/surcharge-rules/{id}", h.UpdateSurchargeRule)
			r.Delete("/surcharge-rules/{id}", h.DeleteSurchargeRule)

			r.Get("/inventories", h.ListInventories)
			r.Post("/inventories", h.CreateInventory)
			r.Put("/inventories/{id}", h.UpdateInventory)
			r.Delete("/inventories/{id}", h.DeleteInventory)

			r.Post("/hotels", h.CreateHotel)
			r.Post("/rooms", h.CreateRoom)
			r.Post("/packages", h.CreatePackage)

			r.Get("/reports/booking-summary", h.BookingSummary)
		})
	})

	return r
}
