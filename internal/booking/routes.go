package booking

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/bookings", h.HandleCreate)
	r.Get("/bookings", h.HandleList)
	r.Patch("/bookings/{id}", h.HandleUpdate)
	r.Delete("/bookings/{id}", h.HandleDelete)
}
