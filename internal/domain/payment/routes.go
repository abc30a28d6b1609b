package payment

import "github.com/go-chi/chi/v5"

// Routes returns payment routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/initiate", h.Initiate)
	r.Post("/confirm", h.Confirm)

	return r
}
