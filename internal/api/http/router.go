package http

import (
	"net/http"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type Services struct {
	Quotes        service.QuoteService
	Reservations  service.ReservationService
	Seasons       service.SeasonService
	TransferTiers service.TransferTierService
	Catalog       service.CatalogService
	Auth          service.AuthService
}

type Handler struct {
	svc Services
}

func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}

// NewRouter wires every route behind logging and admin authentication.
func NewRouter(h *Handler, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware, AuthMiddleware(tokens))
	RegisterRoutes(router, h)
	return router
}

func RegisterRoutes(router *mux.Router, h *Handler) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/locations", h.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/quotes/rental", h.QuoteRental).Methods(http.MethodPost)
	api.HandleFunc("/quotes/rental/preview", h.PreviewRental).Methods(http.MethodPost)
	api.HandleFunc("/quotes/transfer", h.QuoteTransfer).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.SubmitRental).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{number}", h.GetReservation).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{number}/cancel", h.CancelReservation).Methods(http.MethodPost)
	api.HandleFunc("/transfers", h.SubmitTransfer).Methods(http.MethodPost)
	api.HandleFunc("/transfers/{number}", h.GetTransfer).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/login", h.AdminLogin).Methods(http.MethodPost)
	admin.HandleFunc("/seasons", h.ListSeasons).Methods(http.MethodGet)
	admin.HandleFunc("/seasons", h.CreateSeason).Methods(http.MethodPost)
	admin.HandleFunc("/seasons/{id}", h.UpdateSeason).Methods(http.MethodPut)
	admin.HandleFunc("/seasons/{id}", h.DeleteSeason).Methods(http.MethodDelete)
	admin.HandleFunc("/current-season", h.GetCurrentSeason).Methods(http.MethodGet)
	admin.HandleFunc("/current-season", h.SetCurrentSeason).Methods(http.MethodPut)
	admin.HandleFunc("/current-season", h.ClearCurrentSeason).Methods(http.MethodDelete)
	admin.HandleFunc("/transfer-tiers", h.ListTransferTiers).Methods(http.MethodGet)
	admin.HandleFunc("/transfer-tiers", h.CreateTransferTier).Methods(http.MethodPost)
	admin.HandleFunc("/transfer-tiers/{id}", h.UpdateTransferTier).Methods(http.MethodPut)
	admin.HandleFunc("/transfer-tiers/{id}", h.DeleteTransferTier).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicle-classes", h.ListVehicleClasses).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles/{id}/pricing-tiers", h.UpdateVehicleTiers).Methods(http.MethodPut)
	admin.HandleFunc("/vehicle-classes/{id}/pricing", h.UpdateClassPricing).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{number}/confirm", h.ConfirmReservation).Methods(http.MethodPost)
}
