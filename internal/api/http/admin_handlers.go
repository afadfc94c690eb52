package http

import (
	"net/http"
	"time"

	"carrental-backend/internal/domain"

	"github.com/gorilla/mux"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, expiresAt, err := h.svc.Auth.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, ExpiresAt: expiresAt})
}

// Seasons

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.svc.Seasons.ListSeasons(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var season domain.Season
	if err := decodeJSON(r, &season); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Seasons.CreateSeason(r.Context(), &season); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, season)
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var season domain.Season
	if err := decodeJSON(r, &season); err != nil {
		writeError(w, r, err)
		return
	}
	season.ID = id
	if err := h.svc.Seasons.UpdateSeason(r.Context(), &season); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, season)
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Seasons.DeleteSeason(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type currentSeasonRequest struct {
	SeasonID int32 `json:"seasonId"`
}

type currentSeasonResponse struct {
	Season *domain.Season `json:"season"`
}

func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	season, err := h.svc.Seasons.GetCurrentSeason(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currentSeasonResponse{Season: season})
}

func (h *Handler) SetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	var req currentSeasonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	current, err := h.svc.Seasons.SetCurrentSeason(r.Context(), req.SeasonID, AdminEmailFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

func (h *Handler) ClearCurrentSeason(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Seasons.ClearCurrentSeason(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Transfer tiers

func (h *Handler) ListTransferTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.svc.TransferTiers.ListTiers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tiers)
}

func (h *Handler) CreateTransferTier(w http.ResponseWriter, r *http.Request) {
	var tier domain.TransferPricingTier
	if err := decodeJSON(r, &tier); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.TransferTiers.CreateTier(r.Context(), &tier); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tier)
}

func (h *Handler) UpdateTransferTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var tier domain.TransferPricingTier
	if err := decodeJSON(r, &tier); err != nil {
		writeError(w, r, err)
		return
	}
	tier.ID = id
	if err := h.svc.TransferTiers.UpdateTier(r.Context(), &tier); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tier)
}

func (h *Handler) DeleteTransferTier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.TransferTiers.DeleteTier(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Catalog

func (h *Handler) ListVehicleClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.Catalog.ListClasses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, classes)
}

type pricingTiersRequest struct {
	PricingTiers []domain.PricingTier `json:"pricingTiers"`
}

func (h *Handler) UpdateVehicleTiers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req pricingTiersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.svc.Catalog.UpdateVehicleTiers(r.Context(), id, req.PricingTiers)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) UpdateClassPricing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var class domain.VehicleClass
	if err := decodeJSON(r, &class); err != nil {
		writeError(w, r, err)
		return
	}
	class.ID = id
	if err := h.svc.Catalog.UpdateClassPricing(r.Context(), &class); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

func (h *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Reservations.ConfirmReservation(r.Context(), mux.Vars(r)["number"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
