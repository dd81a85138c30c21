package http

import (
	"net/http"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/service"
)

// PricingHandler serves the staff pricing settings and the ad-hoc calculator
// used by the quote builder.
type PricingHandler struct {
	settings service.SettingsService
}

func NewPricingHandler(settings service.SettingsService) *PricingHandler {
	return &PricingHandler{settings: settings}
}

func (h *PricingHandler) GetVariables(w http.ResponseWriter, r *http.Request) {
	vars, err := h.settings.GetPricingVariables(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vars)
}

func (h *PricingHandler) SaveVariables(w http.ResponseWriter, r *http.Request) {
	var vars domain.PricingVariables
	if err := decodeBody(r, &vars); err != nil {
		respondError(w, err)
		return
	}

	saved, err := h.settings.SavePricingVariables(r.Context(), &vars)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (h *PricingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RampConfiguration domain.RampConfiguration `json:"rampConfiguration"`
		InstallAddress    string                   `json:"installAddress"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	calcs, err := h.settings.CalculatePricing(r.Context(), body.RampConfiguration, body.InstallAddress)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, calcs)
}
