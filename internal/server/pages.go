package server

import (
	"net/http"

	"fueltrack/pkg/types"
)

func (s *Service) handleFuelPlay(w http.ResponseWriter, r *http.Request) {
	data := &types.PlayPageData{
		BasePageData: types.BasePageData{Title: "Fuel-Up"},
	}

	err := s.renderTemplate(w, r, "page.fuel.play", data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render play page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleFuelHistory(w http.ResponseWriter, r *http.Request) {
	data := &types.BasePageData{Title: "Fuel-Up History"}

	err := s.renderTemplate(w, r, "page.fuel.history", data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render history page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleFuelFAQ(w http.ResponseWriter, r *http.Request) {
	data := &types.BasePageData{Title: "FAQ"}

	err := s.renderTemplate(w, r, "page.fuel.faq", data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render faq page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
