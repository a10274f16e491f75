package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fueltrack/internal/forms"
	"fueltrack/pkg/types"

	"github.com/alexedwards/flow"
)

// handleFuelHome is the splash page: users with a registered car get the
// fuel-up page, everyone else gets the registration page.
func (s *Service) handleFuelHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	hasCar, err := s.clients.ForUser(user.ID).HasCar(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to check for registered car")
		s.internalServerError(w)
		return
	}

	page := "page.fuel.registration"
	title := "Register Your Vehicle"
	if hasCar {
		page = "page.fuel.index"
		title = "Log a Fuel-Up"
	}

	data := &types.FuelPageData{
		BasePageData: types.BasePageData{Title: title},
		HasCar:       hasCar,
	}

	err = s.renderTemplate(w, r, page, data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render fuel home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	sub, err := forms.FromRequest(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to parse registration submission")
		http.Error(w, "error", http.StatusBadRequest)
		return
	}

	outcome, err := s.controller.Register(ctx, s.clients.ForUser(user.ID), sub)
	if err != nil {
		s.logger.WithError(err).Error("registration failed against account service")
		s.internalServerError(w)
		return
	}

	switch out := outcome.(type) {
	case forms.Completed:
		w.Write([]byte("success"))
	case forms.Rejected:
		s.logger.WithField("reason", out.Form.Reason()).Info("registration rejected")
		w.Write([]byte("error"))
	}
}

func (s *Service) handlePostFuelup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	sub, err := forms.FromRequest(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to parse fuelup submission")
		http.Error(w, "error", http.StatusBadRequest)
		return
	}

	outcome, err := s.controller.LogFuelup(ctx, s.clients.ForUser(user.ID), user, sub)
	if err != nil {
		s.logger.WithError(err).Error("fuelup failed against account service")
		s.internalServerError(w)
		return
	}

	switch out := outcome.(type) {
	case forms.Completed:
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out.Payload); err != nil {
			s.logger.WithError(err).Error("failed to encode fuelup payload")
		}
	case forms.Rejected:
		s.logger.WithField("reason", out.Form.Reason()).Info("fuelup rejected")
		w.Write([]byte("error"))
	}
}

// handlePostFuelupStart runs step one of the two-step flow and feeds its
// completion payload into the play page.
func (s *Service) handlePostFuelupStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	sub, err := forms.FromRequest(r)
	if err != nil {
		s.logger.WithError(err).Error("failed to parse fuelup step submission")
		http.Error(w, "error", http.StatusBadRequest)
		return
	}

	outcome, err := s.controller.StartFuelup(ctx, s.clients.ForUser(user.ID), user, sub)
	if err != nil {
		s.logger.WithError(err).Error("fuelup step failed against account service")
		s.internalServerError(w)
		return
	}

	data := &types.PlayPageData{
		BasePageData: types.BasePageData{Title: "Fuel-Up"},
	}

	switch out := outcome.(type) {
	case forms.Completed:
		data.Fuelup = out.Payload
	case forms.Rejected:
		data.Error = out.Form.Reason()
	}

	err = s.renderTemplate(w, r, "page.fuel.play", data)
	if err != nil {
		s.logger.WithError(err).Error("failed to render play page")
		s.internalServerError(w)
		return
	}
}

type imageQuery struct {
	Thumbnail bool `form:"thumbnail"`
}

func (s *Service) handleFuelImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.userFromContext(ctx)
	if err != nil {
		s.logger.WithError(err).Error("ctx doesn't contain user")
		s.internalServerError(w)
		return
	}

	fuelID, err := strconv.ParseInt(flow.Param(ctx, "fuelID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var q imageQuery
	err = decoder.Decode(&q, r.URL.Query())
	if err != nil {
		s.logger.WithError(err).Error("failed to decode image query")
		http.NotFound(w, r)
		return
	}

	url, err := s.controller.ReceiptURL(ctx, s.clients.ForUser(user.ID), user, fuelID, q.Thumbnail)
	if err != nil {
		if errors.Is(err, types.ErrFuelNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.WithError(err).WithField("fuel_id", fuelID).Error("failed to resolve receipt URL")
		s.internalServerError(w)
		return
	}

	http.Redirect(w, r, url, http.StatusMovedPermanently)
}
