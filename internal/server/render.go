package server

import (
	"net/http"

	"fueltrack/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	user, _ := r.Context().Value(contextKeyUser).(types.User)

	if setter, ok := data.(types.UserDataSetter); ok {
		setter.SetUserData(types.UserData{
			IsAuthenticated: user.ID != 0,
			UserID:          user.ID,
			UserEmail:       user.Email,
		})
	}

	return s.templates.ExecuteTemplate(w, templateName, data)
}
