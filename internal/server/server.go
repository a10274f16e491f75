package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"fueltrack/internal/fuel"
	"fueltrack/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates
var uiFS embed.FS
var decoder = form.NewDecoder()

// ClientDirectory hands out account service handles scoped to one user.
// Satisfied by both the remote client and the embedded store.
type ClientDirectory interface {
	ForUser(userID int64) fuel.ResourceClient
}

type Service struct {
	logger     *logrus.Logger
	config     *types.Config
	controller *fuel.Controller
	clients    ClientDirectory
	templates  *template.Template

	cookie *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	controller *fuel.Controller,
	clients ClientDirectory,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:     logger,
		config:     config,
		controller: controller,
		clients:    clients,
		cookie:     securecookie.New(hashKey, blockKey),

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/fuel", s.handleFuelHome, http.MethodGet)

		r.HandleFunc("/fuel/registration", s.handlePostRegistration, http.MethodPost)
		r.HandleFunc("/fuel/fuelup", s.handlePostFuelup, http.MethodPost)
		r.HandleFunc("/fuel/fuelup/start", s.handlePostFuelupStart, http.MethodPost)

		r.HandleFunc("/fuel/image/:fuelID", s.handleFuelImage, http.MethodGet)

		r.HandleFunc("/fuel/play", s.handleFuelPlay, http.MethodGet)
		r.HandleFunc("/fuel/history", s.handleFuelHistory, http.MethodGet)
		r.HandleFunc("/fuel/faq", s.handleFuelFAQ, http.MethodGet)
	})
}

func loadTemplates() (*template.Template, error) {
	t := template.New("")
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) userFromContext(ctx context.Context) (types.User, error) {
	user, ok := ctx.Value(contextKeyUser).(types.User)
	if !ok {
		return types.User{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}
