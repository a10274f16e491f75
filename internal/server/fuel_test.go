package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fueltrack/internal/forms"
	"fueltrack/internal/fuel"
	"fueltrack/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	hasCar    bool
	createID  int64
	getRecord *types.FuelRecord
}

func (c *stubClient) HasCar(ctx context.Context) (bool, error) { return c.hasCar, nil }
func (c *stubClient) SetCar(ctx context.Context, car types.CarData) error {
	return nil
}
func (c *stubClient) Create(ctx context.Context) (int64, error) { return c.createID, nil }
func (c *stubClient) Update(ctx context.Context, fuelID int64, data types.FuelData) error {
	return nil
}
func (c *stubClient) Get(ctx context.Context, fuelID int64) (*types.FuelRecord, error) {
	return c.getRecord, nil
}

type stubImages struct{}

func (stubImages) Upload(ctx context.Context, userID, fuelID int64, img *forms.Attachment) error {
	return nil
}

func (stubImages) ObjectURL(userID, fuelID int64, thumbnail bool) string {
	return fmt.Sprintf("https://storage.example/%d/%d/%t", userID, fuelID, thumbnail)
}

type stubDirectory struct {
	client fuel.ResourceClient
}

func (d stubDirectory) ForUser(userID int64) fuel.ResourceClient { return d.client }

var testUser = types.User{ID: 7, Email: "driver@example.com"}

// newTestService builds a Service with the auth middleware replaced by a
// fixed user, so handlers and routing run without an identity provider.
func newTestService(t *testing.T, client fuel.ResourceClient) (*Service, http.Handler) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	templates, err := loadTemplates()
	require.NoError(t, err)

	s := &Service{
		logger:     logger,
		config:     &types.Config{},
		controller: fuel.NewController(logger, stubImages{}),
		clients:    stubDirectory{client: client},
		templates:  templates,
	}

	withUser := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKeyUser, testUser)
			h(w, r.WithContext(ctx))
		}
	}

	m := flow.New()
	m.Use(s.StripTrailingSlash)
	m.HandleFunc("/fuel", withUser(s.handleFuelHome), http.MethodGet)
	m.HandleFunc("/fuel/registration", withUser(s.handlePostRegistration), http.MethodPost)
	m.HandleFunc("/fuel/fuelup", withUser(s.handlePostFuelup), http.MethodPost)
	m.HandleFunc("/fuel/fuelup/start", withUser(s.handlePostFuelupStart), http.MethodPost)
	m.HandleFunc("/fuel/image/:fuelID", withUser(s.handleFuelImage), http.MethodGet)

	return s, m
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postFuelup(t *testing.T, path string, values map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range values {
		require.NoError(t, w.WriteField(name, value))
	}

	fw, err := w.CreateFormFile("receipt", "receipt.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleFuelHome(t *testing.T) {
	t.Run("without car shows registration", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{hasCar: false})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Register Your Vehicle")
	})

	t.Run("with car shows fuelup form", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{hasCar: true})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Log a Fuel-Up")
	})
}

func TestHandlePostRegistration(t *testing.T) {
	t.Run("valid submission succeeds", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/fuel/registration", url.Values{
			"make":  {"Honda"},
			"model": {"Civic"},
			"year":  {"2012"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("year out of range is rejected", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postForm("/fuel/registration", url.Values{
			"make":  {"Honda"},
			"model": {"Civic"},
			"year":  {"2025"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "error", rec.Body.String())
	})
}

func TestHandlePostFuelup(t *testing.T) {
	t.Run("valid submission returns payload", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{hasCar: true, createID: 42})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postFuelup(t, "/fuel/fuelup", map[string]string{
			"gallons": "10",
			"price":   "3.50",
			"grade":   "87",
			"chain":   "Shell",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, float64(42), payload["fuel_id"])
		assert.Equal(t, 10.0, payload["amount"])
		assert.Equal(t, 3.5, payload["price"])
		assert.Equal(t, "/fuel/image/42/", payload["receipt"])
	})

	t.Run("invalid submission is rejected", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{hasCar: true})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, postFuelup(t, "/fuel/fuelup", map[string]string{
			"gallons": "31",
			"price":   "3.50",
			"grade":   "87",
			"chain":   "Shell",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "error", rec.Body.String())
	})
}

func TestHandlePostFuelupStart(t *testing.T) {
	_, router := newTestService(t, &stubClient{hasCar: true, createID: 5})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postFuelup(t, "/fuel/fuelup/start", map[string]string{
		"gallons": "12.5",
		"price":   "2.99",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	// step-1 payload feeds the play page
	assert.Contains(t, rec.Body.String(), "/fuel/image/5/")
	assert.Contains(t, rec.Body.String(), "12.5")
}

func TestHandleFuelImage(t *testing.T) {
	t.Run("owned record redirects permanently", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{
			getRecord: &types.FuelRecord{ID: 42, UserID: testUser.ID},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel/image/42", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "https://storage.example/7/42/false", rec.Header().Get("Location"))
	})

	t.Run("thumbnail variant honored", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{
			getRecord: &types.FuelRecord{ID: 42, UserID: testUser.ID},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel/image/42?thumbnail=true", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "https://storage.example/7/42/true", rec.Header().Get("Location"))
	})

	t.Run("record of another user is not found", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{getRecord: nil})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel/image/7", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is not found", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel/image/abc", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("trailing slash is stripped", func(t *testing.T) {
		_, router := newTestService(t, &stubClient{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fuel/image/42/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/fuel/image/42", rec.Header().Get("Location"))
	})
}
