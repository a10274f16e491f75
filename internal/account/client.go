// Package account is the HTTP client for the remote account service, which
// owns all fuel resources and allocates fuel record ids. Handles are scoped
// to one user; the server constructs one per authenticated request.
package account

import (
	"context"
	"fmt"
	"net/http"

	"fueltrack/internal/fuel"
	"fueltrack/pkg/types"

	"github.com/go-resty/resty/v2"
)

// Directory hands out per-user account service handles.
type Directory struct {
	http *resty.Client
}

func NewDirectory(baseURL, token string) *Directory {
	client := resty.New().SetBaseURL(baseURL)
	if token != "" {
		client = client.SetAuthToken(token)
	}
	return &Directory{http: client}
}

// ForUser returns a handle scoped to the given user's resources.
func (d *Directory) ForUser(userID int64) fuel.ResourceClient {
	return &Client{http: d.http, userID: userID}
}

// Client performs the named fuel actions for a single user.
type Client struct {
	http   *resty.Client
	userID int64
}

type carResponse struct {
	HasCar bool `json:"has_car"`
}

type createResponse struct {
	ID int64 `json:"id"`
}

type fuelResponse struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

func (c *Client) HasCar(ctx context.Context) (bool, error) {
	var out carResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/users/%d/car", c.userID))
	if err != nil {
		return false, fmt.Errorf("has-car action: %w", err)
	}
	if !res.IsSuccess() {
		return false, fmt.Errorf("has-car action: status %d", res.StatusCode())
	}
	return out.HasCar, nil
}

func (c *Client) SetCar(ctx context.Context, car types.CarData) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"make":  car.Make,
			"model": car.Model,
			"year":  car.Year,
		}).
		Put(fmt.Sprintf("/users/%d/car", c.userID))
	if err != nil {
		return fmt.Errorf("set-car action: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("set-car action: status %d", res.StatusCode())
	}
	return nil
}

func (c *Client) Create(ctx context.Context) (int64, error) {
	var out createResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/users/%d/fuel", c.userID))
	if err != nil {
		return 0, fmt.Errorf("create action: %w", err)
	}
	if !res.IsSuccess() {
		return 0, fmt.Errorf("create action: status %d", res.StatusCode())
	}
	return out.ID, nil
}

func (c *Client) Update(ctx context.Context, fuelID int64, data types.FuelData) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"amount": data.Amount,
			"price":  data.Price,
		}).
		Patch(fmt.Sprintf("/users/%d/fuel/%d", c.userID, fuelID))
	if err != nil {
		return fmt.Errorf("update action: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("update action: status %d", res.StatusCode())
	}
	return nil
}

// Get returns nil without error when the record does not exist for this
// user; the caller maps that to its own not-found handling.
func (c *Client) Get(ctx context.Context, fuelID int64) (*types.FuelRecord, error) {
	var out fuelResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/users/%d/fuel/%d", c.userID, fuelID))
	if err != nil {
		return nil, fmt.Errorf("get action: %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("get action: status %d", res.StatusCode())
	}

	return &types.FuelRecord{
		ID:     out.ID,
		UserID: c.userID,
		Amount: out.Amount,
		Price:  out.Price,
	}, nil
}
