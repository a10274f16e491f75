// Package store is the embedded Postgres implementation of the fuel resource
// actions, used when the server runs without a remote account service.
package store

import (
	"context"
	"fmt"
	"time"

	"fueltrack/internal/fuel"
	"fueltrack/internal/utils"
	"fueltrack/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	carTableName  = "fueltrack.cars"
	fuelTableName = "fueltrack.fuel_records"
)

var (
	carColumns  = utils.StructTagValues(types.Car{})
	fuelColumns = utils.StructTagValues(types.FuelRecord{})
)

type FuelRepository struct {
	pool *pgxpool.Pool
}

func NewFuelRepository(pool *pgxpool.Pool) *FuelRepository {
	return &FuelRepository{pool: pool}
}

// ForUser returns a handle scoped to one user's car and fuel records.
func (r *FuelRepository) ForUser(userID int64) fuel.ResourceClient {
	return &userFuel{repo: r, userID: userID}
}

type userFuel struct {
	repo   *FuelRepository
	userID int64
}

func (u *userFuel) HasCar(ctx context.Context) (bool, error) {
	query, args, err := psql().
		Select(carColumns...).
		From(carTableName).
		Where(sq.Eq{"user_id": u.userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to generate car query: %w", err)
	}

	var car types.Car
	err = pgxscan.Get(ctx, u.repo.pool, &car, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch car: %w", err)
	}

	return true, nil
}

func (u *userFuel) SetCar(ctx context.Context, data types.CarData) error {
	car := &types.Car{
		UserID:    u.userID,
		Make:      data.Make,
		Model:     data.Model,
		Year:      data.Year,
		CreatedAt: time.Now(),
	}

	query, args, err := psql().
		Insert(carTableName).
		SetMap(utils.StructToMap(car)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert car query: %w", err)
	}

	_, err = u.repo.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create car")
}

// Create inserts an empty fuel record and returns the allocated id.
func (u *userFuel) Create(ctx context.Context) (int64, error) {
	now := time.Now()

	query, args, err := psql().
		Insert(fuelTableName).
		Columns("user_id", "amount", "price", "created_at", "updated_at").
		Values(u.userID, 0, 0, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert fuel query: %w", err)
	}

	var id int64
	err = pgxscan.Get(ctx, u.repo.pool, &id, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to create fuel record: %w", err)
	}

	return id, nil
}

func (u *userFuel) Update(ctx context.Context, fuelID int64, data types.FuelData) error {
	query, args, err := psql().
		Update(fuelTableName).
		Set("amount", data.Amount).
		Set("price", data.Price).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": fuelID, "user_id": u.userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update fuel query for record %d: %w", fuelID, err)
	}

	_, err = u.repo.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to update fuel record")
}

// Get returns nil when the record does not exist for this user, so a record
// owned by someone else is indistinguishable from a missing one.
func (u *userFuel) Get(ctx context.Context, fuelID int64) (*types.FuelRecord, error) {
	query, args, err := psql().
		Select(fuelColumns...).
		From(fuelTableName).
		Where(sq.Eq{"id": fuelID, "user_id": u.userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate fuel query: %w", err)
	}

	var record types.FuelRecord
	err = pgxscan.Get(ctx, u.repo.pool, &record, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch fuel record: %w", err)
	}

	return &record, nil
}
