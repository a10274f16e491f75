package types

import (
	"errors"
	"time"
)

var (
	ErrFuelNotFound = errors.New("fuel record not found")
	ErrCarNotFound  = errors.New("car not found")
)

// FuelRecord is one logged fuel purchase. Records are created empty by the
// account service and populated by a follow-up update; the receipt image lives
// in object storage, referenced by the record id.
type FuelRecord struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Amount    float64   `db:"amount"`
	Price     float64   `db:"price"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FuelData carries the fields an update action may set on a fuel record.
type FuelData struct {
	Amount float64
	Price  float64
}

// Car is the single vehicle registered to a user.
type Car struct {
	UserID    int64     `db:"user_id"`
	Make      string    `db:"make"`
	Model     string    `db:"model"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}

// CarData carries the registration fields for the set-car action.
type CarData struct {
	Make  string
	Model string
	Year  int
}
