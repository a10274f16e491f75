package seed

import (
	"context"
	"fmt"

	"fueltrack/internal/store"
	"fueltrack/pkg/types"

	"github.com/k0kubun/pp"
)

type fakeFuelupSeed struct {
	UserID  int64
	Gallons float64
	Price   float64
}

var fakeCars = map[int64]types.CarData{
	1001: {Make: "Toyota", Model: "Corolla", Year: 2012},
	1002: {Make: "Ford", Model: "F-150", Year: 2008},
	1003: {Make: "Honda", Model: "Fit", Year: 2015},
}

var fakeFuelups = []fakeFuelupSeed{
	{UserID: 1001, Gallons: 9.2, Price: 3.15},
	{UserID: 1001, Gallons: 11.7, Price: 3.42},
	{UserID: 1002, Gallons: 24.5, Price: 2.98},
	{UserID: 1003, Gallons: 7.8, Price: 3.61},
}

// SeedFuelData loads dev cars and fuel records into the embedded store. Seed
// cars are skipped when the user already has one, so reruns are safe.
func SeedFuelData(ctx context.Context, repo *store.FuelRepository) error {
	seededCars := 0
	for userID, car := range fakeCars {
		client := repo.ForUser(userID)

		hasCar, err := client.HasCar(ctx)
		if err != nil {
			return fmt.Errorf("failed to check car for user %d: %w", userID, err)
		}
		if hasCar {
			continue
		}

		if err := client.SetCar(ctx, car); err != nil {
			return fmt.Errorf("failed to seed car for user %d: %w", userID, err)
		}
		seededCars++
	}

	seeded := make([]*types.FuelRecord, 0, len(fakeFuelups))
	for _, fuelup := range fakeFuelups {
		client := repo.ForUser(fuelup.UserID)

		id, err := client.Create(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed fuel record for user %d: %w", fuelup.UserID, err)
		}

		err = client.Update(ctx, id, types.FuelData{Amount: fuelup.Gallons, Price: fuelup.Price})
		if err != nil {
			return fmt.Errorf("failed to populate fuel record %d: %w", id, err)
		}

		record, err := client.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch seeded fuel record %d: %w", id, err)
		}
		seeded = append(seeded, record)
	}

	pp.Print(seeded)

	fmt.Printf("Seeded %d cars and %d fuel records\n", seededCars, len(seeded))
	return nil
}
