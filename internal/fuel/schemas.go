package fuel

import "fueltrack/internal/forms"

// Field bounds mirror what the account service will accept; validation
// rejects out-of-range values before any remote call is made.
var (
	// RegistrationSchema covers one-time vehicle registration.
	RegistrationSchema = forms.Schema{
		Name: "registration",
		Fields: []forms.Field{
			{Name: "make", Kind: forms.Text, Required: true},
			{Name: "model", Kind: forms.Text, Required: true},
			{Name: "year", Kind: forms.Integer, Required: true, Min: bound(1970), Max: bound(2020)},
		},
	}

	// FuelupSchema covers the single-step fuel-up submission.
	FuelupSchema = forms.Schema{
		Name: "fuelup",
		Fields: []forms.Field{
			{Name: "receipt", Kind: forms.Image, Required: true},
			{Name: "price", Kind: forms.Float, Required: true, Min: bound(0), Max: bound(10)},
			{Name: "gallons", Kind: forms.Float, Required: true, Min: bound(0), Max: bound(30)},
			{Name: "grade", Kind: forms.Integer, Required: true},
			{Name: "chain", Kind: forms.Text, Required: true},
		},
	}

	// FuelupStep1Schema is the reduced field set for the first page of the
	// two-step flow; grade and chain are collected later.
	FuelupStep1Schema = forms.Schema{
		Name: "fuelup-step1",
		Fields: []forms.Field{
			{Name: "receipt", Kind: forms.Image, Required: true},
			{Name: "price", Kind: forms.Float, Required: true, Min: bound(0), Max: bound(10)},
			{Name: "gallons", Kind: forms.Float, Required: true, Min: bound(0), Max: bound(30)},
		},
	}
)

func bound(v float64) *float64 {
	return &v
}
