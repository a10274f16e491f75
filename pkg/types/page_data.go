package types

// UserData is injected into every rendered page.
type UserData struct {
	IsAuthenticated bool
	UserID          int64
	UserEmail       string
}

type UserDataSetter interface {
	SetUserData(data UserData)
}

type BasePageData struct {
	Title  string
	Error  string
	Notice string
	User   UserData
}

func (b *BasePageData) SetUserData(data UserData) {
	b.User = data
}

type FuelPageData struct {
	BasePageData
	HasCar bool
}

type PlayPageData struct {
	BasePageData
	// Fuelup carries the step-1 completion payload into the page.
	Fuelup map[string]any
}
