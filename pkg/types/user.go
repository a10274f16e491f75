package types

// User identifies the authenticated requester. The id is the account
// service's sequential numeric id, taken from the verified token subject.
type User struct {
	ID    int64
	Email string
}
