package forms

// Payload is the result data carried out of a completed workflow step.
type Payload map[string]any

// Outcome is the result of submitting a sequential form: either the form
// comes back erroneous for redisplay, or the step completed and carries a
// payload forward. Remote failures are ordinary errors, not outcomes.
type Outcome interface {
	outcome()
}

// Rejected wraps the erroneous form for redisplay.
type Rejected struct {
	Form *Form
}

// Completed signals that validation and all side effects succeeded.
type Completed struct {
	Payload Payload
}

func (Rejected) outcome()  {}
func (Completed) outcome() {}
