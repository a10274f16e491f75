package forms

import (
	"strconv"
	"strings"
)

// ErrInvalidData is the single reason attached to every rejected submission.
const ErrInvalidData = "Invalid data submitted"

type FieldKind int

const (
	Text FieldKind = iota
	Integer
	Float
	Image
)

// Field describes one input in a schema: its kind, whether it must be
// present, and optional numeric bounds (inclusive).
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Min      *float64
	Max      *float64
}

// Schema is an ordered set of field descriptors evaluated by one generic
// validator. Schemas are declared once per workflow and shared across
// requests; they hold no per-submission state.
type Schema struct {
	Name   string
	Fields []Field
}

type formState int

const (
	stateUnvalidated formState = iota
	stateValid
	stateErroneous
)

// Form binds a submission to a schema. It starts unvalidated and moves to
// exactly one of valid or erroneous; it never transitions back.
type Form struct {
	Schema     Schema
	Submission Submission

	state   formState
	reason  string
	cleaned map[string]any
	fields  []string
}

// Validate evaluates every declared field against the submission. Any
// invalid field rejects the whole submission; there is no partial
// acceptance. On success the returned form exposes coerced values via
// CleanedData.
func (s Schema) Validate(sub Submission) *Form {
	form := &Form{Schema: s, Submission: sub}

	cleaned := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		value, ok := field.clean(sub)
		if !ok {
			form.fields = append(form.fields, field.Name)
			continue
		}
		if value != nil {
			cleaned[field.Name] = value
		}
	}

	if len(form.fields) > 0 {
		form.state = stateErroneous
		form.reason = ErrInvalidData
		return form
	}

	form.state = stateValid
	form.cleaned = cleaned
	return form
}

func (f Field) clean(sub Submission) (any, bool) {
	if f.Kind == Image {
		att := sub.File(f.Name)
		if att == nil || len(att.Data) == 0 {
			return nil, !f.Required
		}
		return att, true
	}

	raw, present := sub.Get(f.Name)
	raw = strings.TrimSpace(raw)
	if !present || raw == "" {
		return nil, !f.Required
	}

	switch f.Kind {
	case Text:
		return raw, true
	case Integer:
		n, err := strconv.Atoi(raw)
		if err != nil || !f.inBounds(float64(n)) {
			return nil, false
		}
		return n, true
	case Float:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || !f.inBounds(n) {
			return nil, false
		}
		return n, true
	}

	return nil, false
}

func (f Field) inBounds(v float64) bool {
	if f.Min != nil && v < *f.Min {
		return false
	}
	if f.Max != nil && v > *f.Max {
		return false
	}
	return true
}

// Valid reports whether validation accepted the submission.
func (f *Form) Valid() bool {
	return f.state == stateValid
}

// Reason returns the human-readable rejection reason, empty unless the form
// is erroneous.
func (f *Form) Reason() string {
	return f.reason
}

// InvalidFields lists the names of the fields that failed validation. The
// whole-form reason is what callers surface; this exists for logging.
func (f *Form) InvalidFields() []string {
	return f.fields
}

// CleanedData returns the coerced field values: string for text, int for
// integer, float64 for float, *Attachment for image. Nil unless the form is
// valid.
func (f *Form) CleanedData() map[string]any {
	if f.state != stateValid {
		return nil
	}
	return f.cleaned
}

// String returns the cleaned value of a text field.
func (f *Form) String(name string) string {
	v, _ := f.CleanedData()[name].(string)
	return v
}

// Int returns the cleaned value of an integer field.
func (f *Form) Int(name string) int {
	v, _ := f.CleanedData()[name].(int)
	return v
}

// Float returns the cleaned value of a float field.
func (f *Form) Float(name string) float64 {
	v, _ := f.CleanedData()[name].(float64)
	return v
}

// File returns the cleaned value of an image field.
func (f *Form) File(name string) *Attachment {
	v, _ := f.CleanedData()[name].(*Attachment)
	return v
}
