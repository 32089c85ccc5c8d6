package validation

import (
	"maps"
	"slices"
	"strings"
)

// Results maps field names to chain outcomes.
type Results map[string]Result

// Approve reports whether no field holds the failure value False().
// An empty set approves.
func (r Results) Approve() bool {
	for _, res := range r {
		if res.Value.IsFalse() {
			return false
		}
	}
	return true
}

// Validated returns every field's value except the excluded ones.
func (r Results) Validated(excluded ...string) map[string]Value {
	out := make(map[string]Value, len(r))
	for field, res := range r {
		out[field] = res.Value
	}
	for _, field := range excluded {
		delete(out, field)
	}
	return out
}

// Errors returns the messages of fields that carry one, except the excluded ones.
func (r Results) Errors(excluded ...string) map[string]string {
	out := make(map[string]string)
	for field, res := range r {
		if res.Message != "" {
			out[field] = res.Message
		}
	}
	for _, field := range excluded {
		delete(out, field)
	}
	return out
}

// Err returns nil when Errors is empty, otherwise a FieldErrors sorted by field.
func (r Results) Err(excluded ...string) error {
	msgs := r.Errors(excluded...)
	if len(msgs) == 0 {
		return nil
	}

	errs := make(FieldErrors, 0, len(msgs))
	for _, field := range slices.Sorted(maps.Keys(msgs)) {
		errs = append(errs, FieldError{Field: field, Message: msgs[field]})
	}
	return errs
}

// FieldError is one failed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the error returned by Results.Err. It matches
// ErrValidationFailed with errors.Is.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (fe FieldErrors) Has(field string) bool {
	return slices.ContainsFunc(fe, func(e FieldError) bool { return e.Field == field })
}

// Map returns field → message.
func (fe FieldErrors) Map() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Field] = e.Message
	}
	return out
}
