package homevisit

import "fmt"

// Kind is a field-level error kind. Kinds are message keys; display
// text is resolved by the caller in the user's language.
type Kind string

const (
	KindRequiredField  Kind = "RequiredField"
	KindInvalidOption  Kind = "InvalidOption"
	KindInputMismatch  Kind = "InputMismatch"
	KindTimeMismatch   Kind = "TimeMismatch"
	KindDateOutOfRange Kind = "DateOutOfRange"
	KindTimeOutOfRange Kind = "TimeOutOfRange"
)

// FieldError locates one failed check. Field uses dot and index
// notation addressing the offending leaf, e.g. "patients.2.idVal".
type FieldError struct {
	Field string `json:"fieldPath"`
	Kind  Kind   `json:"message"`
}

// Verdict is the outcome of validating a submission. Errors holds every
// failed check in evaluation order; when it is empty, Submission carries
// the normalized submission.
type Verdict struct {
	Submission *SubmissionInput `json:"submission,omitempty"`
	Errors     []FieldError     `json:"errors,omitempty"`
}

// Valid reports whether the submission passed every check.
func (v Verdict) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Verdict) add(field string, kind Kind) {
	v.Errors = append(v.Errors, FieldError{Field: field, Kind: kind})
}

// patientField builds the field path of one patient attribute.
func patientField(index int, name string) string {
	return fmt.Sprintf("patients.%d.%s", index, name)
}
