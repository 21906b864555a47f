package homevisit

import "time"

// Option name values the cross-field rules key on. These are names from
// the catalog, not display labels.
const (
	AgeGroupChild = "child"
	AgeGroupAdult = "adult"

	IDTypePESEL    = "pesel"
	IDTypePassport = "passport"
)

// dateLayout is the wire format for calendar dates in the form payload.
const dateLayout = "2006-01-02"

// AddressInput is a visit address as submitted by the form.
type AddressInput struct {
	Country     string `json:"country"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
}

// PatientInput is one patient entry of a submission.
type PatientInput struct {
	AgeGroup  string   `json:"ageGroup"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Symptoms  []string `json:"symptoms"`
	IDType    string   `json:"idType"`
	IDVal     string   `json:"idVal"`
	BirthDate string   `json:"birthDate"`
}

// ScheduleInput carries the requested visit date and optional hour range.
// VisitFrom and VisitTo are pointers so that an absent hour is
// distinguishable from hour zero.
type ScheduleInput struct {
	VisitDate        string `json:"visitDate"`
	ProvideTimeRange bool   `json:"provideTimeRange"`
	VisitFrom        *int   `json:"visitFrom,omitempty"`
	VisitTo          *int   `json:"visitTo,omitempty"`
}

// SubmissionInput is a candidate booking submission. The same shape is
// returned as the normalized submission on a valid verdict, with
// SecondaryAddress stripped when the visit is not at a secondary
// address.
type SubmissionInput struct {
	RequestID        string         `json:"requestId"`
	VisitType        string         `json:"visitType"`
	Specialization   string         `json:"specialization"`
	Topic            string         `json:"topic"`
	Language         string         `json:"language"`
	AdditionalInfo   string         `json:"additionalInfo,omitempty"`
	VisitSchedule    ScheduleInput  `json:"visitSchedule"`
	HomeAddress      AddressInput   `json:"homeAddress"`
	VisitAtSecondary bool           `json:"visitAtSecondary"`
	SecondaryAddress *AddressInput  `json:"secondaryAddress,omitempty"`
	Patients         []PatientInput `json:"patients"`
}

// BookingConfirmation is the record produced when a valid submission is
// accepted.
type BookingConfirmation struct {
	ID         string          `json:"id"`
	RequestID  string          `json:"requestId"`
	Submission SubmissionInput `json:"submission"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// parseDate parses a wire-format date. Dates are calendar days with no
// time component; they normalize to midnight UTC so window comparisons
// are location independent.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly truncates an instant to its calendar day at midnight UTC,
// matching what parseDate produces.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
