package homevisit

import (
	"strings"
	"time"

	"github.com/homevisit/homevisit/internal/platform/catalog"
)

// Patient count bounds per submission.
const (
	minPatients = 1
	maxPatients = 6
)

// Validator checks candidate submissions against the option catalog and
// the scheduling rules. It is stateless apart from the immutable
// catalog snapshot; every call is an independent, pure computation.
type Validator struct {
	catalog *catalog.Catalog
}

func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{catalog: cat}
}

// Validate runs every check over the submission and returns the full
// verdict. Checks never short-circuit; all failures are collected so
// the caller can surface them in one pass. now is captured once by the
// caller and threaded through every time-dependent rule.
func (val *Validator) Validate(in SubmissionInput, now time.Time) Verdict {
	var v Verdict

	if strings.TrimSpace(in.RequestID) == "" {
		v.add("requestId", KindRequiredField)
	}

	memberships := []struct {
		field    string
		category string
		value    string
	}{
		{"visitType", catalog.VisitTypes, in.VisitType},
		{"specialization", catalog.Specializations, in.Specialization},
		{"topic", catalog.Topics, in.Topic},
		{"language", catalog.Languages, in.Language},
	}
	for _, m := range memberships {
		if !val.catalog.Has(m.category, m.value) {
			v.add(m.field, KindInvalidOption)
		}
	}

	val.validateAddress(&v, "homeAddress", in.HomeAddress)
	if in.VisitAtSecondary {
		if in.SecondaryAddress == nil {
			v.add("secondaryAddress", KindRequiredField)
		} else {
			val.validateAddress(&v, "secondaryAddress", *in.SecondaryAddress)
		}
	}

	validateSchedule(&v, in.VisitSchedule, now)

	switch {
	case len(in.Patients) < minPatients:
		v.add("patients", KindRequiredField)
	case len(in.Patients) > maxPatients:
		v.add("patients", KindInputMismatch)
	default:
		for i, p := range in.Patients {
			validatePatient(&v, i, p, val.catalog, now)
		}
	}

	if v.Valid() {
		normalized := in
		if !in.VisitAtSecondary {
			normalized.SecondaryAddress = nil
		}
		v.Submission = &normalized
	}
	return v
}

func (val *Validator) validateAddress(v *Verdict, path string, a AddressInput) {
	if !val.catalog.Has(catalog.Countries, a.Country) {
		v.add(path+".country", KindInvalidOption)
	}
	if strings.TrimSpace(a.Street) == "" {
		v.add(path+".street", KindRequiredField)
	}
	if a.HouseNumber < 1 {
		v.add(path+".houseNumber", KindInputMismatch)
	}
}
