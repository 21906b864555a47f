package homevisit

import (
	"strings"
	"time"

	"github.com/homevisit/homevisit/internal/platform/catalog"
)

// maxPatientAgeYears bounds how far back a birth date may lie.
const maxPatientAgeYears = 100

// adultAgeYears is the age at which a patient counts as an adult.
const adultAgeYears = 18

// validatePatient checks one patient entry at the given index and
// appends every failure to the verdict.
func validatePatient(v *Verdict, index int, p PatientInput, cat *catalog.Catalog, now time.Time) {
	if !cat.Has(catalog.AgeGroups, p.AgeGroup) {
		v.add(patientField(index, "ageGroup"), KindInvalidOption)
	}
	if strings.TrimSpace(p.FirstName) == "" {
		v.add(patientField(index, "firstName"), KindRequiredField)
	}
	if strings.TrimSpace(p.LastName) == "" {
		v.add(patientField(index, "lastName"), KindRequiredField)
	}

	for _, symptom := range p.Symptoms {
		if !cat.Has(catalog.Symptoms, symptom) {
			v.add(patientField(index, "symptoms"), KindInvalidOption)
			break
		}
	}

	if !cat.Has(catalog.IDTypes, p.IDType) {
		v.add(patientField(index, "idType"), KindInvalidOption)
	}
	if p.IDVal == "" || !ValidateIdentity(p.IDType, p.IDVal) {
		v.add(patientField(index, "idVal"), KindInputMismatch)
	}

	if p.BirthDate == "" {
		v.add(patientField(index, "birthDate"), KindRequiredField)
		return
	}
	birthDate, ok := parseDate(p.BirthDate)
	if !ok {
		v.add(patientField(index, "birthDate"), KindTimeMismatch)
		return
	}

	today := dateOnly(now)
	oldest := today.AddDate(-maxPatientAgeYears, 0, 0)
	if birthDate.Before(oldest) || birthDate.After(today) {
		v.add(patientField(index, "birthDate"), KindTimeMismatch)
	}

	// The declared age bracket must match the computed age as of today.
	adultThreshold := today.AddDate(-adultAgeYears, 0, 0)
	switch p.AgeGroup {
	case AgeGroupChild:
		if !birthDate.After(adultThreshold) {
			v.add(patientField(index, "ageGroup"), KindInputMismatch)
		}
	case AgeGroupAdult:
		if birthDate.After(adultThreshold) {
			v.add(patientField(index, "ageGroup"), KindInputMismatch)
		}
	}
}
