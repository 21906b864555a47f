package homevisit

import (
	"testing"
	"time"

	"github.com/homevisit/homevisit/internal/platform/catalog"
)

// fixedNow is the reference instant used across tests: a Saturday
// morning at 10:15, so the same-day minimum start hour is 13.
var fixedNow = time.Date(2024, 6, 1, 10, 15, 0, 0, time.UTC)

// validPESEL satisfies the checksum and decodes to 1944-05-14.
const validPESEL = "44051401359"

func testDocument() catalog.Document {
	return catalog.Document{
		catalog.VisitTypes: {
			"homeVisit": {"en": "Home visit", "pl": "Wizyta domowa"},
		},
		catalog.Specializations: {
			"generalPractice": {"en": "General practice", "pl": "Internista"},
			"pediatrics":      {"en": "Pediatrics", "pl": "Pediatra"},
		},
		catalog.Topics: {
			"illness":      {"en": "Illness", "pl": "Choroba"},
			"prescription": {"en": "Prescription", "pl": "Recepta"},
		},
		catalog.Languages: {
			"polish":  {"en": "Polish", "pl": "Polski"},
			"english": {"en": "English", "pl": "Angielski"},
		},
		catalog.Countries: {
			"poland": {"en": "Poland", "pl": "Polska"},
		},
		catalog.AgeGroups: {
			"child": {"en": "Child", "pl": "Dziecko"},
			"adult": {"en": "Adult", "pl": "Dorosly"},
		},
		catalog.Symptoms: {
			"fever": {"en": "Fever", "pl": "Goraczka"},
			"cough": {"en": "Cough", "pl": "Kaszel"},
		},
		catalog.IDTypes: {
			"pesel":    {"en": "PESEL", "pl": "PESEL"},
			"passport": {"en": "Passport", "pl": "Paszport"},
		},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(testDocument(), "pl")
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func validSubmission() SubmissionInput {
	return SubmissionInput{
		RequestID:      "req-001",
		VisitType:      "homeVisit",
		Specialization: "generalPractice",
		Topic:          "illness",
		Language:       "polish",
		VisitSchedule: ScheduleInput{
			VisitDate:        "2024-06-02",
			ProvideTimeRange: false,
		},
		HomeAddress: AddressInput{
			Country:     "poland",
			Street:      "Marszalkowska",
			HouseNumber: 12,
		},
		Patients: []PatientInput{
			{
				AgeGroup:  AgeGroupAdult,
				FirstName: "Jan",
				LastName:  "Kowalski",
				Symptoms:  []string{"fever"},
				IDType:    IDTypePESEL,
				IDVal:     validPESEL,
				BirthDate: "1944-05-14",
			},
		},
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	set, err := catalog.NewSet(testDocument())
	if err != nil {
		t.Fatalf("build catalog set: %v", err)
	}
	s, err := NewService(set, "pl")
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	s.nowFn = func() time.Time { return fixedNow }
	return s
}

func hasError(errs []FieldError, field string, kind Kind) bool {
	for _, e := range errs {
		if e.Field == field && e.Kind == kind {
			return true
		}
	}
	return false
}

func intPtr(v int) *int {
	return &v
}
