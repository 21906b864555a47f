package homevisit

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/homevisit/homevisit/internal/platform/catalog"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDate     = errors.New("invalid date")
)

// ValidationResponse is what callers get back from a validation run.
// DerivedBirthDates suggests PESEL-decoded birth dates per patient
// field path when they differ from the supplied value; the caller
// decides whether to apply them, the engine never overwrites input.
type ValidationResponse struct {
	Valid             bool              `json:"valid"`
	Errors            []FieldError      `json:"errors,omitempty"`
	Submission        *SubmissionInput  `json:"submission,omitempty"`
	DerivedBirthDates map[string]string `json:"derivedBirthDates,omitempty"`
}

// Service validates submissions and manages booking confirmations.
// Validation checks option names, which are language independent; the
// catalog set only matters for serving translated labels.
type Service struct {
	catalogs        *catalog.Set
	defaultLanguage string
	validator       *Validator
	bookings        *bookingStore
	nowFn           func() time.Time
}

func NewService(catalogs *catalog.Set, defaultLanguage string) (*Service, error) {
	cat, err := catalogs.For(defaultLanguage)
	if err != nil {
		return nil, err
	}
	return &Service{
		catalogs:        catalogs,
		defaultLanguage: cat.Language(),
		validator:       NewValidator(cat),
		bookings:        newBookingStore(),
		nowFn:           time.Now,
	}, nil
}

// Validate runs the full rule set over a submission. The clock is read
// exactly once and threaded through every check.
func (s *Service) Validate(in SubmissionInput) ValidationResponse {
	now := s.nowFn()
	verdict := s.validator.Validate(in, now)

	resp := ValidationResponse{
		Valid:      verdict.Valid(),
		Errors:     verdict.Errors,
		Submission: verdict.Submission,
	}

	for i, p := range in.Patients {
		if p.IDType != IDTypePESEL {
			continue
		}
		birthDate, ok := DecodePESELBirthDate(p.IDVal)
		if !ok {
			continue
		}
		derived := birthDate.Format(dateLayout)
		if derived == p.BirthDate {
			continue
		}
		if resp.DerivedBirthDates == nil {
			resp.DerivedBirthDates = make(map[string]string)
		}
		resp.DerivedBirthDates[patientField(i, "birthDate")] = derived
	}

	return resp
}

// Submit validates a submission and, when it passes, stores and returns
// a booking confirmation. On failure the confirmation is nil and the
// response carries the errors.
func (s *Service) Submit(in SubmissionInput) (*BookingConfirmation, ValidationResponse) {
	resp := s.Validate(in)
	if !resp.Valid {
		return nil, resp
	}

	conf := &BookingConfirmation{
		ID:         uuid.New().String(),
		RequestID:  resp.Submission.RequestID,
		Submission: *resp.Submission,
		CreatedAt:  s.nowFn(),
	}
	s.bookings.save(conf)
	return conf, resp
}

// GetBooking returns a stored confirmation by ID.
func (s *Service) GetBooking(id string) (*BookingConfirmation, error) {
	conf, ok := s.bookings.get(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return conf, nil
}

// ListBookings returns a page of confirmations and the total count.
func (s *Service) ListBookings(limit, offset int) ([]*BookingConfirmation, int) {
	return s.bookings.list(limit, offset)
}

// Options returns catalog options with labels in the requested
// language, either one category or all of them. An empty language
// selects the configured default.
func (s *Service) Options(category, language string) (map[string][]catalog.Option, error) {
	if language == "" {
		language = s.defaultLanguage
	}
	cat, err := s.catalogs.For(language)
	if err != nil {
		return nil, err
	}

	if category != "" {
		opts, err := cat.Options(category)
		if err != nil {
			return nil, err
		}
		return map[string][]catalog.Option{category: opts}, nil
	}

	out := make(map[string][]catalog.Option)
	for _, name := range cat.Categories() {
		opts, err := cat.Options(name)
		if err != nil {
			return nil, err
		}
		out[name] = opts
	}
	return out, nil
}

// Windows computes the selectable hour ranges for a visit date, with
// the To range narrowed by an already chosen start hour.
func (s *Service) Windows(visitDate string, chosenFrom *int) (*Windows, error) {
	date, ok := parseDate(visitDate)
	if !ok {
		return nil, ErrInvalidDate
	}
	return ComputeWindows(s.nowFn(), date, true, chosenFrom), nil
}
