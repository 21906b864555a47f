package homevisit

import "time"

// Booking window policy. Same-day bookings need a lead time of two full
// hours, three once the current hour is already partially elapsed. The
// latest selectable start hour is 22 so that at least a one hour gap to
// the latest end hour 23 remains.
const (
	bookingWindowDays = 3
	sameDayLeadHours  = 2
	lastFromHour      = 22
	firstToHour       = 1
	lastToHour        = 23
)

// HourRange is an inclusive range of selectable hours.
type HourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Windows holds the selectable hour ranges for a visit date. To depends
// on the chosen From value and must be recomputed whenever it changes.
type Windows struct {
	From HourRange `json:"fromRange"`
	To   HourRange `json:"toRange"`
}

// minimumStartHour returns the earliest selectable start hour for a
// same-day booking at the given instant.
func minimumStartHour(now time.Time) int {
	h := now.Hour() + sameDayLeadHours
	if now.Minute() > 0 {
		h++
	}
	return h
}

// ComputeWindows derives the selectable hour ranges for a visit date.
// It returns nil when no time range was requested; the caller then
// skips hour selection entirely. chosenFrom narrows the To range once a
// start hour is picked.
func ComputeWindows(now, visitDate time.Time, provideTimeRange bool, chosenFrom *int) *Windows {
	if !provideTimeRange {
		return nil
	}

	min := 0
	if dateOnly(visitDate).Equal(dateOnly(now)) {
		min = minimumStartHour(now)
	}

	toMin := min + 1
	if chosenFrom != nil {
		toMin = *chosenFrom + 1
	}

	return &Windows{
		From: HourRange{Min: min, Max: lastFromHour},
		To:   HourRange{Min: toMin, Max: lastToHour},
	}
}

// validateSchedule checks the visit date against the booking window and,
// when a time range is requested, the hour pair against the derived
// bounds. Absent or unparseable dates count as out of range.
func validateSchedule(v *Verdict, in ScheduleInput, now time.Time) {
	today := dateOnly(now)
	visitDate, ok := parseDate(in.VisitDate)
	if !ok || visitDate.Before(today) || visitDate.After(today.AddDate(0, 0, bookingWindowDays)) {
		v.add("visitSchedule.visitDate", KindDateOutOfRange)
	}

	if !in.ProvideTimeRange {
		return
	}

	minHour := 0
	if ok && visitDate.Equal(today) {
		minHour = minimumStartHour(now)
	}

	if in.VisitFrom == nil {
		v.add("visitSchedule.visitFrom", KindRequiredField)
	} else if *in.VisitFrom < minHour || *in.VisitFrom > lastFromHour {
		v.add("visitSchedule.visitFrom", KindTimeOutOfRange)
	}

	switch {
	case in.VisitTo == nil:
		v.add("visitSchedule.visitTo", KindRequiredField)
	case *in.VisitTo < firstToHour || *in.VisitTo > lastToHour:
		v.add("visitSchedule.visitTo", KindTimeOutOfRange)
	case in.VisitFrom != nil && *in.VisitTo <= *in.VisitFrom+1:
		v.add("visitSchedule.visitTo", KindTimeOutOfRange)
	}
}
