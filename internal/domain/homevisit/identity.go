package homevisit

import (
	"regexp"
	"time"
)

// peselWeights is the checksum weight vector applied to the first ten
// digits of a PESEL number.
var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// passportPattern matches two uppercase letters followed by seven
// digits.
var passportPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{7}$`)

// ValidateIdentity checks an identifier against the rules of its
// declared type. Unknown types never validate.
func ValidateIdentity(idType, idVal string) bool {
	switch idType {
	case IDTypePESEL:
		return peselValid(idVal)
	case IDTypePassport:
		return passportPattern.MatchString(idVal)
	default:
		return false
	}
}

// peselValid requires exactly eleven decimal digits, a matching
// checksum digit and a decodable embedded birth date.
func peselValid(idVal string) bool {
	digits, ok := peselDigits(idVal)
	if !ok {
		return false
	}

	sum := 0
	for i, w := range peselWeights {
		sum += digits[i] * w
	}
	if (10-sum%10)%10 != digits[10] {
		return false
	}

	_, ok = DecodePESELBirthDate(idVal)
	return ok
}

// DecodePESELBirthDate extracts the birth date embedded in a PESEL
// number. The month digits encode the century: months 1-12 fall in the
// 1900s, 21-32 in the 2000s, 41-52 in the 2100s, 61-72 in the 2200s and
// 81-92 in the 1800s. Decoding fails when the month matches no bucket
// or the day does not exist in the decoded month.
func DecodePESELBirthDate(idVal string) (time.Time, bool) {
	digits, ok := peselDigits(idVal)
	if !ok {
		return time.Time{}, false
	}

	year := digits[0]*10 + digits[1]
	month := digits[2]*10 + digits[3]
	day := digits[4]*10 + digits[5]

	var century int
	switch {
	case month >= 1 && month <= 12:
		century = 1900
	case month >= 21 && month <= 32:
		century = 2000
	case month >= 41 && month <= 52:
		century = 2100
	case month >= 61 && month <= 72:
		century = 2200
	case month >= 81 && month <= 92:
		century = 1800
	default:
		return time.Time{}, false
	}
	month = (month-1)%20 + 1

	date := time.Date(century+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return date, true
}

func peselDigits(idVal string) ([11]int, bool) {
	var digits [11]int
	if len(idVal) != 11 {
		return digits, false
	}
	for i := 0; i < 11; i++ {
		c := idVal[i]
		if c < '0' || c > '9' {
			return digits, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}
