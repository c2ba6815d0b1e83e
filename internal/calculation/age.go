package calculation

import (
	"strings"
	"time"

	"github.com/rgehrsitz/form11/pkg/dateutil"
)

// DefaultAge is assumed when no usable birth date is supplied, so pension
// relief falls into a mid-range bracket instead of failing.
const DefaultAge = 35

// ResolveAge returns the taxpayer's exact age at now. An empty or
// unparseable birth date yields DefaultAge.
func ResolveAge(birthDate string, now time.Time) int {
	age, _ := resolveAge(birthDate, now)
	return age
}

func resolveAge(birthDate string, now time.Time) (int, error) {
	if strings.TrimSpace(birthDate) == "" {
		return DefaultAge, nil
	}
	born, err := dateutil.ParseISODate(birthDate)
	if err != nil {
		return DefaultAge, err
	}
	return dateutil.Age(born, now), nil
}
