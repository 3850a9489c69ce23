package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	maxUnitNameLen = 100
	maxOccupants   = 20
	maxAge         = 150
)

var (
	unitNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)
	datePattern     = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

var requiredFields = []string{FieldUnitName, FieldArrival, FieldDeparture, FieldOccupants, FieldAges}

// Validator defines the interface for rate request validation.
type Validator interface {
	Validate(raw map[string]any) []string
}

type check func(raw map[string]any) []string

type validator struct {
	checks []check
}

// NewValidator creates a new rate request validator.
func NewValidator() Validator {
	return &validator{
		checks: []check{checkUnitName, checkDates, checkOccupants, checkAges},
	}
}

// Validate returns one message per violated rule; an empty result means valid.
// Missing fields are reported alone, without running the remaining checks.
func (v *validator) Validate(raw map[string]any) []string {
	var errs []string
	for _, field := range requiredFields {
		if val, ok := raw[field]; !ok || val == nil {
			errs = append(errs, "Missing required field: "+field)
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for _, c := range v.checks {
		errs = append(errs, c(raw)...)
	}
	return errs
}

func checkUnitName(raw map[string]any) []string {
	name, ok := raw[FieldUnitName].(string)
	switch {
	case !ok || strings.TrimSpace(name) == "":
		return []string{"Unit Name must be a non-empty string"}
	case len(name) > maxUnitNameLen:
		return []string{"Unit Name must be less than 100 characters"}
	case !unitNamePattern.MatchString(name):
		return []string{"Unit Name contains invalid characters"}
	}
	return nil
}

func checkDates(raw map[string]any) []string {
	var errs []string
	arrival, arrivalOK := parseInputDate(raw[FieldArrival])
	if !arrivalOK {
		errs = append(errs, "Arrival date must be in dd/mm/yyyy format")
	}
	departure, departureOK := parseInputDate(raw[FieldDeparture])
	if !departureOK {
		errs = append(errs, "Departure date must be in dd/mm/yyyy format")
	}
	if arrivalOK && departureOK && !arrival.Before(departure) {
		errs = append(errs, "Arrival date must be before departure date")
	}
	return errs
}

func checkOccupants(raw map[string]any) []string {
	n, ok := asInt(raw[FieldOccupants])
	switch {
	case !ok || n <= 0:
		return []string{"Occupants must be a positive integer"}
	case n > maxOccupants:
		return []string{"Occupants cannot exceed 20"}
	}
	return nil
}

func checkAges(raw map[string]any) []string {
	ages, ok := raw[FieldAges].([]any)
	if !ok {
		return []string{"Ages must be an array"}
	}

	var errs []string
	if n, ok := asInt(raw[FieldOccupants]); ok && len(ages) != n {
		errs = append(errs, "Number of ages must match occupants count")
	}
	for i, a := range ages {
		age, ok := asInt(a)
		switch {
		case !ok || age <= 0:
			errs = append(errs, fmt.Sprintf("Age at index %d must be a positive integer", i))
		case age > maxAge:
			errs = append(errs, fmt.Sprintf("Age at index %d cannot exceed 150 years", i))
		}
	}
	return errs
}

// parseInputDate accepts only dd/mm/yyyy literals naming a real calendar day.
func parseInputDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(inputDateLayout, s)
	if err != nil || t.Format(inputDateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

// asInt reports whether v is an integer value. Decoded JSON numbers must be
// integral literals; floats never qualify.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case int:
		return x, true
	case int64:
		return int(x), true
	default:
		return 0, false
	}
}
