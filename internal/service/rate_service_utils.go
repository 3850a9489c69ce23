package service

import (
	"errors"
	"html"
	"strings"
	"time"
)

// Request field names of the client-facing contract.
const (
	FieldUnitName  = "Unit Name"
	FieldArrival   = "Arrival"
	FieldDeparture = "Departure"
	FieldOccupants = "Occupants"
	FieldAges      = "Ages"
)

const (
	inputDateLayout    = "02/01/2006"
	upstreamDateLayout = "2006-01-02"
)

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")

// ValidationError carries every rule violation found in a rate request, in check order.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Sanitize trims and HTML-escapes every string in v, recursing into maps and slices.
// Other values are returned unchanged.
func Sanitize(v any) any {
	switch x := v.(type) {
	case string:
		return html.EscapeString(strings.TrimSpace(x))
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Sanitize(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Sanitize(val)
		}
		return out
	default:
		return v
	}
}

func formatUpstreamDate(t time.Time) string {
	return t.Format(upstreamDateLayout)
}
