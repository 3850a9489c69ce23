package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ratesservice/internal/provider"
	"ratesservice/internal/service"
)

const maxRequestBodyBytes = 1 << 20

// Messages are surfaced verbatim to clients.
var (
	errEmptyBody    = errors.New("Request body is empty")        //nolint:staticcheck // client-facing text
	errInvalidJSON  = errors.New("Invalid JSON in request body") //nolint:staticcheck // client-facing text
	errBodyTooLarge = errors.New("Request body exceeds 1 MiB")   //nolint:staticcheck // client-facing text
)

// RateRequest documents the request body for a rate query
type RateRequest struct {
	UnitName  string `json:"Unit Name" example:"Deluxe Suite"`
	Arrival   string `json:"Arrival" example:"15/12/2024"`
	Departure string `json:"Departure" example:"20/12/2024"`
	Occupants int    `json:"Occupants" example:"3"`
	Ages      []int  `json:"Ages" example:"25,30,8"`
}

// RateResponse represents the response for a rate query
type RateResponse struct {
	UnitName     string                     `json:"Unit Name" example:"Deluxe Suite"`
	Rate         float64                    `json:"Rate" example:"150"`
	DateRange    string                     `json:"Date Range" example:"2024-12-15 to 2024-12-20"`
	Availability bool                       `json:"Availability" example:"true"`
	Synthetic    bool                       `json:"Synthetic,omitempty" example:"false"`
	RawResponse  *provider.UpstreamResponse `json:"Raw Response" swaggertype:"object"`
}

// UnitsResponse represents the unit catalog
type UnitsResponse struct {
	Units      []service.Unit `json:"units"`
	Total      int            `json:"total" example:"15"`
	Categories []string       `json:"categories"`
}

// IndexResponse describes the service
type IndexResponse struct {
	Message   string            `json:"message" example:"Rates API Backend"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
	Status    string            `json:"status" example:"running"`
}

// HandleGetRate godoc
// @Summary Query a unit rate
// @Description Validates the query, forwards it to the rates provider and returns the simplified rate. Falls back to a synthetic rate when the provider is unreachable.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body RateRequest true "Rate query"
// @Success 200 {object} RateResponse "Rate resolved"
// @Failure 400 {object} ErrorResponse "Invalid request or validation failed"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /rates [post]
func HandleGetRate(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := decodeRateRequest(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
		if errors.Is(err, errBodyTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request too large", err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		result, err := svc.GetRate(r.Context(), raw)
		if err != nil {
			var vErr *service.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeError(w, http.StatusBadRequest, "Validation failed", vErr.Details...)
			default:
				writeError(w, http.StatusInternalServerError, "Internal server error",
					"An unexpected error occurred. Please try again later.")
			}
			return
		}

		writeJSON(w, http.StatusOK, RateResponse{
			UnitName:     result.UnitName,
			Rate:         result.Rate.InexactFloat64(),
			DateRange:    result.DateRange,
			Availability: result.Available,
			Synthetic:    result.Synthetic,
			RawResponse:  result.Raw,
		})
	}
}

// HandleListUnits godoc
// @Summary List bookable units
// @Description Returns the unit names offered to clients, with their categories.
// @Tags rates
// @Produce json
// @Success 200 {object} UnitsResponse "Unit catalog"
// @Router /units [get]
func HandleListUnits(svc service.RateServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		units := svc.ListUnits()
		writeJSON(w, http.StatusOK, UnitsResponse{
			Units:      units,
			Total:      len(units),
			Categories: service.UnitCategories(units),
		})
	}
}

// HandleIndex godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, IndexResponse{
			Message: "Rates API Backend",
			Version: "1.0.0",
			Endpoints: map[string]string{
				"POST /rates": "Query accommodation rates",
				"GET /units":  "List available units",
			},
			Status: "running",
		})
	}
}

// HandleMethodNotAllowed writes the error envelope for unsupported methods.
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed",
			r.Method+" is not supported for "+r.URL.Path)
	}
}

// decodeRateRequest keeps numbers as json.Number so integer-ness survives decoding.
// The body must hold exactly one JSON object.
func decodeRateRequest(r io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, errInvalidJSON
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return nil, errInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errInvalidJSON
	}
	return raw, nil
}
