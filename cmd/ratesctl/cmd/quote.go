package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ratesservice/internal/provider"
	"ratesservice/internal/service"
)

var (
	quoteUnit      string
	quoteArrival   string
	quoteDeparture string
	quoteAges      []int
	quoteOccupants int
	quoteOffline   bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Query the rate of a unit for a date range",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteUnit, "unit", "", "unit name, e.g. \"Deluxe Suite\"")
	quoteCmd.Flags().StringVar(&quoteArrival, "arrival", "", "arrival date (dd/mm/yyyy)")
	quoteCmd.Flags().StringVar(&quoteDeparture, "departure", "", "departure date (dd/mm/yyyy)")
	quoteCmd.Flags().IntSliceVar(&quoteAges, "ages", nil, "occupant ages, comma separated")
	quoteCmd.Flags().IntVar(&quoteOccupants, "occupants", 0, "number of occupants (defaults to the number of ages)")
	quoteCmd.Flags().BoolVar(&quoteOffline, "offline", false, "skip the provider and use the synthetic rate")
}

// quoteRequest builds the same untyped request the HTTP endpoint decodes.
// Occupants defaults to the number of ages only when --occupants was not given.
func quoteRequest(occupantsSet bool) map[string]any {
	occupants := quoteOccupants
	if !occupantsSet {
		occupants = len(quoteAges)
	}
	ages := make([]any, len(quoteAges))
	for i, a := range quoteAges {
		ages[i] = a
	}
	return map[string]any{
		service.FieldUnitName:  quoteUnit,
		service.FieldArrival:   quoteArrival,
		service.FieldDeparture: quoteDeparture,
		service.FieldOccupants: occupants,
		service.FieldAges:      ages,
	}
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	var prov provider.RatesProvider = provider.NewSyntheticProvider()
	if !quoteOffline {
		remote := provider.NewGondwanaProvider(cfg.Upstream.URL, cfg.Upstream.TimeoutSec, cfg.Upstream.TLSVerify)
		prov = provider.NewFallbackProvider(logger, remote, prov)
	}

	svc := service.NewRateService(prov, service.NewValidator(), service.NewRequestTransformer(cfg.Rates), nil, logger)
	result, err := svc.GetRate(cmd.Context(), quoteRequest(cmd.Flags().Changed("occupants")))
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			for _, d := range vErr.Details {
				fmt.Fprintln(cmd.ErrOrStderr(), "  -", d)
			}
			return fmt.Errorf("invalid query")
		}
		return err
	}

	out := map[string]any{
		"Unit Name":    result.UnitName,
		"Rate":         result.Rate.InexactFloat64(),
		"Date Range":   result.DateRange,
		"Availability": result.Available,
		"Raw Response": result.Raw,
	}
	if result.Synthetic {
		out["Synthetic"] = true
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
