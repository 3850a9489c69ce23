package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ratesservice/internal/service"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the bookable units",
	Run: func(cmd *cobra.Command, _ []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tDESCRIPTION")
		for _, u := range service.Units() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Category, u.Description)
		}
		_ = w.Flush()
	},
}
