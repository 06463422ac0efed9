package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"resume-builder/internal/wiring"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := wiring.NewCatalog(cfg)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tFEATURES")
		for _, d := range c.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Category, strings.Join(d.Features, ", "))
		}
		return w.Flush()
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(templatesCmd)
}
