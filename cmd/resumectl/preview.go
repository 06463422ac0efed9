package main

import (
	"fmt"
	"os"

	"resume-builder/internal/wiring"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewOut string

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview <template-id>",
	Short: "Render a template with the sample resume to HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := wiring.NewProcessor(cfg).Preview(args[0])
		if err != nil {
			return err
		}
		if previewOut == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		}
		if err := os.WriteFile(previewOut, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", previewOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", previewOut)
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Output file (default stdout)")
}
