package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molcraft/molcraft/internal/application/builder"
)

func newValidateCmd(opts *rootOptions, svc **builder.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a molecule's stability and bonding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			report, err := (*svc).Validate(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if opts.OutputFormat == "json" {
				return printJSON(cmd, report)
			}
			printValidationReport(cmd, report)
			return nil
		},
	}
}

func printValidationReport(cmd *cobra.Command, report builder.ValidationReport) {
	out := cmd.OutOrStdout()
	r := report.Result

	fmt.Fprintf(out, "Formula:  %s\n", r.Formula)
	fmt.Fprintf(out, "Stable:   %v\n", r.IsStable)
	fmt.Fprintf(out, "Valid:    %v\n", r.IsValid)
	fmt.Fprintf(out, "Charge:   %+d\n", r.TotalCharge)
	if len(report.Matches) > 0 {
		fmt.Fprintf(out, "Matches:  %s\n", strings.Join(report.Matches, ", "))
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range r.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	if len(r.Hints) > 0 {
		fmt.Fprintln(out, "\nHints:")
		for _, h := range r.Hints {
			fmt.Fprintf(out, "  - %s\n", h)
		}
	}

	if len(r.AtomStability) > 0 {
		fmt.Fprintln(out, "\nAtoms:")
		for _, s := range r.AtomStability {
			state := "unstable"
			if s.IsStable {
				state = "stable"
			}
			fmt.Fprintf(out, "  %3d %-2s  electrons %d/%d  charge %+d  %s\n",
				s.AtomID, s.Element, s.CurrentElectrons, s.TargetElectrons, s.FormalCharge, state)
		}
	}
}
