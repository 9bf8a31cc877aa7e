package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molcraft/molcraft/internal/application/builder"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

func newFormulaCmd(opts *rootOptions, svc **builder.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "formula <file>",
		Short: "Print the canonical molecular formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			formula := (*svc).Formula(doc)
			if opts.OutputFormat == "json" {
				return printJSON(cmd, map[string]string{"formula": formula})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formula)
			return nil
		},
	}
}

func newRecognizeCmd(opts *rootOptions, svc **builder.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "recognize <file>",
		Short: "Match a molecule against the known-molecule catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			matches := (*svc).Recognize(cmd.Context(), doc)
			if opts.OutputFormat == "json" {
				if matches == nil {
					matches = []string{}
				}
				return printJSON(cmd, map[string]interface{}{
					"formula": (*svc).Formula(doc),
					"matches": matches,
				})
			}

			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matches, ", "))
			return nil
		},
	}
}

func newElementsCmd(opts *rootOptions, svc **builder.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "elements [symbol]",
		Short: "Show the element rule table, or one element's record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				info, err := (*svc).Element(args[0])
				if err != nil {
					return err
				}
				if opts.OutputFormat == "json" {
					return printJSON(cmd, info)
				}
				printElementRow(cmd, info)
				return nil
			}

			elements := (*svc).Elements()
			if opts.OutputFormat == "json" {
				return printJSON(cmd, elements)
			}
			for _, e := range elements {
				printElementRow(cmd, e)
			}
			return nil
		},
	}
}

func printElementRow(cmd *cobra.Command, info structtypes.ElementInfo) {
	types := make([]string, len(info.AllowedBondTypes))
	for i, t := range info.AllowedBondTypes {
		types[i] = string(t)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-2s  valence %d  bonds %-20s  max total order %d\n",
		info.Symbol, info.ValenceElectrons, strings.Join(types, ","), info.MaxTotalBondOrder)
}
