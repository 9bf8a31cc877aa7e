// Package cli implements the molcraft command line: offline validation,
// formula generation, recognition and rule lookups against molecule files.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/molfile"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// rootOptions holds the global CLI flags.
type rootOptions struct {
	LogLevel     string
	OutputFormat string
}

// NewRootCommand assembles the root command and its subcommands.  The CLI
// runs the engine in-process; it needs no server, database or broker.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	var svc *builder.Service

	cmd := &cobra.Command{
		Use:     "molcraft",
		Short:   "molcraft validates molecular structures from the command line",
		Long:    "molcraft validates molecular structures against valence and bonding rules,\ncomputes molecular formulas and formal charges, and recognizes common molecules.\nInput files may be JSON molecule documents or MDL molfiles (.mol/.sdf).",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.NewLogger(logging.Config{
				Level:       opts.LogLevel,
				Format:      "console",
				OutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}
			svc = builder.NewService(nil, log)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(
		newValidateCmd(opts, &svc),
		newFormulaCmd(opts, &svc),
		newRecognizeCmd(opts, &svc),
		newElementsCmd(opts, &svc),
	)
	return cmd
}

// Execute runs the CLI and reports failures on stderr.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
		return err
	}
	return nil
}

// loadDocument reads a molecule document from path, dispatching on the file
// extension: .mol and .sdf parse as molfiles, everything else as JSON.
func loadDocument(path string) (structtypes.MoleculeDocument, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mol", ".sdf":
		return molfile.ParseFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return structtypes.MoleculeDocument{}, errors.Wrap(err,
			errors.ErrCodeStructureFileUnreadable, "failed to read molecule file")
	}
	var doc structtypes.MoleculeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return structtypes.MoleculeDocument{}, errors.Wrap(err,
			errors.ErrCodeStructureFileMalformed, "molecule file is not a valid JSON document")
	}
	return doc, nil
}

func printJSON(cmd *cobra.Command, data interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
