// Package commands implements jobctl, a terminal front end for browsing the
// same job snapshot the API serves.
package commands

import (
	"encoding/json"
	"fmt"

	"jobboard-portal/internal/store"
	"jobboard-portal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	dataFile string
	verbose  bool
	json     bool
}

// NewRootCmd builds the jobctl command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "jobctl",
		Short: "Browse job postings and companies from the terminal",
		Long: `jobctl filters job postings and the company directory.

Without --data-file the built-in sample data set is used.

Examples:
  jobctl jobs --tag Python --salary-min 100000
  jobctl jobs --search react --type full-time
  jobctl job 3
  jobctl companies --industry Technology
  jobctl company 1
  jobctl export --data-file jobs.yaml > copy.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitCLI(opts.verbose); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.dataFile, "data-file", "", "YAML or JSON snapshot to read instead of the sample data")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of tables")

	root.AddCommand(
		newJobsCmd(opts),
		newJobCmd(opts),
		newCompaniesCmd(opts),
		newCompanyCmd(opts),
		newExportCmd(opts),
	)

	return root
}

func (o *rootOptions) loadSnapshot() (*store.Store, error) {
	if o.dataFile == "" {
		logger.Debug("Using sample data")
		return store.Mock(), nil
	}

	snapshot, err := store.LoadFile(o.dataFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded data file",
		zap.String("file", o.dataFile),
		zap.Int("companies", snapshot.CompanyCount()),
		zap.Int("jobs", snapshot.JobCount()),
	)
	return snapshot, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
