package commands

import (
	"os"

	"jobboard-portal/internal/store"
	"jobboard-portal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the snapshot as a YAML data file",
		Long: `Write the current snapshot in the data file format accepted by
--data-file and by the server's DATA_FILE setting. Exporting without
--data-file gives a starting point built from the sample data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return store.Encode(cmd.OutOrStdout(), snapshot)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := store.Encode(f, snapshot); err != nil {
				f.Close()
				return err
			}
			logger.Info("Snapshot exported", zap.String("file", output))
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write, stdout when empty")

	return cmd
}
