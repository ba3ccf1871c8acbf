package cli

import (
	"github.com/spf13/cobra"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/artifact"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached firmware artifacts",
		Long: `Delete every downloaded artifact file from the local artifact
directory. Does not touch the network.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClean()
		},
	}
	return cmd
}

func runClean() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := artifactDir(cfg)
	if err != nil {
		return err
	}

	if err := artifact.Clean(dir); err != nil {
		return err
	}
	logger.Successf("Removed cached artifacts from %s", dir)
	return nil
}
