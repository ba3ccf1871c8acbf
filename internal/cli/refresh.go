package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webfraggle/mbdflasher/internal/logger"
)

// NewRefreshCmd creates the refresh command.
func NewRefreshCmd() *cobra.Command {
	var allFamilies bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Load the firmware catalog from the remote service",
		Long: `Load the firmware catalog from the remote service and report what is
available. Projects, device families and firmware are fetched in sequence,
cross-linked and pruned to flashable entries.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefresh(cmd, allFamilies)
		},
	}

	cmd.Flags().BoolVar(&allFamilies, "all-families", false, "include families not flashable with esptool")

	return cmd
}

func runRefresh(cmd *cobra.Command, allFamilies bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	esptoolOnly := cfg.Settings.EsptoolOnly && !allFamilies
	cat, err := loadCatalog(cmd.Context(), cfg, esptoolOnly)
	if err != nil {
		return err
	}

	firmwareCount := 0
	for _, family := range cat.Families {
		firmwareCount += len(family.Firmware)
	}

	logger.Success("Catalog refreshed")
	fmt.Printf("Projects:        %d\n", len(cat.Projects))
	fmt.Printf("Device families: %d\n", len(cat.Families))
	fmt.Printf("Firmware:        %d\n", firmwareCount)
	return nil
}
