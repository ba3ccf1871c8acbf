package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/webfraggle/mbdflasher/internal/cli"
)

var (
	configPath string
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mbdflasher",
		Short: "Firmware catalog browser and downloader",
		Long: `mbdflasher talks to the modellbahn-displays.de firmware service:
- Browse: projects, device families, firmware variants
- Download: checksum-verified artifact sets for flashing
- Verify: confirm a firmware with the service before flashing`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewRefreshCmd(),
		cli.NewProjectsCmd(),
		cli.NewFamiliesCmd(),
		cli.NewFirmwareCmd(),
		cli.NewDownloadCmd(),
		cli.NewVerifyCmd(),
		cli.NewCleanCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
