package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/artifact"
	"github.com/webfraggle/mbdflasher/pkg/hook"
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	var (
		projectName  string
		familyName   string
		firmwareName string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a firmware against the remote service before flashing",
		Long: `Ask the remote service to confirm the firmware's published checksum.
A successful verification is the precondition for flashing; a refusal
means the firmware record is stale or withdrawn upstream.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, projectName, familyName, firmwareName)
		},
	}

	cmd.Flags().StringVar(&projectName, "project", "", "project name (required)")
	cmd.Flags().StringVar(&familyName, "family", "", "device family name (required)")
	cmd.Flags().StringVar(&firmwareName, "firmware", "", "firmware display name (defaults to the newest version)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("family")

	return cmd
}

func runVerify(cmd *cobra.Command, projectName, familyName, firmwareName string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg, cfg.Settings.EsptoolOnly)
	if err != nil {
		return err
	}

	fw, err := resolveFirmware(cat, projectName, familyName, firmwareName)
	if err != nil {
		return err
	}

	hooks, err := loadHooks(cfg)
	if err != nil {
		return err
	}
	dir, err := artifactDir(cfg)
	if err != nil {
		return err
	}
	if err := hooks.Execute(hook.PreFlash, hookContext(fw, dir)); err != nil {
		return fmt.Errorf("pre-flash hook failed: %w", err)
	}

	verifier := artifact.NewRemoteVerifier(newAPIClient(cfg), cfg.Settings.Flasher, cfg.Settings.FlasherVersion)
	if err := verifier.VerifyBeforeFlash(cmd.Context(), fw); err != nil {
		return err
	}

	logger.Successf("Verified %s, safe to flash", fw.Display())
	return nil
}
