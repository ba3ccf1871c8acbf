package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webfraggle/mbdflasher/internal/logger"
	"github.com/webfraggle/mbdflasher/pkg/artifact"
	"github.com/webfraggle/mbdflasher/pkg/hook"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var (
		projectName  string
		familyName   string
		firmwareName string
		force        bool
		noVerify     bool
		archivePath  string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the artifact set of a firmware",
		Long: `Download every artifact a firmware needs for flashing into the local
artifact cache, verifying each file against its published checksum.
Artifacts already present with a matching checksum are reused without
touching the network. Omitting --firmware selects the newest version
in the family.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDownload(cmd, projectName, familyName, firmwareName, force, noVerify, archivePath)
		},
	}

	cmd.Flags().StringVar(&projectName, "project", "", "project name (required)")
	cmd.Flags().StringVar(&familyName, "family", "", "device family name (required)")
	cmd.Flags().StringVar(&firmwareName, "firmware", "", "firmware display name (defaults to the newest version)")
	cmd.Flags().BoolVar(&force, "force", false, "redownload even when cached artifacts match")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip checksum verification")
	cmd.Flags().StringVar(&archivePath, "archive", "", "additionally export the artifacts as a tar.gz archive")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("family")

	return cmd
}

func runDownload(cmd *cobra.Command, projectName, familyName, firmwareName string, force, noVerify bool, archivePath string) error {
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
	if fw.InError {
		logger.Warn("Selected firmware is flagged as broken upstream")
	}

	bundle, err := newBundle(cfg, fw)
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
	hookCtx := hookContext(fw, dir)

	if err := hooks.Execute(hook.PreDownload, hookCtx); err != nil {
		return fmt.Errorf("pre-download hook failed: %w", err)
	}

	opts := artifact.DownloadOptions{
		VerifyChecksum:  !noVerify,
		ForceRedownload: force,
	}
	logger.Infof("Downloading %s", fw.Display())
	if err := bundle.Download(cmd.Context(), opts); err != nil {
		return err
	}

	if err := hooks.Execute(hook.PostDownload, hookCtx); err != nil {
		return fmt.Errorf("post-download hook failed: %w", err)
	}

	if archivePath != "" {
		if err := bundle.Export(cmd.Context(), archivePath); err != nil {
			return fmt.Errorf("failed to export archive: %w", err)
		}
		logger.Infof("Exported artifacts to %s", archivePath)
	}

	logger.Successf("Downloaded %s to %s", fw.Display(), dir)
	if fw.PostInstallInstr != "" {
		fmt.Printf("\nAfter flashing: %s\n", fw.PostInstallInstr)
	}
	return nil
}
