package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFirmwareCmd creates the firmware command.
func NewFirmwareCmd() *cobra.Command {
	var (
		projectName string
		familyName  string
		details     bool
	)

	cmd := &cobra.Command{
		Use:   "firmware",
		Short: "List firmware of a device family",
		Long: `List the flashable firmware variants of a device family within a
project, in catalog order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFirmware(cmd, projectName, familyName, details)
		},
	}

	cmd.Flags().StringVar(&projectName, "project", "", "project name (required)")
	cmd.Flags().StringVar(&familyName, "family", "", "device family name (required)")
	cmd.Flags().BoolVar(&details, "details", false, "show firmware descriptions and post-install notes")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("family")

	return cmd
}

func runFirmware(cmd *cobra.Command, projectName, familyName string, details bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg, cfg.Settings.EsptoolOnly)
	if err != nil {
		return err
	}

	projectID, ok := cat.ProjectID(projectName)
	if !ok {
		return fmt.Errorf("unknown project %q", projectName)
	}
	familyID, ok := cat.FamilyID(projectID, familyName)
	if !ok {
		return fmt.Errorf("unknown device family %q in project %q", familyName, projectName)
	}

	if !details {
		for _, name := range cat.FirmwareNames(projectID, familyID) {
			fmt.Println(name)
		}
		return nil
	}

	for _, name := range cat.FirmwareNames(projectID, familyID) {
		fmt.Println(name)
		fw := cat.Firmware(projectID, familyID, name)
		if fw == nil {
			continue
		}
		if fw.Description != "" {
			fmt.Printf("  %s\n", fw.Description)
		}
		if fw.VariantDescription != "" {
			fmt.Printf("  Variant: %s\n", fw.VariantDescription)
		}
		if fw.PostInstallInstr != "" {
			fmt.Printf("  After flashing: %s\n", fw.PostInstallInstr)
		}
		if fw.InError {
			fmt.Println("  WARNING: this firmware is flagged as broken upstream")
		}
	}
	return nil
}
