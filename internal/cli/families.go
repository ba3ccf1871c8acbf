package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFamiliesCmd creates the families command.
func NewFamiliesCmd() *cobra.Command {
	var projectName string

	cmd := &cobra.Command{
		Use:   "families",
		Short: "List device families of a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFamilies(cmd, projectName)
		},
	}

	cmd.Flags().StringVar(&projectName, "project", "", "project name (required)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func runFamilies(cmd *cobra.Command, projectName string) error {
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

	for _, name := range cat.FamilyNames(projectID) {
		fmt.Println(name)
	}
	return nil
}
