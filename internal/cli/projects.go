package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProjectsCmd creates the projects command.
func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List available projects",
		Long:  "List the projects with flashable firmware in the remote catalog.",
		RunE:  runProjects,
	}

	return cmd
}

func runProjects(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg, cfg.Settings.EsptoolOnly)
	if err != nil {
		return err
	}

	for _, name := range cat.ProjectNames() {
		fmt.Println(name)
	}
	return nil
}
