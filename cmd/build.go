package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dothrak/Portfolio-2.0/internal/config"
	"github.com/dothrak/Portfolio-2.0/internal/site"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Builds the portfolio page into the output directory",
		Long: `The build command loads the portfolio content from the content directory
(or the built-in profile when it is absent), renders the page, copies the
static assets and writes everything into the output directory
(default './` + config.DefaultOutputDir + `/').`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := site.Build(cmd.Context(), a.cfg, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %d page(s) and %d asset(s) into %s\n",
				len(res.Pages), res.Assets, res.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", config.DefaultOutputDir, "Output directory")
	cmd.Flags().String("content", config.DefaultContentDir, "Content directory")
	cmd.Flags().String("static", config.DefaultStaticDir, "Static assets directory")
	cmd.Flags().String("theme", config.DefaultTheme, "Theme of the built page before the browser applies the visitor preference (light or dark)")
	cmd.Flags().Bool("markdown", false, "Also write a Markdown rendition of the portfolio")

	return cmd
}
