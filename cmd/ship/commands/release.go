package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Build, test, collect and package release artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skipBuild, _ := cmd.Flags().GetBool("skip-build")
			skipTests, _ := cmd.Flags().GetBool("skip-tests")
			noPack, _ := cmd.Flags().GetBool("no-pack")

			return c.app.Release(cmd.Context(), app.ReleaseOptions{
				Options:   c.options(),
				SkipBuild: skipBuild,
				SkipTests: skipTests,
				NoPack:    noPack,
			})
		},
	}
	cmd.Flags().Bool("skip-build", false, "Skip the compile and rebuild steps")
	cmd.Flags().Bool("skip-tests", false, "Skip the test suite")
	cmd.Flags().Bool("no-pack", false, "Skip creating the npm package tarball")
	return cmd
}
