package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `build renders every page of the site into <out>/<route>/index.html,
writes JSON snapshots under <out>/api and copies the static directory.
The output directory is removed first.`,
		RunE: runBuild,
	}
	cmd.Flags().String("out", "", "output directory (overrides build.output_dir)")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := a.Config.Build.OutputDir
	if flagOut, _ := cmd.Flags().GetString("out"); flagOut != "" {
		out = flagOut
	}

	result, err := a.Exporter().Export(cmd.Context(), out)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages and %d static files to %s\n", result.Pages, result.StaticFiles, out)
	return nil
}
