package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List the project catalog in display order",
		RunE:  runProjects,
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runProjects(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	projects := a.Catalog.All()
	out := cmd.OutOrStdout()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tHREF")
	for i, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, p.Title, p.Href)
	}
	return w.Flush()
}
