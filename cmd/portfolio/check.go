package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"avash.dev/internal/app"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Lint the project catalog and internal links",
		Long: `check reports catalog records with empty fields and internal links
(hero call to action, project hrefs) that no page serves.
External links and image files are not checked.`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	problems := lint(a)
	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintf(out, "OK: %d projects, %d pages\n", a.Catalog.Len(), a.Pages.Len())
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(out, "-", p)
	}
	return fmt.Errorf("%d content problem(s) found", len(problems))
}

func lint(a *app.App) []string {
	var problems []string
	if err := a.Catalog.Validate(); err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				problems = append(problems, e.Error())
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	routes := make(map[string]bool)
	for _, r := range a.Site.Routes() {
		routes[r] = true
	}

	hero := a.Site.Hero()
	if !routes[hero.CTA.Href] {
		problems = append(problems, fmt.Sprintf("hero link %q does not resolve to a page", hero.CTA.Href))
	}
	for i, p := range a.Catalog.All() {
		if p.Href == "" || p.IsExternal() || !strings.HasPrefix(p.Href, "/") {
			continue
		}
		if !routes[p.Href] {
			problems = append(problems, fmt.Sprintf("project %d (%q): link %q does not resolve to a page", i, p.Title, p.Href))
		}
	}
	return problems
}
