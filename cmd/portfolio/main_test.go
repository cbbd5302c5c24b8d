package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avash.dev/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"+body), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProjectsCmd(t *testing.T) {
	cfg := writeConfig(t, "")

	out, err := run(t, "projects", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "0  Rahat Anticipatory Action  https://github.com/rahataid")
	assert.Contains(t, out, "2  Foodony Vendors            /blog/foodony")
}

func TestProjectsCmd_JSON(t *testing.T) {
	projectsFile, err := filepath.Abs(filepath.Join("..", "..", "data", "projects.yaml"))
	require.NoError(t, err)
	cfg := writeConfig(t, "content:\n  projects_file: "+projectsFile+"\n")

	out, err := run(t, "projects", "--json", "--config", cfg)
	require.NoError(t, err)

	var projects []models.Project
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.Len(t, projects, 4)
	assert.Equal(t, "stage4all", projects[1].Title)
}

func TestCheckCmd_OK(t *testing.T) {
	out, err := run(t, "check", "--config", writeConfig(t, ""))
	require.NoError(t, err)

	assert.Contains(t, out, "OK: 3 projects, 3 pages")
}

func TestCheckCmd_Problems(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "projects.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`projects:
  - title: Draft
    description: ""
    imgSrc: /static/draft.jpg
    href: /blog/missing
`), 0644))
	cfg := writeConfig(t, "content:\n  projects_file: "+catalog+"\n")

	out, err := run(t, "check", "--config", cfg)
	require.Error(t, err)

	assert.Contains(t, out, `project 0 ("Draft"): empty description`)
	assert.Contains(t, out, `link "/blog/missing" does not resolve to a page`)
	assert.ErrorContains(t, err, "2 content problem(s) found")
}

func TestBuildCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	cfg := writeConfig(t, "content:\n  static_dir: "+filepath.Join(t.TempDir(), "static")+"\n")

	stdout, err := run(t, "build", "--config", cfg, "--out", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Exported 5 pages and 0 static files")
	assert.FileExists(t, filepath.Join(out, "about", "index.html"))
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "projects", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
