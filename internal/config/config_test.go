package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := loadSettingsFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "main", settings.DefaultBranch)
	assert.Equal(t, "origin", settings.Remote)
	assert.Empty(t, settings.Templates)
}

func TestLoadSettings_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `default_branch: trunk
remote: upstream
templates:
  Terraform:
    - "*.tfstate"
    - ".terraform/"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gitstart.yaml"), []byte(content), 0644))

	settings, err := loadSettingsFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "trunk", settings.DefaultBranch)
	assert.Equal(t, "upstream", settings.Remote)
	assert.Equal(t, []string{"*.tfstate", ".terraform/"}, settings.Templates["Terraform"])
}

func TestLoadSettings_CommaSeparatedTemplates(t *testing.T) {
	dir := t.TempDir()
	content := `templates:
  Go: "bin/,*.test"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gitstart.yaml"), []byte(content), 0644))

	settings, err := loadSettingsFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"bin/", "*.test"}, settings.Templates["Go"])
}

func TestLoadSettings_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gitstart.yaml"), []byte(":\t not yaml ["), 0644))

	_, err := loadSettingsFrom(dir)
	assert.Error(t, err)
}

func TestProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := &Project{
		RepositoryURL: "https://github.com/user/repo.git",
		DefaultBranch: "main",
	}
	require.NoError(t, SaveProject(dir, saved))

	loaded, err := LoadProject(dir)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, saved.RepositoryURL, loaded.RepositoryURL)
	assert.Equal(t, saved.DefaultBranch, loaded.DefaultBranch)
}

func TestLoadProject_Missing(t *testing.T) {
	project, err := LoadProject(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, project)
}
