package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woicw/wr-ai/cmd"
	"github.com/woicw/wr-ai/internal/errors"
)

func TestGenDoc_Markdown(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "docs")

	stdout, _, err := execute(t, "gen-doc", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Documentation written to "+dir)

	data, err := os.ReadFile(filepath.Join(dir, "wr-ai_init.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: \"wr-ai init\"")
}

func TestGenDoc_Man(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, _, err := execute(t, "gen-doc", "--dir", dir, "--format", "man")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "wr-ai-add.1"))
}

func TestGenDoc_Errors(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "gen-doc")
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	_, _, err = execute(t, "gen-doc", "--dir", t.TempDir(), "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pdf")
}

func TestDocHelpers(t *testing.T) {
	assert.Equal(t, "---\ntitle: \"wr-ai config show\"\ndescription: \"Reference for wr-ai config show\"\n---\n",
		docFrontMatter("/tmp/docs/wr-ai_config_show.md"))
	assert.Equal(t, "wr-ai_list/", docLink("wr-ai_list.md"))
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, cmd.BuildInfo(), stdout)

	stdout, _, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, cmd.Version+"\n", stdout)
}
