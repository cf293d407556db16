package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeManifest(t, "{not json")
	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestMergePreservesUnrelatedFields(t *testing.T) {
	path := writeManifest(t, `{
  "name": "web-backend",
  "version": "0.0.1",
  "scripts": {"dev": "nodemon index.js"},
  "dependencies": {"express": "^4.19.2"}
}`)

	m, err := Load(path)
	require.NoError(t, err)

	m.Merge(Fields{
		Name:        "demo",
		Description: "my app",
		Version:     "1.0.0",
		Author:      "Jan",
		License:     "MIT",
		Main:        "server.js",
	})
	require.NoError(t, m.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", reloaded["name"])
	assert.Equal(t, "my app", reloaded["description"])
	assert.Equal(t, "1.0.0", reloaded["version"])
	assert.Equal(t, "Jan", reloaded["author"])
	assert.Equal(t, "MIT", reloaded["license"])
	assert.Equal(t, "server.js", reloaded["main"])

	scripts, ok := reloaded["scripts"].(map[string]interface{})
	require.True(t, ok, "scripts block lost")
	assert.Equal(t, "nodemon index.js", scripts["dev"])

	deps, ok := reloaded["dependencies"].(map[string]interface{})
	require.True(t, ok, "dependencies block lost")
	assert.Equal(t, "^4.19.2", deps["express"])
}

func TestSave_Indentation(t *testing.T) {
	path := writeManifest(t, `{"name": "x"}`)

	m, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(string(data), "\n"), "missing trailing newline")
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  \"name\"")
}
