package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Show(&out, RunOptions{Demo: true}))
	assert.Contains(t, out.String(), "Composition: 'Compo21'")
	assert.Contains(t, out.String(), "    3- Name: 'swc3', Type: 'Sensor'")
}

func TestShow_ConfigWinsOverDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.yml")
	require.NoError(t, os.WriteFile(path, []byte("composition:\n  name: Custom\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, Show(&out, RunOptions{ConfigPath: path, Demo: true}))
	assert.Equal(t, "Composition: 'Custom'\n", out.String())
}

func TestShow_NothingToShow(t *testing.T) {
	err := Show(&bytes.Buffer{}, RunOptions{})
	assert.ErrorContains(t, err, "nothing to show")
}

func TestShow_BadConfig(t *testing.T) {
	err := Show(&bytes.Buffer{}, RunOptions{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	logger, err := createLogger(false, "")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = createLogger(false, "loud")
	assert.Error(t, err)

	logger, err = createLogger(true, "loud")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
