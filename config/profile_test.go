package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, "PulseDevice", p.DeviceType)
	assert.Equal(t, []string{"GL_APICALL ", " GL_APIENTRY", "GL_APIENTRY"}, p.Decorations)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeProfile(t, `
device-type = "MyContext"
device-name = "ctx"
banner = ["Generated for tests"]
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "MyContext", p.DeviceType)
	assert.Equal(t, "ctx", p.DeviceName)
	assert.Equal(t, []string{"Generated for tests"}, p.Banner)
	assert.Equal(t, "PULSE_OPENGL_FUNCTION", p.FunctionMacro)
	assert.Equal(t, "PULSE_OPENGL_WRAPPER_RET", p.WrapperRetMacro)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeProfile(t, `device-typ = "Typo"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device-typ")
}

func TestLoadRejectsEmptyFields(t *testing.T) {
	path := writeProfile(t, `
wrapper-macro = ""
device-type = " "
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrapper-macro must not be empty")
	assert.Contains(t, err.Error(), "device-type must not be empty")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := writeProfile(t, `device-type = `)

	_, err := Load(path)
	require.Error(t, err)
}
