package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/composer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSettings = `
log_level: debug
rich: true
composition:
  name: Compo21
  components:
    - name: swc1
      type: application
      ports:
        - name: speed
          direction: sender
      runnables:
        - name: step
          trigger: Periodic
          period: 10
        - name: init
          trigger: aperiodic
    - name: swc3
      type: Sensor
`

const tomlSettings = `
log_level = "warn"
no_banner = true

[composition]
name = "Compo21"

[[composition.components]]
name = "swc1"
type = "application"

  [[composition.components.ports]]
  name = "speed"
  direction = "receiver"

  [[composition.components.runnables]]
  name = "step"
  trigger = "periodic"
  period = 20
`

func TestParse_YAML(t *testing.T) {
	s, err := Parse([]byte(yamlSettings), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.Rich)
	assert.False(t, s.NoBanner)
	require.NotNil(t, s.Composition)
	require.Len(t, s.Composition.Components, 2)
	assert.Equal(t, "10", s.Composition.Components[0].Runnables[0].Period)

	k, err := BuildComposition(s.Composition)
	require.NoError(t, err)
	assert.Equal(t, []string{"swc1", "swc3"}, k.ComponentNames())

	swc1, ok := k.FindComponent("swc1")
	require.True(t, ok)
	r, ok := swc1.Runnable("step")
	require.True(t, ok)
	assert.Equal(t, domain.TriggerPeriodic, r.Trigger)
	assert.Equal(t, "10", r.Period)
}

func TestParse_TOML(t *testing.T) {
	s, err := Parse([]byte(tomlSettings), ".toml")
	require.NoError(t, err)

	assert.Equal(t, "warn", s.LogLevel)
	assert.True(t, s.NoBanner)

	k, err := BuildComposition(s.Composition)
	require.NoError(t, err)
	swc1, ok := k.FindComponent("swc1")
	require.True(t, ok)
	p, ok := swc1.Port("speed")
	require.True(t, ok)
	assert.Equal(t, domain.DirectionReceiver, p.Direction)
	r, ok := swc1.Runnable("step")
	require.True(t, ok)
	assert.Equal(t, "20", r.Period)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("{}"), ".json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse([]byte("log_level: [unterminated"), ".yml")
	assert.Error(t, err)

	_, err = Parse([]byte("colour: blue\n"), ".yaml")
	assert.ErrorContains(t, err, "colour")
}

func TestBuildComposition_Invalid(t *testing.T) {
	s, err := Parse([]byte(`
composition:
  name: K
  components:
    - name: A
      type: Sensor
      runnables:
        - name: r1
          trigger: periodic
    - name: A
      type: Sensor
`), ".yaml")
	require.NoError(t, err)

	_, err = BuildComposition(s.Composition)
	assert.ErrorIs(t, err, domain.ErrMissingPeriod)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestBuildComposition_NilSeed(t *testing.T) {
	k, err := BuildComposition(nil)
	assert.NoError(t, err)
	assert.Nil(t, k)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSettings), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Compo21", s.Composition.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	k := Demo()
	assert.Equal(t, "Compo21", k.Name)
	assert.Equal(t, []string{"swc1", "swc2", "swc3"}, k.ComponentNames())
}
