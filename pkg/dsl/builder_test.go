package dsl

import (
	"testing"

	"github.com/aretw0/composer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleComposition(t *testing.T) {
	k, err := New("Compo21").
		Component("swc1", "application").
		Sender("speed").
		Periodic("step", "10").
		Component("swc2", "application").
		Component("swc3", "Sensor").
		Receiver("speed").
		Aperiodic("init").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Compo21", k.Name)
	assert.Equal(t, []string{"swc1", "swc2", "swc3"}, k.ComponentNames())

	swc1, ok := k.FindComponent("swc1")
	require.True(t, ok)
	p, ok := swc1.Port("speed")
	require.True(t, ok)
	assert.Equal(t, domain.DirectionSender, p.Direction)

	r, ok := swc1.Runnable("step")
	require.True(t, ok)
	assert.Equal(t, domain.TriggerPeriodic, r.Trigger)
	assert.Equal(t, "10", r.Period)

	swc3, ok := k.FindComponent("swc3")
	require.True(t, ok)
	assert.Equal(t, "Sensor", swc3.Type())
	r, ok = swc3.Runnable("init")
	require.True(t, ok)
	assert.False(t, r.IsPeriodic())
}

func TestBuilder_CollectsErrors(t *testing.T) {
	_, err := New("K").
		Component("A", "Sensor").
		Sender("p1").
		Receiver("p1").
		Runnable("r1", "periodic", "").
		Runnable("r2", "aperiodic", "5").
		Component("A", "Other").
		Build()
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.ErrorIs(t, err, domain.ErrMissingPeriod)
	assert.ErrorIs(t, err, domain.ErrUnexpectedPeriod)
	assert.Contains(t, err.Error(), `port "p1" already exists in "A"`)
	assert.Contains(t, err.Error(), `component "A" already exists in "K"`)
}

func TestBuilder_Empty(t *testing.T) {
	k, err := New("K").Build()
	require.NoError(t, err)
	assert.Zero(t, k.Len())
}

func TestBuilder_From(t *testing.T) {
	b := New("K")
	template := b.Component("sensor", "Sensor").Sender("value").Periodic("sample", "100").Done()

	k, err := b.From(template, "sensor_left").Receiver("calibration").Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"sensor", "sensor_left"}, k.ComponentNames())

	left, ok := k.FindComponent("sensor_left")
	require.True(t, ok)
	assert.Len(t, left.Ports(), 2)
	assert.Len(t, template.Ports(), 1)
}

func TestBuilder_FromNilTemplate(t *testing.T) {
	_, err := New("K").From(nil, "copy").Sender("p1").Build()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
