package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnable(t *testing.T) {
	tests := []struct {
		name        string
		trigger     string
		period      string
		wantTrigger Trigger
		wantPeriod  string
		wantErr     error
	}{
		{name: "periodic with period", trigger: "periodic", period: "10", wantTrigger: TriggerPeriodic, wantPeriod: "10"},
		{name: "mixed case is normalized", trigger: " PeriOdic ", period: "20ms", wantTrigger: TriggerPeriodic, wantPeriod: "20ms"},
		{name: "aperiodic without period", trigger: "aperiodic", wantTrigger: TriggerAperiodic},
		{name: "other kinds are kept lowercase", trigger: "OnEvent", wantTrigger: Trigger("onevent")},
		{name: "periodic without period", trigger: "periodic", wantErr: ErrMissingPeriod},
		{name: "blank period counts as missing", trigger: "periodic", period: "   ", wantErr: ErrMissingPeriod},
		{name: "aperiodic with period", trigger: "aperiodic", period: "10", wantErr: ErrUnexpectedPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRunnable("r1", tt.trigger, tt.period)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Runnable{}, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "r1", r.Name)
			assert.Equal(t, tt.wantTrigger, r.Trigger)
			assert.Equal(t, tt.wantPeriod, r.Period)
			assert.Equal(t, tt.wantTrigger == TriggerPeriodic, r.IsPeriodic())
		})
	}
}

func TestNewPort_NormalizesDirection(t *testing.T) {
	p := NewPort("p1", "Sender")
	assert.Equal(t, DirectionSender, p.Direction)
}
