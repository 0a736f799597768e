package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind     string   `validate:"required,stop_kind"`
	Types    []string `validate:"dive,delivery_type"`
	Urgency  string   `validate:"omitempty,urgency"`
	Latitude float64  `validate:"min=-90,max=90"`
}

func TestEchoValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Kind: "pickup", Types: []string{"shopping"}, Latitude: 48.8}))

	err := v.Validate(&sample{Kind: "detour", Types: []string{"teleport"}, Urgency: "asap", Latitude: 95})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Kind failed on stop_kind")
	assert.Contains(t, err.Error(), "sample.Types[0] failed on delivery_type")
	assert.Contains(t, err.Error(), "sample.Urgency failed on urgency")
	assert.Contains(t, err.Error(), "sample.Latitude failed on max=90")
}
