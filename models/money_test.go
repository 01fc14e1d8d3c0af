package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		want  float64
		valid bool
	}{
		{"number", `12.99`, 12.99, true},
		{"integer", `42`, 42, true},
		{"numeric string", `"25.98"`, 25.98, true},
		{"big decimal object", `{"value":"19.50"}`, 19.50, true},
		{"object with number value", `{"value":7.25}`, 7.25, true},
		{"null", `null`, 0, false},
		{"garbage string", `"not-a-number"`, 0, false},
		{"empty object", `{}`, 0, false},
		{"negative clamps to zero", `-5`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.json), &a))
			assert.Equal(t, tt.want, a.Float64())
			assert.Equal(t, tt.valid, a.Valid())
			assert.GreaterOrEqual(t, a.Float64(), 0.0)
		})
	}
}

func TestAmountUnmarshalInsideStruct(t *testing.T) {
	var order Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"status":"PENDING","totalAmount":"25.98"}`), &order))
	assert.Equal(t, 25.98, order.TotalAmount.Float64())

	// Missing field defaults to zero and reads as lost.
	var bare Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":43,"status":"PENDING"}`), &bare))
	assert.Equal(t, 0.0, bare.TotalAmount.Float64())
	assert.True(t, bare.TotalAmount.Lost())
}

func TestAmountLost(t *testing.T) {
	tests := []struct {
		name string
		json string
		lost bool
	}{
		{"zero number", `0`, true},
		{"zero string", `"0"`, true},
		{"null", `null`, true},
		{"non-zero number", `25.98`, false},
		{"non-zero string", `"25.98"`, false},
		{"zero with decimals is not the lost shape", `"0.00"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.json), &a))
			assert.Equal(t, tt.lost, a.Lost())
		})
	}
}

func TestAmountMarshalPreservesRaw(t *testing.T) {
	for _, raw := range []string{`"25.98"`, `25.98`, `{"value":"25.98"}`, `null`} {
		var a Amount
		require.NoError(t, json.Unmarshal([]byte(raw), &a))
		out, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Equal(t, raw, string(out))
	}
}

func TestNewAmount(t *testing.T) {
	assert.Equal(t, 25.98, NewAmount(25.98).Float64())
	assert.False(t, NewAmount(25.98).Lost())
	assert.True(t, NewAmount(0).Lost())
	assert.Equal(t, 0.0, NewAmount(-3).Float64())
}
