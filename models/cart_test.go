package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputedTotalIgnoresServerTotal(t *testing.T) {
	// The server's total field is wrong on purpose; the computed total
	// must come from the lines alone.
	payload := `{
		"items": [
			{"menuItemId": 7, "menuItem": {"id": 7, "name": "Margherita", "price": 12.99}, "quantity": 2},
			{"menuItemId": 9, "menuItem": {"id": 9, "name": "Tiramisu", "price": "6.50"}, "quantity": 1}
		],
		"total": 0
	}`

	var snapshot CartSnapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &snapshot))

	assert.Equal(t, 32.48, snapshot.ComputedTotal())
	assert.Equal(t, 3, snapshot.Count())
	assert.False(t, snapshot.Empty())
}

func TestComputedTotalRounding(t *testing.T) {
	// 3 * 0.1 accumulates float noise; the computed total must come
	// back rounded to cents.
	snapshot := &CartSnapshot{Items: []CartLine{
		{MenuItemID: 1, MenuItem: MenuItemRef{Name: "Soup", Price: NewAmount(0.1)}, Quantity: 3},
	}}
	assert.Equal(t, 0.3, snapshot.ComputedTotal())
}

func TestEmptySnapshot(t *testing.T) {
	var nilSnapshot *CartSnapshot
	assert.True(t, nilSnapshot.Empty())
	assert.True(t, (&CartSnapshot{}).Empty())
	assert.Equal(t, 0.0, (&CartSnapshot{}).ComputedTotal())
	assert.Equal(t, 0, (&CartSnapshot{}).Count())
}
