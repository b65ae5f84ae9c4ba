package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncome_UnmarshalFlexibleFields(t *testing.T) {
	var got []Income
	err := json.Unmarshal([]byte(`[
		{"id": 1, "source": "salary", "amount": 1200.5},
		{"id": "b7", "amount": "30"},
		{"id": null, "amount": null}
	]`), &got)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, ID("1"), got[0].ID)
	assert.Equal(t, Amount(1200.5), got[0].Amount)
	assert.Equal(t, ID("b7"), got[1].ID)
	assert.Equal(t, Amount(30), got[1].Amount)
	assert.Equal(t, ID(""), got[2].ID)
	assert.Equal(t, Amount(0), got[2].Amount)
}

func TestAmount_RejectsGarbage(t *testing.T) {
	var a Amount
	require.Error(t, json.Unmarshal([]byte(`"ten"`), &a))
	require.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "12.5", Amount(12.5).String())
	assert.Equal(t, "100", Amount(100).String())
}
