package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-18")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.June, 18), d)
	assert.Equal(t, "2025-06-18", d.String())

	_, err = ParseDate("18/06/2025")
	assert.Error(t, err)
}

func TestDate_Compare(t *testing.T) {
	a := MustDate("2025-06-17")
	b := MustDate("2025-06-18")
	c := MustDate("2026-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.Equal(t, 0, b.Compare(MustDate("2025-06-18")))
	assert.True(t, Date{}.Before(a), "zero date sorts first")
}

func TestDate_JSON(t *testing.T) {
	type holder struct {
		When Date `json:"when"`
	}
	data, err := json.Marshal(holder{When: MustDate("2025-06-22")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2025-06-22"}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"when":""}`), &h))
	assert.True(t, h.When.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"when":null}`), &h))
	assert.True(t, h.When.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"when":"not-a-date"}`), &h))
	assert.Error(t, json.Unmarshal([]byte(`{"when":20250622}`), &h))
}
