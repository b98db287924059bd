package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableInt(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		null    bool
		value   int64
		wantErr bool
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"n":null}`, present: true, null: true},
		{name: "number", body: `{"n":15}`, present: true, value: 15},
		{name: "fraction truncated", body: `{"n":7.9}`, present: true, value: 7},
		{name: "numeric string", body: `{"n":"42"}`, present: true, value: 42},
		{name: "empty string is null", body: `{"n":""}`, present: true, null: true},
		{name: "garbage", body: `{"n":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				N NullableInt `json:"n"`
			}
			err := json.Unmarshal([]byte(tt.body), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, body.N.Present)
			assert.Equal(t, tt.null, body.N.Null)
			assert.Equal(t, tt.value, body.N.Value)
		})
	}
}

func TestNullableInt_ID(t *testing.T) {
	id, ok := NullableInt{Value: 3, Present: true}.ID()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), id)

	_, ok = NullableInt{Value: 0, Present: true}.ID()
	assert.False(t, ok)

	_, ok = NullableInt{Value: -1, Present: true}.ID()
	assert.False(t, ok)

	_, ok = NullableInt{Present: true, Null: true}.ID()
	assert.False(t, ok)
}

func TestNullableInt_Cleared(t *testing.T) {
	assert.True(t, NullableInt{Present: true, Null: true}.Cleared())
	assert.True(t, NullableInt{Present: true}.Cleared())
	assert.False(t, NullableInt{}.Cleared())
	assert.False(t, NullableInt{Value: 4, Present: true}.Cleared())
	assert.False(t, NullableInt{Value: -1, Present: true}.Cleared())
}

func TestNullableString(t *testing.T) {
	var body struct {
		S NullableString `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":null}`), &body))
	assert.True(t, body.S.Present)
	assert.Nil(t, body.S.Ptr())

	body.S = NullableString{}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"notes"}`), &body))
	require.NotNil(t, body.S.Ptr())
	assert.Equal(t, "notes", *body.S.Ptr())
}

func TestNullableTime(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Time
		null     bool
	}{
		{name: "rfc3339", body: `{"t":"2026-03-01T10:30:00Z"}`, expected: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "date only", body: `{"t":"2026-03-01"}`, expected: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "epoch millis", body: `{"t":1772361000000}`, expected: time.UnixMilli(1772361000000).UTC()},
		{name: "null", body: `{"t":null}`, null: true},
		{name: "empty string", body: `{"t":""}`, null: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				T NullableTime `json:"t"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.True(t, body.T.Present)
			if tt.null {
				assert.Nil(t, body.T.Ptr())
				return
			}
			require.NotNil(t, body.T.Ptr())
			assert.True(t, tt.expected.Equal(*body.T.Ptr()))
		})
	}

	var body struct {
		T NullableTime `json:"t"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"t":"next tuesday"}`), &body))
}
