package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ProviderID
	}{
		{name: "number", raw: `{"id": 93845}`, want: "93845"},
		{name: "string", raw: `{"id": "ecfc6a15-4661-442f-a9a4-f160dd7afae8"}`, want: "ecfc6a15-4661-442f-a9a4-f160dd7afae8"},
		{name: "null", raw: `{"id": null}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec struct {
				ID ProviderID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))
			assert.Equal(t, tt.want, rec.ID)
		})
	}
}

func TestProviderID_RejectsObjects(t *testing.T) {
	var rec struct {
		ID ProviderID `json:"id"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"id": {"x": 1}}`), &rec))
}
