package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{`"2024-05-01T08:00:00Z"`, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)},
		{`"2024-05-01T08:00:00.123456"`, time.Date(2024, 5, 1, 8, 0, 0, 123456000, time.UTC)},
		{`"2024-05-01T08:00:00"`, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)},
		{`"2024-05-01T08:00"`, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)},
		{`"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestampNullAndInvalid(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

func TestOfferDecodesNaiveDates(t *testing.T) {
	var o Offer
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"date_proposition":"2024-05-01T08:00:00","disponibilite_date_heure":null,"statut":"en attente"}`), &o))
	assert.Equal(t, 2024, o.CreatedAt.Year())
	assert.Nil(t, o.AvailableAt)
	assert.True(t, o.IsPending())
}
