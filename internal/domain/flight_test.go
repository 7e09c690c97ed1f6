package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration_RoundTrip(t *testing.T) {
	tests := []struct {
		minutes int
		want    Duration
	}{
		{0, Duration{}},
		{59, Duration{Minutes: 59}},
		{60, Duration{Hours: 1}},
		{135, Duration{Hours: 2, Minutes: 15}},
		{1439, Duration{Hours: 23, Minutes: 59}},
	}

	for _, tt := range tests {
		d := DurationFromMinutes(tt.minutes)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, tt.minutes, d.TotalMinutes())
	}
}
