package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expectedKm             float64
		deltaKm                float64
	}{
		{
			name: "same point",
			lat1: 25.0330, lon1: 121.5654,
			lat2: 25.0330, lon2: 121.5654,
			expectedKm: 0, deltaKm: 0.001,
		},
		{
			name: "Taipei 101 to Taipei Main Station",
			lat1: 25.0330, lon1: 121.5654,
			lat2: 25.0478, lon2: 121.5170,
			expectedKm: 5.15, deltaKm: 0.1,
		},
		{
			name: "Taipei to Kaohsiung",
			lat1: 25.0330, lon1: 121.5654,
			lat2: 22.6273, lon2: 120.3014,
			expectedKm: 295, deltaKm: 5,
		},
		{
			name: "across the antimeridian",
			lat1: 0, lon1: 179.5,
			lat2: 0, lon2: -179.5,
			expectedKm: 111.2, deltaKm: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := haversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, got, tt.deltaKm)
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	forward := haversineKm(25.0330, 121.5654, 22.6273, 120.3014)
	backward := haversineKm(22.6273, 120.3014, 25.0330, 121.5654)
	assert.InDelta(t, forward, backward, 1e-9)
}
