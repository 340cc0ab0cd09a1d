package utils_test

import (
	"testing"

	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for same point", func(t *testing.T) {
		d := utils.HaversineDistance(28.6139, 77.2090, 28.6139, 77.2090)
		assert.Zero(t, d)
	})

	t.Run("known distance", func(t *testing.T) {
		// Connaught Place to India Gate, roughly 2.5 km
		d := utils.HaversineDistance(28.6315, 77.2167, 28.6129, 77.2295)
		assert.InDelta(t, 2.4, d, 0.3)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := utils.HaversineDistance(28.6, 77.2, 28.7, 77.3)
		b := utils.HaversineDistance(28.7, 77.3, 28.6, 77.2)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(28.6139, 77.2090))
	assert.True(t, utils.ValidateCoordinates(-90, -180))
	assert.True(t, utils.ValidateCoordinates(90, 180))

	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(-90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, 180.1))
	assert.False(t, utils.ValidateCoordinates(0, -180.1))
}
