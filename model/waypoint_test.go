package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(55.6761, 12.5683))
	assert.NoError(t, ValidateCoordinates(-90, 180))
	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(0, -180.1))
	assert.Error(t, ValidateCoordinates(math.NaN(), 0))
	assert.Error(t, ValidateCoordinates(0, math.Inf(1)))
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusCurrent.Valid())
	assert.False(t, Status("").Valid())
	assert.Equal(t, "Currently Here", StatusCurrent.Label())
	assert.Equal(t, "Journey Complete", StatusCompleted.Label())
	assert.Equal(t, "Planned Visit", StatusPlanned.Label())
}

func TestWaypointValidate(t *testing.T) {
	w := Waypoint{ID: "paris", Lat: 48.8566, Lng: 2.3522, Status: StatusCompleted}
	assert.NoError(t, w.Validate())
	assert.Equal(t, Point{Lat: 48.8566, Lng: 2.3522}, w.Point())

	w.Status = "lost"
	assert.ErrorIs(t, w.Validate(), ErrInvalidWaypoint)
}
