package control_loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnsOnAtOnThreshold(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)

	// WHEN
	next := loop.Loop(false, 60.0)

	// THEN
	assert.True(t, next)
}

func TestTurnsOnAboveOnThreshold(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)

	// WHEN
	next := loop.Loop(false, 75.0)

	// THEN
	assert.True(t, next)
}

func TestTurnsOffBelowOffThreshold(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)

	// WHEN
	next := loop.Loop(true, 49.9)

	// THEN
	assert.False(t, next)
}

func TestStaysOnAtOffThreshold(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)

	// WHEN
	next := loop.Loop(true, 50.0)

	// THEN
	assert.True(t, next)
}

func TestDeadBandKeepsState(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)

	for _, temp := range []float64{50.0, 55.0, 59.9} {
		// THEN: state is unchanged regardless of current state
		assert.False(t, loop.Loop(false, temp), "temp %.1f", temp)
		assert.True(t, loop.Loop(true, temp), "temp %.1f", temp)
	}
}

func TestDeadBandIsIdempotent(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)
	fanOn := false

	// WHEN: repeated iterations with a constant in-band temperature
	for i := 0; i < 100; i++ {
		fanOn = loop.Loop(fanOn, 55.0)
	}

	// THEN
	assert.False(t, fanOn)
}

func TestRisingSequenceTurnsOnOnce(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)
	fanOn := false
	transitions := 0

	// WHEN
	for _, temp := range []float64{55, 58, 61} {
		next := loop.Loop(fanOn, temp)
		if next != fanOn {
			transitions++
			assert.Equal(t, 61.0, temp, "expected the transition exactly at 61")
		}
		fanOn = next
	}

	// THEN
	assert.True(t, fanOn)
	assert.Equal(t, 1, transitions)
}

func TestFallingSequenceTurnsOffOnce(t *testing.T) {
	// GIVEN
	loop := NewHysteresisLoop(60, 50)
	fanOn := true
	transitions := 0

	// WHEN
	for _, temp := range []float64{55, 52, 49} {
		next := loop.Loop(fanOn, temp)
		if next != fanOn {
			transitions++
			assert.Equal(t, 49.0, temp, "expected the transition exactly at 49")
		}
		fanOn = next
	}

	// THEN
	assert.False(t, fanOn)
	assert.Equal(t, 1, transitions)
}
