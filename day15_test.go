package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day15Example = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func exampleSensors(t *testing.T) []Sensor {
	t.Helper()
	sensors, err := parseSensors(strings.NewReader(day15Example))
	require.NoError(t, err)
	return sensors
}

func TestParseSensors(t *testing.T) {
	sensors := exampleSensors(t)
	require.Len(t, sensors, 14)
	assert.Equal(t, Sensor{Point{2, 18}, Point{-2, 15}}, sensors[0])
	assert.Equal(t, 9, sensors[6].Radius())
}

func TestParseSensorsRejectsGarbage(t *testing.T) {
	_, err := parseSensors(strings.NewReader("Sensor at x=1, y=2: closest beacon is at x=3, y=4\n\nbeacon?\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestRowCoverageSingleSensor(t *testing.T) {
	sensor := []Sensor{{Point{8, 7}, Point{2, 10}}}

	covered := rowCoverage(sensor, 10)
	assert.Equal(t, []Range{{2, 14}}, rangesOf(covered))
	assert.Equal(t, 13, covered.Size())
	// the sensor's own beacon sits at x=2 on this row
	assert.Equal(t, 12, countExcluded(sensor, 10))

	// tip of the diamond and beyond it
	assert.Equal(t, []Range{{8, 8}}, rangesOf(rowCoverage(sensor, 16)))
	assert.True(t, rowCoverage(sensor, 17).IsEmpty())
	assert.True(t, rowCoverage(sensor, -3).IsEmpty())
}

func TestCountExcluded(t *testing.T) {
	sensors := exampleSensors(t)
	assert.Equal(t, 26, countExcluded(sensors, 10))
}

func TestFindUncovered(t *testing.T) {
	sensors := exampleSensors(t)
	p, err := findUncovered(context.Background(), sensors, Range{0, 20})
	require.NoError(t, err)
	assert.Equal(t, Point{14, 11}, p)
	assert.Equal(t, 56000011, tuningFrequency(p))
}

func TestFindUncoveredNone(t *testing.T) {
	sensors := []Sensor{{Point{5, 5}, Point{5, 20}}}
	_, err := findUncovered(context.Background(), sensors, Range{0, 10})
	require.ErrorIs(t, err, ErrNoDistressBeacon)
}

func TestFindUncoveredCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := findUncovered(ctx, exampleSensors(t), Range{0, 20})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveDay15(t *testing.T) {
	cfg := &Config{Day15: Day15Config{Row: 10, Max: 20}}
	a, err := solveDay15(context.Background(), cfg, strings.NewReader(day15Example))
	require.NoError(t, err)
	assert.Equal(t, Answer{26, 56000011}, a)
}
