package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	_tuningMultiplier = 4000000
	_progressInterval = 100000
)

var ErrNoDistressBeacon = errors.New("no uncovered position in search area")

var sensorLine = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

type Point struct {
	X, Y int
}

type Sensor struct {
	Pos    Point
	Beacon Point
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Radius is the distance within which no other beacon can exist.
func (s Sensor) Radius() int {
	return manhattan(s.Pos, s.Beacon)
}

func parseSensors(r io.Reader) ([]Sensor, error) {
	var (
		sensors []Sensor
		lineNo  int
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		m := sensorLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %v: unrecognized sensor record: %q", lineNo, line)
		}
		var v [4]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, fmt.Errorf("line %v: %w", lineNo, err)
			}
			v[i] = n
		}
		sensors = append(sensors, Sensor{Point{v[0], v[1]}, Point{v[2], v[3]}})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return sensors, nil
}

// rowCoverage returns the positions on row that lie within some sensor's
// radius.
func rowCoverage(sensors []Sensor, row int) RangeSet {
	var covered RangeSet
	for _, s := range sensors {
		r := s.Radius() - abs(s.Pos.Y-row)
		if r < 0 {
			continue
		}
		_ = covered.AddRange(s.Pos.X-r, s.Pos.X+r)
	}
	return covered
}

// countExcluded returns how many positions on row cannot hold a beacon.
func countExcluded(sensors []Sensor, row int) int {
	covered := rowCoverage(sensors, row)
	beacons := make(map[Point]struct{})
	for _, s := range sensors {
		if s.Beacon.Y == row && covered.Contains(s.Beacon.X) {
			beacons[s.Beacon] = struct{}{}
		}
	}
	return covered.Size() - len(beacons)
}

// findUncovered scans rows bound.Low..bound.High in order and returns the
// first position, with x in bound, that no sensor covers.
func findUncovered(ctx context.Context, sensors []Sensor, bound Range) (Point, error) {
	for y := bound.Low; y <= bound.High; y++ {
		if y%_progressInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Point{}, err
			}
			log.Debugf("day 15: scanning row %v", y)
		}
		for x := range rowCoverage(sensors, y).ComplementWithin(bound).All() {
			log.Infof("day 15: uncovered position x=%v, y=%v", x, y)
			return Point{x, y}, nil
		}
	}
	return Point{}, ErrNoDistressBeacon
}

func tuningFrequency(p Point) int {
	return p.X*_tuningMultiplier + p.Y
}

func solveDay15(ctx context.Context, cfg *Config, r io.Reader) (Answer, error) {
	sensors, err := parseSensors(r)
	if err != nil {
		return Answer{}, err
	}
	log.Debugf("day 15: %v sensors", len(sensors))

	a := Answer{Part1: countExcluded(sensors, cfg.Day15.Row)}
	p, err := findUncovered(ctx, sensors, Range{0, cfg.Day15.Max})
	if err != nil {
		return Answer{}, err
	}
	a.Part2 = tuningFrequency(p)
	return a, nil
}
