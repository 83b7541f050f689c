package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

var ErrUnknownDay = errors.New("unknown day")

// Answer holds the results of both parts of a puzzle.
type Answer struct {
	Part1, Part2 int
}

type Puzzle struct {
	Day   int
	Title string
	Solve func(ctx context.Context, cfg *Config, r io.Reader) (Answer, error)
}

var puzzles = []Puzzle{
	{1, "Calorie Counting", solveDay1},
	{2, "Rock Paper Scissors", solveDay2},
	{15, "Beacon Exclusion Zone", solveDay15},
}

func lookupPuzzle(day int) (Puzzle, error) {
	i := sort.Search(len(puzzles), func(i int) bool { return puzzles[i].Day >= day })
	if i < len(puzzles) && puzzles[i].Day == day {
		return puzzles[i], nil
	}
	return Puzzle{}, fmt.Errorf("%w: %v", ErrUnknownDay, day)
}

func puzzleDays() []int {
	days := make([]int, len(puzzles))
	for i, p := range puzzles {
		days[i] = p.Day
	}
	return days
}
