package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrBadStrategy = errors.New("bad strategy guide line")

type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// Outcome values double as round scores.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

type Round struct {
	Mine, Theirs Move
}

var (
	theirMoveDecode = map[string]Move{"A": Rock, "B": Paper, "C": Scissors}
	myMoveDecode    = map[string]Move{"X": Rock, "Y": Paper, "Z": Scissors}
	outcomeDecode   = map[string]Outcome{"X": Loss, "Y": Draw, "Z": Win}
)

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

func (r Round) Outcome() Outcome {
	switch {
	case beats[r.Mine] == r.Theirs:
		return Win
	case beats[r.Theirs] == r.Mine:
		return Loss
	}
	return Draw
}

func (r Round) Score() int {
	return int(r.Mine) + int(r.Outcome())
}

func splitRound(line string) (string, string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrBadStrategy, line)
	}
	return fields[0], fields[1], nil
}

func decodeRound(line string) (Round, error) {
	a, b, err := splitRound(line)
	if err != nil {
		return Round{}, err
	}
	theirs, ok1 := theirMoveDecode[a]
	mine, ok2 := myMoveDecode[b]
	if !ok1 || !ok2 {
		return Round{}, fmt.Errorf("%w: %q", ErrBadStrategy, line)
	}
	return Round{Mine: mine, Theirs: theirs}, nil
}

// decodeRoundWithOutcome reads the second column as the intended outcome
// and picks the move that produces it.
func decodeRoundWithOutcome(line string) (Round, error) {
	a, b, err := splitRound(line)
	if err != nil {
		return Round{}, err
	}
	theirs, ok1 := theirMoveDecode[a]
	want, ok2 := outcomeDecode[b]
	if !ok1 || !ok2 {
		return Round{}, fmt.Errorf("%w: %q", ErrBadStrategy, line)
	}
	for _, mine := range []Move{Rock, Paper, Scissors} {
		r := Round{Mine: mine, Theirs: theirs}
		if r.Outcome() == want {
			return r, nil
		}
	}
	panic("unreachable")
}

func solveDay2(_ context.Context, _ *Config, r io.Reader) (Answer, error) {
	var (
		a      Answer
		lineNo int
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		r1, err := decodeRound(line)
		if err != nil {
			return Answer{}, fmt.Errorf("line %v: %w", lineNo, err)
		}
		r2, err := decodeRoundWithOutcome(line)
		if err != nil {
			return Answer{}, fmt.Errorf("line %v: %w", lineNo, err)
		}
		a.Part1 += r1.Score()
		a.Part2 += r2.Score()
	}
	if err := s.Err(); err != nil {
		return Answer{}, err
	}
	return a, nil
}
