package main

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type expectedAnswer struct {
	Day   int  `yaml:"day"`
	Part1 *int `yaml:"part1"`
	Part2 *int `yaml:"part2"`
}

type answerFile struct {
	Answers []expectedAnswer `yaml:"answers"`
}

// mismatch describes one part whose answer differs from the expected one.
// Err is set instead of Got when solving failed.
type mismatch struct {
	Day  int
	Part int
	Want int
	Got  int
	Err  error
}

func (m mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("day %v: %v", m.Day, m.Err)
	}
	return fmt.Sprintf("day %v part %v: got %v, want %v", m.Day, m.Part, m.Got, m.Want)
}

func readAnswers(r io.Reader) ([]expectedAnswer, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f answerFile
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("answers: %w", err)
	}
	for _, a := range f.Answers {
		if _, err := lookupPuzzle(a.Day); err != nil {
			return nil, fmt.Errorf("answers: %w", err)
		}
	}
	return f.Answers, nil
}

// checkAnswers solves every listed day and collects the parts that do not
// match. Parts without an expected value are not checked.
func checkAnswers(ctx context.Context, expected []expectedAnswer, solve func(context.Context, int) (Answer, error)) ([]mismatch, error) {
	var result []mismatch
	for _, e := range expected {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		got, err := solve(ctx, e.Day)
		if err != nil {
			result = append(result, mismatch{Day: e.Day, Err: err})
			continue
		}
		parts := [...]struct {
			want *int
			got  int
		}{{e.Part1, got.Part1}, {e.Part2, got.Part2}}
		for i, p := range parts {
			if p.want != nil && *p.want != p.got {
				result = append(result, mismatch{Day: e.Day, Part: i + 1, Want: *p.want, Got: p.got})
			}
		}
	}
	return result, nil
}
