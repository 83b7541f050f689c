package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestReadAnswers(t *testing.T) {
	got, err := readAnswers(strings.NewReader(`
answers:
  - day: 1
    part1: 24000
    part2: 45000
  - day: 15
    part1: 26
`))
	require.NoError(t, err)
	assert.Equal(t, []expectedAnswer{
		{Day: 1, Part1: intp(24000), Part2: intp(45000)},
		{Day: 15, Part1: intp(26)},
	}, got)

	got, err = readAnswers(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadAnswersErrors(t *testing.T) {
	_, err := readAnswers(strings.NewReader("answers:\n  - day: 1\n    part3: 1\n"))
	require.Error(t, err)

	_, err = readAnswers(strings.NewReader("answers:\n  - day: 7\n"))
	require.ErrorIs(t, err, ErrUnknownDay)
}

func TestCheckAnswers(t *testing.T) {
	boom := errors.New("boom")
	solve := func(_ context.Context, day int) (Answer, error) {
		switch day {
		case 1:
			return Answer{24000, 45000}, nil
		case 2:
			return Answer{15, 13}, nil
		}
		return Answer{}, boom
	}
	expected := []expectedAnswer{
		{Day: 1, Part1: intp(24000), Part2: intp(45000)},
		{Day: 2, Part1: intp(15), Part2: intp(12)},
		{Day: 15, Part1: intp(26)},
	}

	got, err := checkAnswers(context.Background(), expected, solve)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, mismatch{Day: 2, Part: 2, Want: 12, Got: 13}, got[0])
	assert.Equal(t, "day 2 part 2: got 13, want 12", got[0].String())
	assert.Equal(t, 15, got[1].Day)
	assert.ErrorIs(t, got[1].Err, boom)
	assert.Equal(t, 2, countDays(got))
}

func TestCheckAnswersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := checkAnswers(ctx, []expectedAnswer{{Day: 1}}, func(context.Context, int) (Answer, error) {
		t.Fatal("solve called after cancel")
		return Answer{}, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
