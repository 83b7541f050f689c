package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// parseCalories reads blank-line separated groups of calorie counts,
// one group per elf.
func parseCalories(r io.Reader) ([][]int, error) {
	var (
		groups [][]int
		group  []int
		lineNo int
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			if group != nil {
				groups = append(groups, group)
				group = nil
			}
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNo, err)
		}
		group = append(group, n)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if group != nil {
		groups = append(groups, group)
	}
	return groups, nil
}

// topTotals returns the k largest group sums, largest first.
func topTotals(groups [][]int, k int) []int {
	totals := make([]int, len(groups))
	for i, g := range groups {
		for _, n := range g {
			totals[i] += n
		}
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals[:min(k, len(totals))]
}

func solveDay1(_ context.Context, _ *Config, r io.Reader) (Answer, error) {
	groups, err := parseCalories(r)
	if err != nil {
		return Answer{}, err
	}
	var a Answer
	top := topTotals(groups, 3)
	for i, n := range top {
		if i == 0 {
			a.Part1 = n
		}
		a.Part2 += n
	}
	return a, nil
}
