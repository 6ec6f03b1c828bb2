package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
	registerSample("1a", "1.txt", 514579)
	registerSample("1b", "1.txt", 241861950)
}

func day1a(p *puzzle) (int, error) {
	target, err := p.intParam("target", 2020)
	if err != nil {
		return 0, err
	}
	entries, err := parseExpenses(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(entries)
	return productOfPair(entries, target)
}

func day1b(p *puzzle) (int, error) {
	target, err := p.intParam("target", 2020)
	if err != nil {
		return 0, err
	}
	entries, err := parseExpenses(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(entries)
	return productOfTriple(entries, target)
}

var errNoSolution = errors.New("no entries sum to the target")

func parseExpenses(r io.Reader) ([]int, error) {
	var entries []int
	scanner := newLineScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad expense entry %q", s)
		}
		entries = append(entries, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func productOfPair(entries []int, target int) (int, error) {
	sorted := sortedCopy(entries)
	a, b, ok := findPair(sorted, target)
	if !ok {
		return 0, errNoSolution
	}
	return a * b, nil
}

func productOfTriple(entries []int, target int) (int, error) {
	sorted := sortedCopy(entries)
	for i, a := range sorted {
		if b, c, ok := findPair(sorted[i+1:], target-a); ok {
			return a * b * c, nil
		}
	}
	return 0, errNoSolution
}

// findPair finds two entries of sorted, at different positions, that sum to
// target. It walks inward from both ends.
func findPair(sorted []int, target int) (a, b int, ok bool) {
	i, j := 0, len(sorted)-1
	for i < j {
		sum := sorted[i] + sorted[j]
		switch {
		case sum < target:
			i++
		case sum > target:
			j--
		default:
			return sorted[i], sorted[j], true
		}
	}
	return 0, 0, false
}

func sortedCopy(s []int) []int {
	s1 := make([]int, len(s))
	copy(s1, s)
	sort.Ints(s1)
	return s1
}
