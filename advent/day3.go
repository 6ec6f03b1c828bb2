package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("3a", day3a)
	register("3b", day3b)
	registerSample("3a", "3.txt", 7)
	registerSample("3b", "3.txt", 336)
}

func day3a(p *puzzle) (int, error) {
	s, err := parseSlope(p.param("slope", "3,1"))
	if err != nil {
		return 0, err
	}
	g, err := parseGrid(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(g)
	return g.treesOnSlope(s)
}

func day3b(p *puzzle) (int, error) {
	slopes, err := parseSlopes(p.param("slopes", "1,1 3,1 5,1 7,1 1,2"))
	if err != nil {
		return 0, err
	}
	g, err := parseGrid(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(g)
	product := 1
	for _, s := range slopes {
		n, err := g.treesOnSlope(s)
		if err != nil {
			return 0, err
		}
		product *= n
	}
	return product, nil
}

type cell uint8

const (
	open cell = iota
	tree
)

func parseCell(c rune) (cell, bool) {
	switch c {
	case '.':
		return open, true
	case '#':
		return tree, true
	}
	return 0, false
}

func (c cell) String() string {
	switch c {
	case open:
		return "."
	case tree:
		return "#"
	}
	return "cell(" + strconv.Itoa(int(c)) + ")"
}

// An invalidCharError is returned when a map line holds something other
// than '.' or '#'.
type invalidCharError struct {
	c    rune // utf8.RuneError for a byte that isn't valid UTF-8
	line int  // 1-based
	col  int  // 1-based, in runes
}

func (e *invalidCharError) Error() string {
	return fmt.Sprintf("invalid map character %q at line %d, column %d", e.c, e.line, e.col)
}

// A raggedRowError is returned when map rows differ in width. The terrain
// tiles horizontally, which is only well-defined for a rectangle.
type raggedRowError struct {
	line  int
	width int
	want  int
}

func (e *raggedRowError) Error() string {
	return fmt.Sprintf("map line %d has width %d; want %d", e.line, e.width, e.want)
}

// A row is one line of the map. The terrain repeats to the right forever,
// so columns past the end wrap around.
type row []cell

// at returns the cell at column x, which may be any non-negative number.
func (r row) at(x int) cell {
	return r[x%len(r)]
}

// parseRow parses s, which is line number line of the map.
func parseRow(s string, line int) (row, error) {
	r := make(row, 0, len(s))
	col := 0
	for _, c := range s {
		col++
		v, ok := parseCell(c)
		if !ok {
			return nil, &invalidCharError{c: c, line: line, col: col}
		}
		r = append(r, v)
	}
	return r, nil
}

// A grid is a rectangular map. Every row is non-empty.
type grid []row

// parseGrid reads one map row per line. Blank lines are skipped, so empty
// input gives a grid with no rows.
func parseGrid(r io.Reader) (grid, error) {
	var g grid
	scanner := newLineScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := scanner.Text()
		if s == "" {
			continue
		}
		rw, err := parseRow(s, line)
		if err != nil {
			return nil, err
		}
		if len(g) > 0 && len(rw) != len(g[0]) {
			return nil, &raggedRowError{line: line, width: len(rw), want: len(g[0])}
		}
		g = append(g, rw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// A slope is the step taken on each move: right, then down.
type slope struct {
	right int
	down  int
}

func (s slope) String() string {
	return fmt.Sprintf("%d,%d", s.right, s.down)
}

var errBadSlope = errors.New("slope steps must be positive")

// parseSlope parses a slope written as "right,down".
func parseSlope(s string) (slope, error) {
	var sl slope
	right, down, ok := strings.Cut(s, ",")
	if !ok {
		return sl, fmt.Errorf("bad slope %q", s)
	}
	var err error
	if sl.right, err = strconv.Atoi(strings.TrimSpace(right)); err != nil {
		return sl, fmt.Errorf("bad slope %q", s)
	}
	if sl.down, err = strconv.Atoi(strings.TrimSpace(down)); err != nil {
		return sl, fmt.Errorf("bad slope %q", s)
	}
	if sl.right < 1 || sl.down < 1 {
		return sl, fmt.Errorf("slope %s: %w", sl, errBadSlope)
	}
	return sl, nil
}

// parseSlopes parses a whitespace-separated list of slopes.
func parseSlopes(s string) ([]slope, error) {
	var slopes []slope
	for _, field := range strings.Fields(s) {
		sl, err := parseSlope(field)
		if err != nil {
			return nil, err
		}
		slopes = append(slopes, sl)
	}
	if len(slopes) == 0 {
		return nil, errors.New("no slopes given")
	}
	return slopes, nil
}

// treesOnSlope counts the trees hit going from the top-left corner down to
// the bottom of g along s. The starting square isn't counted.
func (g grid) treesOnSlope(s slope) (int, error) {
	if s.right < 1 || s.down < 1 {
		return 0, fmt.Errorf("slope %s: %w", s, errBadSlope)
	}
	if len(g) == 0 {
		return 0, nil
	}
	// Track the column modulo the width so a huge step can't overflow.
	w := len(g[0])
	right := s.right % w
	var trees int
	for x, y := right, s.down; y < len(g); x, y = (x+right)%w, y+s.down {
		if g[y].at(x) == tree {
			trees++
		}
	}
	return trees, nil
}
