package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
	registerSample("2a", "2.txt", 2)
	registerSample("2b", "2.txt", 1)
}

func day2a(p *puzzle) (int, error) {
	entries, err := parsePasswords(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(entries)
	return countValid(entries, countPolicy), nil
}

func day2b(p *puzzle) (int, error) {
	entries, err := parsePasswords(p.reader())
	if err != nil {
		return 0, err
	}
	p.dump(entries)
	return countValid(entries, positionPolicy), nil
}

// A passwordEntry is a password along with the rule it was created under:
// "lo-hi c: password".
type passwordEntry struct {
	lo       int
	hi       int
	c        rune
	password string
}

func parsePasswordEntry(s string) (passwordEntry, error) {
	var e passwordEntry
	rule, password, ok := strings.Cut(s, ": ")
	if !ok {
		return e, fmt.Errorf("bad password line %q", s)
	}
	bounds, char, ok := strings.Cut(rule, " ")
	if !ok {
		return e, fmt.Errorf("bad rule %q", rule)
	}
	lo, hi, ok := strings.Cut(bounds, "-")
	if !ok {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	var err error
	if e.lo, err = strconv.Atoi(lo); err != nil {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	if e.hi, err = strconv.Atoi(hi); err != nil {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	if e.lo < 1 || e.hi < e.lo {
		return e, fmt.Errorf("bad range %q", bounds)
	}
	if utf8.RuneCountInString(char) != 1 {
		return e, fmt.Errorf("bad rule character %q", char)
	}
	e.c, _ = utf8.DecodeRuneInString(char)
	e.password = password
	return e, nil
}

func parsePasswords(r io.Reader) ([]passwordEntry, error) {
	var entries []passwordEntry
	scanner := newLineScanner(r)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		e, err := parsePasswordEntry(scanner.Text())
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// A passwordPolicy reports whether an entry's password follows its rule.
type passwordPolicy func(passwordEntry) bool

// countPolicy requires c to appear between lo and hi times, inclusive.
func countPolicy(e passwordEntry) bool {
	n := strings.Count(e.password, string(e.c))
	return n >= e.lo && n <= e.hi
}

// positionPolicy requires c at exactly one of the 1-based positions lo and hi.
func positionPolicy(e passwordEntry) bool {
	pw := []rune(e.password)
	has := func(pos int) bool {
		return pos <= len(pw) && pw[pos-1] == e.c
	}
	return has(e.lo) != has(e.hi)
}

func countValid(entries []passwordEntry, policy passwordPolicy) int {
	var n int
	for _, e := range entries {
		if policy(e) {
			n++
		}
	}
	return n
}
