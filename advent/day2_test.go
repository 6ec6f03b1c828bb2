package main

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestParsePasswordEntry(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want passwordEntry
	}{
		{"1-3 a: abcde", passwordEntry{1, 3, 'a', "abcde"}},
		{"2-9 c: ccccccccc", passwordEntry{2, 9, 'c', "ccccccccc"}},
		{"10-12 z: zzzz", passwordEntry{10, 12, 'z', "zzzz"}},
		{"4-4 é: ééé", passwordEntry{4, 4, 'é', "ééé"}},
	} {
		got, err := parsePasswordEntry(tt.s)
		if err != nil {
			t.Errorf("parsePasswordEntry(%q): %s", tt.s, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("parsePasswordEntry(%q): got %# v; diff: %v", tt.s, pretty.Formatter(got), diff)
		}
	}
}

func TestParsePasswordEntryErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"1-3 a abcde",
		"1-3: abcde",
		"13 a: abcde",
		"x-3 a: abcde",
		"1-y a: abcde",
		"0-3 a: abcde",
		"3-1 a: abcde",
		"1-3 ab: abcde",
		"1-3 : abcde",
	} {
		if _, err := parsePasswordEntry(s); err == nil {
			t.Errorf("parsePasswordEntry(%q): got nil error", s)
		}
	}
}

func TestPolicies(t *testing.T) {
	for _, tt := range []struct {
		s        string
		count    bool
		position bool
	}{
		{"1-3 a: abcde", true, true},
		{"1-3 b: cdefg", false, false},
		{"2-9 c: ccccccccc", true, false},
		{"1-2 a: aa", true, false},
		{"2-5 a: ba", false, true},
		{"3-9 a: ab", false, false},
		{"1-1 a: bbb", false, false},
	} {
		e, err := parsePasswordEntry(tt.s)
		if err != nil {
			t.Fatal(err)
		}
		if got := countPolicy(e); got != tt.count {
			t.Errorf("countPolicy(%q): got %t; want %t", tt.s, got, tt.count)
		}
		if got := positionPolicy(e); got != tt.position {
			t.Errorf("positionPolicy(%q): got %t; want %t", tt.s, got, tt.position)
		}
	}
}

func TestCountValid(t *testing.T) {
	entries, err := parsePasswords(strings.NewReader("1-3 a: abcde\n\n1-3 b: cdefg\n2-9 c: ccccccccc\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(entries), 3; got != want {
		t.Fatalf("got %d entries; want %d", got, want)
	}
	if got, want := countValid(entries, countPolicy), 2; got != want {
		t.Errorf("count policy: got %d; want %d", got, want)
	}
	if got, want := countValid(entries, positionPolicy), 1; got != want {
		t.Errorf("position policy: got %d; want %d", got, want)
	}
	if got := countValid(nil, countPolicy); got != 0 {
		t.Errorf("no entries: got %d; want 0", got)
	}

	if _, err := parsePasswords(strings.NewReader("1-3 a: abcde\nbogus\n")); err == nil {
		t.Error("parsePasswords with bad line: got nil error")
	}
}
