package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var exampleExpenses = []int{1721, 979, 366, 299, 675, 1456}

func TestParseExpenses(t *testing.T) {
	got, err := parseExpenses(strings.NewReader("1721\n979\n\n 366 \n299\n675\n1456"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, exampleExpenses) {
		t.Errorf("got %v; want %v", got, exampleExpenses)
	}

	if _, err := parseExpenses(strings.NewReader("12\nabc\n")); err == nil {
		t.Error("parseExpenses with non-numeric line: got nil error")
	}
}

func TestProductOfPair(t *testing.T) {
	for _, tt := range []struct {
		entries []int
		target  int
		want    int
		err     error
	}{
		{exampleExpenses, 2020, 514579, nil},
		{[]int{1, 2, 3}, 5, 6, nil},
		{[]int{1010}, 2020, 0, errNoSolution},
		{[]int{1010, 1010}, 2020, 1020100, nil},
		{nil, 2020, 0, errNoSolution},
		{[]int{1, 2}, 100, 0, errNoSolution},
	} {
		got, err := productOfPair(tt.entries, tt.target)
		if !errors.Is(err, tt.err) {
			t.Errorf("productOfPair(%v, %d): got err %v; want %v", tt.entries, tt.target, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("productOfPair(%v, %d): got %d; want %d", tt.entries, tt.target, got, tt.want)
		}
	}
}

func TestProductOfTriple(t *testing.T) {
	for _, tt := range []struct {
		entries []int
		target  int
		want    int
		err     error
	}{
		{exampleExpenses, 2020, 241861950, nil},
		{[]int{5, 1, 4, 2}, 8, 10, nil},
		{[]int{1000, 1020}, 2020, 0, errNoSolution},
		{nil, 2020, 0, errNoSolution},
	} {
		got, err := productOfTriple(tt.entries, tt.target)
		if !errors.Is(err, tt.err) {
			t.Errorf("productOfTriple(%v, %d): got err %v; want %v", tt.entries, tt.target, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("productOfTriple(%v, %d): got %d; want %d", tt.entries, tt.target, got, tt.want)
		}
	}
}

func TestProductDoesNotReorderInput(t *testing.T) {
	entries := []int{3, 1, 2}
	if _, err := productOfPair(entries, 3); err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 1, 2}; !reflect.DeepEqual(entries, want) {
		t.Errorf("entries changed to %v", entries)
	}
}

func TestDay1Target(t *testing.T) {
	p := &puzzle{
		name:   "1a",
		input:  []byte("1\n2\n3\n4\n"),
		params: map[string]string{"target": "7"},
	}
	got, err := day1a(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := 12; got != want {
		t.Errorf("got %d; want %d", got, want)
	}

	p.params["target"] = "seven"
	if _, err := day1a(p); err == nil {
		t.Error("bad target: got nil error")
	}
}
