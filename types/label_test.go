package types

import (
	"errors"
	"strings"
	"testing"
)

func TestNewLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "single char", input: "L"},
		{name: "unicode symbol", input: "Θ"},
		{name: "at capacity", input: strings.Repeat("x", LabelCapacity)},
		{name: "empty", input: "", wantErr: ErrEmptyLabel},
		{name: "over capacity", input: strings.Repeat("x", LabelCapacity+1), wantErr: ErrLabelTooLong},
		{name: "embedded NUL", input: "a\x00b", wantErr: ErrInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLabel(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewLabel(%q): got error %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLabel(%q): unexpected error: %v", tt.input, err)
			}
			if l.String() != tt.input {
				t.Errorf("String(): got %q, want %q", l.String(), tt.input)
			}
			if l.Len() != len(tt.input) {
				t.Errorf("Len(): got %d, want %d", l.Len(), len(tt.input))
			}
		})
	}
}

func TestLabelCStr(t *testing.T) {
	l := MustLabel("kg")
	got := l.CStr()
	want := []byte{'k', 'g', 0}
	if string(got) != string(want) {
		t.Errorf("CStr(): got %v, want %v", got, want)
	}

	// mutating the returned slice must not affect the label
	got[0] = 'X'
	if l.String() != "kg" {
		t.Errorf("label changed after CStr mutation: %q", l.String())
	}
}

func TestLabelEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"L", "L", true},
		{"L", "T", false},
		{"L", "LL", false},
		{"LL", "L", false},
		{"abc", "abd", false},
	}

	for _, tt := range tests {
		a, b := MustLabel(tt.a), MustLabel(tt.b)
		if got := a.Equal(b); got != tt.want {
			t.Errorf("%q.Equal(%q): got %v, want %v", tt.a, tt.b, got, tt.want)
		}
		// Label is comparable, == must agree with Equal
		if got := a == b; got != tt.want {
			t.Errorf("%q == %q: got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLabelOrdering(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"L", "T", -1},
		{"T", "L", 1},
		{"L", "L", 0},
		{"L", "Lm", -1}, // strict prefix sorts first
		{"Lm", "L", 1},
		{"M", "Lm", 1},
		{"I", "J", -1},
		{strings.Repeat("z", LabelCapacity), "a", 1},
	}

	for _, tt := range tests {
		a, b := MustLabel(tt.a), MustLabel(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.Less(b); got != (tt.want < 0) {
			t.Errorf("Less(%q, %q): got %v, want %v", tt.a, tt.b, got, tt.want < 0)
		}
	}
}

func TestMustLabelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLabel(\"\") should panic")
		}
	}()
	MustLabel("")
}
