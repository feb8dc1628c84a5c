package types

import (
	"errors"
	"fmt"
)

// LabelCapacity is the maximum number of bytes a Label can hold
const LabelCapacity = 32

var (
	// ErrEmptyLabel is returned when a label is constructed from an empty string
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrLabelTooLong is returned when a label exceeds LabelCapacity bytes
	ErrLabelTooLong = errors.New("label too long")

	// ErrInvalidLabel is returned when a label contains a NUL byte
	ErrInvalidLabel = errors.New("label contains NUL byte")
)

// Label is a short, fixed-capacity name attached to a base dimension.
//
// The characters are stored inline, so a Label is a comparable value that can be
// used as a map key and copied without allocation. Its length is fixed when it is
// constructed and never changes.
type Label struct {
	n    uint8
	data [LabelCapacity + 1]byte // always NUL-terminated
}

// NewLabel creates a label from s
func NewLabel(s string) (Label, error) {
	if s == "" {
		return Label{}, ErrEmptyLabel
	}
	if len(s) > LabelCapacity {
		return Label{}, fmt.Errorf("%w: %q has %d bytes (maximum %d)", ErrLabelTooLong, s, len(s), LabelCapacity)
	}

	var l Label
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return Label{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
		}
		l.data[i] = s[i]
	}
	l.n = uint8(len(s))
	return l, nil
}

// MustLabel is like NewLabel but panics on error.
// Intended for package-level declarations with literal names.
func MustLabel(s string) Label {
	l, err := NewLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of characters in the label
func (l Label) Len() int {
	return int(l.n)
}

// IsZero reports whether the label was never initialized
func (l Label) IsZero() bool {
	return l.n == 0
}

// String returns the label text
func (l Label) String() string {
	return string(l.data[:l.n])
}

// CStr returns a copy of the label characters followed by a terminating NUL
func (l Label) CStr() []byte {
	out := make([]byte, l.n+1)
	copy(out, l.data[:l.n+1])
	return out
}

// Equal reports whether both labels have the same length and the same characters.
// Labels of different length are never equal.
func (l Label) Equal(other Label) bool {
	if l.n != other.n {
		return false
	}
	for i := 0; i < int(l.n); i++ {
		if l.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Compare orders two labels of possibly different length lexicographically.
// A label that is a strict prefix of the other sorts first.
func (l Label) Compare(other Label) int {
	n := int(l.n)
	if int(other.n) < n {
		n = int(other.n)
	}
	for i := 0; i < n; i++ {
		switch {
		case l.data[i] < other.data[i]:
			return -1
		case l.data[i] > other.data[i]:
			return 1
		}
	}
	switch {
	case l.n < other.n:
		return -1
	case l.n > other.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether l sorts before other
func (l Label) Less(other Label) bool {
	return l.Compare(other) < 0
}
