package internal

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Range is a validated, materializable index range
type Range struct {
	Start     uint64
	End       uint64
	Inclusive bool
}

// Len returns the number of indices in the range
func (r Range) Len() uint64 {
	if r.Inclusive {
		return r.End - r.Start + 1
	}
	return r.End - r.Start
}

// Indices returns the ascending index sequence. The sequence is lazy and
// can be ranged over any number of times.
func (r Range) Indices() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if !r.Inclusive && r.Start == r.End {
			return
		}
		last := r.End
		if !r.Inclusive {
			last = r.End - 1
		}
		for i := r.Start; ; i++ {
			if !yield(i) || i == last {
				return
			}
		}
	}
}

// EvaluateRange validates the bounds of spec. A maxRepetitions of zero
// disables the repetition limit.
func EvaluateRange(spec *ExpansionSpec, maxRepetitions uint64) (Range, error) {
	start, err := ParseBound(spec.Start, ConstructStartBound)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseBound(spec.End, ConstructEndBound)
	if err != nil {
		return Range{}, err
	}

	if start > end {
		return Range{}, NewRangeError(ConstructStartBound,
			fmt.Sprintf(ErrFmtStartAfterEnd, ErrMsgStartAfterEnd, start, end), spec.Start.Position)
	}

	r := Range{Start: start, End: end, Inclusive: spec.Inclusive}

	// start=0, end=MaxUint64 inclusive wraps Len to zero
	overflow := r.Inclusive && start == 0 && end == ^uint64(0)
	if maxRepetitions > 0 && (overflow || r.Len() > maxRepetitions) {
		return Range{}, NewRangeError(ConstructEndBound,
			fmt.Sprintf(ErrFmtTooManyRepeats, ErrMsgTooManyRepeats, r.Len(), maxRepetitions), spec.End.Position)
	}
	return r, nil
}

// ParseBound parses an integer literal token used as a range bound.
// Underscore separators, 0x/0o/0b prefixes and integer type suffixes are
// accepted; anything else is a range error at the literal.
func ParseBound(lit Token, construct string) (uint64, error) {
	text := strings.ReplaceAll(lit.Text, "_", "")
	base := 10

	switch {
	case strings.HasPrefix(text, "0x"):
		text, base = text[2:], 16
	case strings.HasPrefix(text, "0o"):
		text, base = text[2:], 8
	case strings.HasPrefix(text, "0b"):
		text, base = text[2:], 2
	}

	// 'u' and 'i' are not hex digits, so a suffix never swallows a digit
	for _, suffix := range IntegerSuffixes {
		if strings.HasSuffix(text, suffix) {
			text = strings.TrimSuffix(text, suffix)
			break
		}
	}

	value, err := strconv.ParseUint(text, base, 64)
	if err != nil || lit.Kind != KindLiteral {
		return 0, NewRangeError(construct, fmt.Sprintf(ErrFmtInvalidBound, ErrMsgInvalidBound, lit.Describe()), lit.Position)
	}
	return value, nil
}
