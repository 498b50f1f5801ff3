package internal

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rangeSpec builds a spec with literal bounds at distinct columns
func rangeSpec(start, end string, inclusive bool) *ExpansionSpec {
	return &ExpansionSpec{
		Placeholder: NewIdent("N", pos(0, 1, 1)),
		Start:       NewLiteral(start, pos(5, 1, 6)),
		End:         NewLiteral(end, pos(10, 1, 11)),
		Inclusive:   inclusive,
	}
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"0", 0},
		{"42", 42},
		{"1_000", 1000},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"10usize", 10},
		{"7u8", 7},
		{"3i32", 3},
		{"0x10u64", 16},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := ParseBound(NewLiteral(tt.input, Position{}), ConstructStartBound)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseBound_Invalid(t *testing.T) {
	inputs := []string{"1.5", `"3"`, "'a'", "99999999999999999999999", "0x", "12abc", "1e3"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lit := NewLiteral(input, pos(5, 1, 6))
			_, err := ParseBound(lit, ConstructStartBound)
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrorKindRange, perr.Kind)
			assert.Equal(t, ConstructStartBound, perr.Construct)
			assert.Equal(t, lit.Position, perr.Position)
			assert.Contains(t, perr.Message, ErrMsgInvalidBound)
		})
	}

	t.Run("identifier is never a bound", func(t *testing.T) {
		_, err := ParseBound(NewIdent("10", Position{}), ConstructEndBound)
		require.Error(t, err)
	})
}

func TestEvaluateRange_Indices(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		inclusive bool
		expected  []uint64
	}{
		{"exclusive", "0", "3", false, []uint64{0, 1, 2}},
		{"inclusive", "0", "2", true, []uint64{0, 1, 2}},
		{"offset start", "5", "8", false, []uint64{5, 6, 7}},
		{"empty exclusive", "2", "2", false, nil},
		{"single inclusive", "2", "2", true, []uint64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := EvaluateRange(rangeSpec(tt.start, tt.end, tt.inclusive), DefaultMaxRepetitions)
			require.NoError(t, err)

			indices := slices.Collect(rng.Indices())
			assert.Equal(t, tt.expected, indices)
			assert.Equal(t, uint64(len(tt.expected)), rng.Len())
		})
	}
}

func TestEvaluateRange_CountProperty(t *testing.T) {
	for start := 0; start < 4; start++ {
		for end := start; end < 7; end++ {
			excl := Range{Start: uint64(start), End: uint64(end)}
			incl := Range{Start: uint64(start), End: uint64(end), Inclusive: true}

			assert.Len(t, slices.Collect(excl.Indices()), end-start)
			assert.Len(t, slices.Collect(incl.Indices()), end-start+1)
		}
	}
}

func TestRange_Indices_Restartable(t *testing.T) {
	rng := Range{Start: 1, End: 4}

	first := slices.Collect(rng.Indices())
	second := slices.Collect(rng.Indices())
	assert.Equal(t, first, second)

	// early break stops the sequence
	var seen []uint64
	for i := range rng.Indices() {
		seen = append(seen, i)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{1, 2}, seen)
}

func TestRange_Indices_MaxBound(t *testing.T) {
	rng := Range{Start: math.MaxUint64 - 1, End: math.MaxUint64, Inclusive: true}
	assert.Equal(t, []uint64{math.MaxUint64 - 1, math.MaxUint64}, slices.Collect(rng.Indices()))
}

func TestEvaluateRange_Errors(t *testing.T) {
	tests := []struct {
		name           string
		spec           *ExpansionSpec
		maxRepetitions uint64
		construct      string
		message        string
		position       Position
	}{
		{
			name:      "start after end exclusive",
			spec:      rangeSpec("5", "2", false),
			construct: ConstructStartBound,
			message:   ErrMsgStartAfterEnd,
			position:  pos(5, 1, 6),
		},
		{
			name:      "start after end inclusive",
			spec:      rangeSpec("3", "2", true),
			construct: ConstructStartBound,
			message:   ErrMsgStartAfterEnd,
			position:  pos(5, 1, 6),
		},
		{
			name:      "invalid end bound",
			spec:      rangeSpec("0", "2.5", false),
			construct: ConstructEndBound,
			message:   ErrMsgInvalidBound,
			position:  pos(10, 1, 11),
		},
		{
			name:           "repetition limit",
			spec:           rangeSpec("0", "11", false),
			maxRepetitions: 10,
			construct:      ConstructEndBound,
			message:        ErrMsgTooManyRepeats,
			position:       pos(10, 1, 11),
		},
		{
			name:           "full inclusive range hits the limit",
			spec:           rangeSpec("0", "18446744073709551615", true),
			maxRepetitions: 10,
			construct:      ConstructEndBound,
			message:        ErrMsgTooManyRepeats,
			position:       pos(10, 1, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateRange(tt.spec, tt.maxRepetitions)
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, ErrorKindRange, perr.Kind)
			assert.Equal(t, tt.construct, perr.Construct)
			assert.Contains(t, perr.Message, tt.message)
			assert.Equal(t, tt.position, perr.Position)
		})
	}
}

func TestEvaluateRange_NoLimit(t *testing.T) {
	rng, err := EvaluateRange(rangeSpec("0", "100000", false), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), rng.Len())
}
