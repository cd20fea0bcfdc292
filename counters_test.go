package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBasic(t *testing.T) {
	var h histogram
	h.add([]byte("aaabbc"))
	h.finish(EOM)

	assert.Equal(t, uint64(6), h.total)
	assert.Equal(t, 4, h.distinct())

	// next walks non-zero counts in symbol order
	var got []Symbol
	for s := uint32(0); s < numSymbols; s++ {
		if h.next(&s) == 0 {
			break
		}
		got = append(got, Symbol(s))
	}
	assert.Equal(t, []Symbol{'a', 'b', 'c', EOM}, got)

	s := uint32('d')
	assert.Equal(t, uint64(1), h.next(&s))
	assert.Equal(t, uint32(EOM), s)
}

func TestFrequencies(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		opts   []Option
		want   Histogram
	}{
		{
			name:   "aaabbc",
			corpus: "aaabbc",
			want:   Histogram{'a': 3, 'b': 2, 'c': 1, EOM: 1},
		},
		{
			name:   "empty corpus",
			corpus: "",
			want:   Histogram{EOM: 1},
		},
		{
			name:   "legacy sentinel absent",
			corpus: "ab",
			opts:   []Option{WithSentinel(LegacySentinel)},
			want:   Histogram{'a': 1, 'b': 1, Symbol(LegacySentinel): 1},
		},
		{
			// The real count of an in-band sentinel is discarded.
			name:   "legacy sentinel in corpus",
			corpus: "a\x17\x17\x17",
			opts:   []Option{WithSentinel(LegacySentinel)},
			want:   Histogram{'a': 1, Symbol(LegacySentinel): 1},
		},
		{
			name:   "etb is ordinary without the option",
			corpus: "\x17\x17",
			want:   Histogram{Symbol(LegacySentinel): 2, EOM: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Frequencies([]byte(tt.corpus), tt.opts...)
			require.Equal(t, tt.want, got)
		})
	}
}
