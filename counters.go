package huffman

// histogram tracks per-symbol frequencies of a training corpus.
//
// Counts live in a flat array indexed by Symbol so that iteration order is
// the symbol order; trie construction relies on that for reproducibility.
// The histogram is only used while training and is discarded afterwards.
type histogram struct {
	counts [numSymbols]uint64
	total  uint64 // corpus length, sentinel excluded
}

// add counts every byte of corpus.
func (h *histogram) add(corpus []byte) {
	for _, b := range corpus {
		h.counts[b]++
	}
	h.total += uint64(len(corpus))
}

// finish forces the sentinel count to 1. When the sentinel is an in-band
// byte that also occurs in the corpus, its real count is discarded.
func (h *histogram) finish(sentinel Symbol) {
	h.counts[sentinel] = 1
}

// next advances sym to the next symbol with a non-zero count and returns
// that count. Returns 0 if no more non-zero counts exist.
func (h *histogram) next(sym *uint32) uint64 {
	s := *sym
	for s < numSymbols {
		if c := h.counts[s]; c != 0 {
			*sym = s
			return c
		}
		s++
	}
	*sym = s
	return 0
}

// distinct returns the number of symbols with a non-zero count.
func (h *histogram) distinct() int {
	n := 0
	for s := uint32(0); ; s++ {
		if h.next(&s) == 0 {
			return n
		}
		n++
	}
}

// Histogram maps each symbol seen in a corpus, plus the sentinel, to its
// weight.
type Histogram map[Symbol]uint64

// Frequencies returns the weights Train would use for corpus. Only the
// sentinel option is consulted.
func Frequencies(corpus []byte, opts ...Option) Histogram {
	cfg := newConfig(opts)
	h := &histogram{}
	h.add(corpus)
	h.finish(cfg.sentinel)
	return h.export()
}

func (h *histogram) export() Histogram {
	out := make(Histogram, h.distinct())
	for s := uint32(0); s < numSymbols; s++ {
		count := h.next(&s)
		if count == 0 {
			break
		}
		out[Symbol(s)] = count
	}
	return out
}
