package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/icza/bitio"
	"github.com/rs/zerolog"
)

// Table holds a trained Huffman trie and the code of every symbol in it.
// A Table is created via Train and is never modified afterwards, so a single
// Table can encode and decode from many goroutines at once.
type Table struct {
	// Trie arena; leaves hold symbols, internal nodes index their children
	nodes []node
	root  int32

	// Encoding map, indexed by symbol
	codes [numSymbols]Code
	known [numSymbols]bool // symbol has a leaf (codes may be zero-length)

	sentinel Symbol // end-of-message symbol terminating every encoded message
	maxLen   uint8  // longest code in bits

	logger zerolog.Logger
}

// Sentinel returns the end-of-message symbol of the table.
func (t *Table) Sentinel() Symbol { return t.sentinel }

// RootWeight returns the weight of the trie root, the sum of all leaf
// weights.
func (t *Table) RootWeight() uint64 { return t.nodes[t.root].weight }

// MaxCodeLen returns the length in bits of the longest code.
func (t *Table) MaxCodeLen() int { return int(t.maxLen) }

// Degenerate reports whether the trie is a single leaf. That happens when
// the corpus contributes no symbols besides the sentinel. Every code is then
// empty: only the empty message can be encoded, it encodes to zero bytes,
// and any input decodes to the empty message.
func (t *Table) Degenerate() bool { return t.nodes[t.root].isLeaf() }

// Code returns the code of sym and whether sym has one.
func (t *Table) Code(sym Symbol) (Code, bool) {
	if int(sym) >= numSymbols {
		return Code{}, false
	}
	return t.codes[sym], t.known[sym]
}

// Codes returns a copy of the encoding map.
func (t *Table) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code)
	for s := range numSymbols {
		if t.known[s] {
			out[Symbol(s)] = t.codes[s]
		}
	}
	return out
}

// Weights returns the leaf weights the trie was built from.
func (t *Table) Weights() Histogram {
	out := make(Histogram)
	for _, n := range t.nodes {
		if n.isLeaf() {
			out[n.sym] = n.weight
		}
	}
	return out
}

// Equal reports whether t and other produce identical encodings.
func (t *Table) Equal(other *Table) bool {
	return t.sentinel == other.sentinel && t.codes == other.codes && t.known == other.known
}

// Encode compresses msg, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
//
// The output is the code of every byte of msg followed by the sentinel's
// code, packed most significant bit first. Unused low bits of the last byte
// are zero. If msg holds a byte without a code, Encode returns an error
// matching ErrUnknownSymbol and no output.
func (t *Table) Encode(buf, msg []byte) ([]byte, error) {
	bits := int(t.codes[t.sentinel].Len)
	for i, b := range msg {
		if Symbol(b) == t.sentinel {
			return nil, fmt.Errorf("%w: offset %d", ErrReservedSymbol, i)
		}
		if !t.known[b] {
			return nil, &UnknownSymbolError{Symbol: b, Offset: i}
		}
		bits += int(t.codes[b].Len)
	}

	out := bytes.NewBuffer(buf[:0])
	out.Grow((bits + 7) / 8)
	w := bitio.NewWriter(out)
	for _, b := range msg {
		if c := t.codes[b]; c.Len > 0 {
			w.TryWriteBits(c.Bits, c.Len)
		}
	}
	if c := t.codes[t.sentinel]; c.Len > 0 {
		w.TryWriteBits(c.Bits, c.Len)
	}
	// Close pads the final partial byte with zero bits
	if err := w.Close(); err != nil {
		return nil, err
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	return out.Bytes(), nil
}

// EncodeAll compresses msg and returns a newly allocated byte slice.
func (t *Table) EncodeAll(msg []byte) ([]byte, error) {
	return t.Encode(nil, msg)
}

// EncodeString compresses msg and returns a newly allocated byte slice.
func (t *Table) EncodeString(msg string) ([]byte, error) {
	return t.Encode(nil, unsafe.Slice(unsafe.StringData(msg), len(msg)))
}

// Decode decompresses src, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
//
// Decoding walks the trie one bit at a time and stops at the sentinel's
// leaf; any bits after it are ignored. If src ends first, Decode returns an
// error matching ErrTruncatedInput and no output. That includes an empty
// src unless the table is degenerate.
func (t *Table) Decode(buf, src []byte) ([]byte, error) {
	var (
		out      = buf[:0]
		r        = bitio.NewReader(bytes.NewReader(src))
		cur      = t.root
		consumed int
	)
	for {
		n := t.nodes[cur]
		if n.isLeaf() {
			if n.sym == t.sentinel {
				return out, nil
			}
			out = append(out, byte(n.sym))
			cur = t.root
			continue
		}
		bit, err := r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, truncatedAt(consumed)
			}
			return nil, err
		}
		consumed++
		if bit {
			cur = n.one
		} else {
			cur = n.zero
		}
	}
}

// DecodeAll decompresses src and returns a newly allocated byte slice with the result.
func (t *Table) DecodeAll(src []byte) ([]byte, error) {
	return t.Decode(nil, src)
}

// DecodeString decompresses a string and returns a newly allocated byte slice.
func (t *Table) DecodeString(s string) ([]byte, error) {
	return t.Decode(nil, unsafe.Slice(unsafe.StringData(s), len(s)))
}
