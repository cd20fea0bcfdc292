package huffman

import "strings"

// Core constants for the static Huffman codec
const (
	byteSymbols = 256             // Symbols 0-255 are message bytes
	EOM         = Symbol(256)     // Out-of-band end-of-message sentinel (default)
	numSymbols  = byteSymbols + 1 // Size of every per-symbol array

	// LegacySentinel is the in-band end marker (ETB) used by older
	// encoders. See WithSentinel.
	LegacySentinel = byte(0x17)

	maxCodeLen = 64 // Codes are packed into a uint64

	noChild = -1 // Child index of a leaf node
)

// Symbol is a single code unit of a message. Values below 256 are bytes;
// EOM is the only symbol above that range.
type Symbol uint16

// IsByte reports whether s is an ordinary message byte.
func (s Symbol) IsByte() bool { return s < byteSymbols }

// Code is the root-to-leaf path of a symbol in the trie.
// The path is stored in the low Len bits of Bits, first branch highest:
//
//	Bits=0b011, Len=3 -> "011"
type Code struct {
	Bits uint64
	Len  uint8
}

// append returns c extended by one branch bit.
func (c Code) append(bit uint64) Code {
	return Code{Bits: c.Bits<<1 | bit, Len: c.Len + 1}
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// String renders the code as a bit-string such as "0110".
// A zero-length code renders as "".
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// node is an element of the trie arena. Leaves have zero == one == noChild.
//
//	sym:    leaf symbol; internal nodes hold the sentinel for ordering
//	weight: leaf count or sum of the subtree
//	zero:   arena index reached on a 0 bit
//	one:    arena index reached on a 1 bit
type node struct {
	sym    Symbol
	weight uint64
	zero   int32
	one    int32
}

func newLeaf(sym Symbol, weight uint64) node {
	return node{sym: sym, weight: weight, zero: noChild, one: noChild}
}

func (n node) isLeaf() bool { return n.zero == noChild }
