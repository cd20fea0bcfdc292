// Package huffman provides static Huffman compression for short messages
// via a code learned from a sample corpus.
//
// # Overview
//
// A Table is trained once from a corpus whose byte distribution resembles
// the messages to be compressed. Training counts every byte, adds an
// end-of-message sentinel with weight 1, and builds a binary trie by
// repeatedly merging the two lightest nodes. The root-to-leaf path of each
// byte is its code. Both sides of a channel must train on the same corpus:
// the compressed form carries no header and no code table.
//
// # Wire Format
//
// An encoded message is the code of every message byte followed by the
// sentinel's code, packed most significant bit first. The last byte is
// padded with zero bits. Decoding stops at the sentinel, so padding and any
// trailing bytes are ignored.
//
// # Determinism
//
// Nodes of equal weight are ordered by symbol value; internal nodes sort
// with the sentinel's value and remaining ties by creation order. Training
// on identical corpora therefore yields identical tables and identical
// compressed bytes.
//
// # Sentinel
//
// By default the sentinel is EOM, a symbol outside the byte range, so every
// byte value may appear in corpora and messages. WithSentinel reserves an
// ordinary byte instead, for compatibility with encoders that terminate
// messages with LegacySentinel. A reserved byte occurring in the corpus has
// its count replaced by 1 and cannot be encoded.
//
// # Basic Usage
//
//	tbl := huffman.TrainString("the quick brown fox jumps over the lazy dog")
//
//	compressed, err := tbl.EncodeString("the lazy fox")
//	if err != nil {
//	    // errors.Is(err, huffman.ErrUnknownSymbol): byte absent from corpus
//	}
//	original, err := tbl.DecodeAll(compressed)
//	if err != nil {
//	    // errors.Is(err, huffman.ErrTruncatedInput)
//	}
//
//	// Byte-at-a-time decoding for long messages
//	dec := huffman.NewLookupDecoder(tbl)
//	original, err = dec.DecodeAll(compressed)
//
// # Performance Characteristics
//
// Training: O(n + k log k) where n is corpus size, k distinct symbols (<= 257)
// Encoding: O(m) in message size
// Decoding: O(b) in compressed bits (Table), O(bytes) with LookupDecoder
//
// A LookupDecoder holds 256 transitions per internal trie node, at most
// about 1MB.
package huffman
