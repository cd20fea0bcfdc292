package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol indicates a message byte that did not occur in the
	// training corpus.
	ErrUnknownSymbol = errors.New("huffman: symbol not in encoding map")
	// ErrTruncatedInput indicates compressed input that ends before the
	// end-of-message code.
	ErrTruncatedInput = errors.New("huffman: truncated input")
	// ErrReservedSymbol indicates a message containing the in-band
	// sentinel byte configured with WithSentinel.
	ErrReservedSymbol = errors.New("huffman: message contains reserved sentinel byte")
)

// UnknownSymbolError reports the first byte of a message that has no code.
type UnknownSymbolError struct {
	Symbol byte
	Offset int // position of Symbol in the message
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %q at offset %d not in encoding map", e.Symbol, e.Offset)
}

// Is makes errors.Is(err, ErrUnknownSymbol) hold.
func (e *UnknownSymbolError) Is(target error) bool { return target == ErrUnknownSymbol }

func truncatedAt(bits int) error {
	return fmt.Errorf("%w: no end-of-message code after %d bits", ErrTruncatedInput, bits)
}
