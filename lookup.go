package huffman

// lookupEntry is the result of walking eight bits from one internal node.
//
//	out/n: bytes completed during the walk, in order
//	done:  the sentinel's leaf was reached; remaining bits are padding
//	next:  arena index of the internal node the walk stopped on
type lookupEntry struct {
	out  [8]byte
	n    uint8
	done bool
	next int32
}

// LookupDecoder decodes a whole input byte per step using transitions
// precomputed from a Table. It produces exactly the output and errors of
// Table.Decode and, like a Table, is safe for concurrent use.
type LookupDecoder struct {
	table   *Table
	rows    []int32       // arena index -> row in entries, -1 for leaves
	entries []lookupEntry // row*256 + input byte
}

// NewLookupDecoder precomputes the transition table for t. The table has one
// row of 256 entries per internal trie node.
func NewLookupDecoder(t *Table) *LookupDecoder {
	d := &LookupDecoder{table: t, rows: make([]int32, len(t.nodes))}
	internal := 0
	for i, n := range t.nodes {
		if n.isLeaf() {
			d.rows[i] = -1
			continue
		}
		d.rows[i] = int32(internal)
		internal++
	}

	d.entries = make([]lookupEntry, internal*256)
	for i, n := range t.nodes {
		if n.isLeaf() {
			continue
		}
		row := d.entries[int(d.rows[i])*256:]
		for b := range 256 {
			row[b] = t.walkByte(int32(i), byte(b))
		}
	}

	t.logger.Debug().
		Int("rows", internal).
		Int("entries", len(d.entries)).
		Msg("built huffman lookup decoder")
	return d
}

// walkByte feeds the bits of b, most significant first, to the trie starting
// at internal node from. Every code is at least one bit long in a
// non-degenerate trie, so at most eight bytes complete.
func (t *Table) walkByte(from int32, b byte) lookupEntry {
	e := lookupEntry{}
	cur := from
	for i := 7; i >= 0; i-- {
		n := t.nodes[cur]
		if b>>uint(i)&1 == 1 {
			cur = n.one
		} else {
			cur = n.zero
		}
		leaf := t.nodes[cur]
		if !leaf.isLeaf() {
			continue
		}
		if leaf.sym == t.sentinel {
			e.done = true
			break
		}
		e.out[e.n] = byte(leaf.sym)
		e.n++
		cur = t.root
	}
	e.next = cur
	return e
}

// Decode decompresses src, optionally reusing buf for output.
// buf can be nil or undersized; it will be grown as needed.
func (d *LookupDecoder) Decode(buf, src []byte) ([]byte, error) {
	out := buf[:0]
	t := d.table
	if t.Degenerate() {
		return out, nil
	}
	cur := t.root
	for _, b := range src {
		e := &d.entries[int(d.rows[cur])*256+int(b)]
		out = append(out, e.out[:e.n]...)
		if e.done {
			return out, nil
		}
		cur = e.next
	}
	return nil, truncatedAt(len(src) * 8)
}

// DecodeAll decompresses src and returns a newly allocated byte slice with the result.
func (d *LookupDecoder) DecodeAll(src []byte) ([]byte, error) {
	return d.Decode(nil, src)
}
