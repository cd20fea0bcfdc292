package huffman

import (
	"container/heap"
	"fmt"
	"unsafe"
)

// Train builds a Table from the symbol distribution of corpus. It counts
// symbol frequencies, merges the two lightest nodes until one trie remains
// and derives a code for every leaf.
//
// The returned Table is immutable and safe for concurrent use.
func Train(corpus []byte, opts ...Option) *Table {
	var (
		cfg = newConfig(opts)
		h   = &histogram{}
	)
	h.add(corpus)
	h.finish(cfg.sentinel)

	t := &Table{sentinel: cfg.sentinel, logger: cfg.logger}
	t.nodes, t.root = buildTrie(h, cfg.sentinel)
	t.maxLen = assignCodes(t)

	cfg.logger.Debug().
		Uint64("corpus_bytes", h.total).
		Int("symbols", h.distinct()).
		Uint64("root_weight", t.RootWeight()).
		Uint8("max_code_len", t.maxLen).
		Bool("degenerate", t.Degenerate()).
		Msg("trained huffman table")
	return t
}

// TrainString converts corpus to bytes without copying and calls Train.
func TrainString(corpus string, opts ...Option) *Table {
	return Train(unsafe.Slice(unsafe.StringData(corpus), len(corpus)), opts...)
}

// trieQueue is a min-heap of arena indices.
//
// Order: ascending weight, then ascending symbol (internal nodes carry the
// sentinel), then ascending arena index. The last key makes the order
// total, so equal histograms always merge in the same sequence.
type trieQueue struct {
	nodes []node
	queue []int32
}

// Len implements heap.Interface and returns the number of queued nodes.
func (q *trieQueue) Len() int { return len(q.queue) }

// Less implements heap.Interface.
func (q *trieQueue) Less(i, j int) bool {
	a, b := q.nodes[q.queue[i]], q.nodes[q.queue[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.sym != b.sym {
		return a.sym < b.sym
	}
	return q.queue[i] < q.queue[j]
}

// Swap implements heap.Interface swap.
func (q *trieQueue) Swap(i, j int) { q.queue[i], q.queue[j] = q.queue[j], q.queue[i] }

// Push implements heap.Interface push.
func (q *trieQueue) Push(x any) { q.queue = append(q.queue, x.(int32)) }

// Pop implements heap.Interface pop.
func (q *trieQueue) Pop() any {
	old := q.queue
	n := len(old)
	x := old[n-1]
	q.queue = old[:n-1]
	return x
}

// buildTrie seeds one leaf per histogram entry and merges the two minimum
// nodes under a new internal node until a single root remains. The first
// node popped becomes the zero-child. A one-entry histogram yields a leaf
// root.
func buildTrie(h *histogram, sentinel Symbol) ([]node, int32) {
	leaves := h.distinct()
	q := &trieQueue{
		nodes: make([]node, 0, 2*leaves-1),
		queue: make([]int32, 0, leaves),
	}
	for s := uint32(0); s < numSymbols; s++ {
		count := h.next(&s)
		if count == 0 {
			break
		}
		q.queue = append(q.queue, int32(len(q.nodes)))
		q.nodes = append(q.nodes, newLeaf(Symbol(s), count))
	}
	heap.Init(q)

	for q.Len() > 1 {
		zero := heap.Pop(q).(int32)
		one := heap.Pop(q).(int32)
		q.nodes = append(q.nodes, node{
			sym:    sentinel,
			weight: q.nodes[zero].weight + q.nodes[one].weight,
			zero:   zero,
			one:    one,
		})
		heap.Push(q, int32(len(q.nodes)-1))
	}
	return q.nodes, heap.Pop(q).(int32)
}

// assignCodes walks the trie depth-first with an explicit stack and records
// the path of every leaf in t.codes. It returns the longest code length.
// A leaf root receives the empty code.
func assignCodes(t *Table) uint8 {
	type frame struct {
		idx  int32
		code Code
	}
	var (
		maxLen uint8
		stack  = make([]frame, 0, 64)
	)
	stack = append(stack, frame{idx: t.root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.idx]
		if n.isLeaf() {
			t.codes[n.sym] = f.code
			t.known[n.sym] = true
			maxLen = max(maxLen, f.code.Len)
			continue
		}
		if f.code.Len == maxCodeLen {
			panic(fmt.Sprintf("huffman: code length exceeds %d bits", maxCodeLen))
		}
		stack = append(stack,
			frame{idx: n.one, code: f.code.append(1)},
			frame{idx: n.zero, code: f.code.append(0)},
		)
	}
	return maxLen
}
