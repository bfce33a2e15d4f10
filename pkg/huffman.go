package pkg

import (
	"container/heap"
)

// Huffman code tree built from a frequency table.

// Node is either a *Leaf or an *Internal.
type Node interface {
	Freq() int64
	node()
}

// Leaf holds one symbol. The sentinel leaf pads a single-symbol alphabet and
// carries no symbol of its own.
type Leaf struct {
	Symbol    Symbol
	Frequency int64
	Sentinel  bool
}

// Internal always owns exactly two children.
type Internal struct {
	Frequency   int64
	Left, Right Node
}

func (l *Leaf) Freq() int64     { return l.Frequency }
func (n *Internal) Freq() int64 { return n.Frequency }

func (*Leaf) node()     {}
func (*Internal) node() {}

const sentinelFreq = 1

type heapItem struct {
	node Node
	seq  int
}

// huffmanHeap orders by frequency, then by insertion sequence, so equal
// frequencies pop in the order they were pushed.
type huffmanHeap []heapItem

func (h huffmanHeap) Len() int { return len(h) }
func (h huffmanHeap) Less(i, j int) bool {
	fi, fj := h[i].node.Freq(), h[j].node.Freq()
	if fi != fj {
		return fi < fj
	}
	return h[i].seq < h[j].seq
}
func (h huffmanHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *huffmanHeap) Push(x interface{}) {
	*h = append(*h, x.(heapItem))
}
func (h *huffmanHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// BuildTree merges the two lowest-frequency nodes until one remains. Leaves
// are seeded in table order and every pushed node gets the next sequence
// number, so the same table always produces the same tree.
func BuildTree(t *FrequencyTable) (Node, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTable
	}

	h := &huffmanHeap{}
	seq := 0
	push := func(n Node) {
		heap.Push(h, heapItem{node: n, seq: seq})
		seq++
	}

	for _, e := range t.entries {
		push(&Leaf{Symbol: e.Symbol, Frequency: e.Count})
	}

	// A lone symbol would otherwise sit at the root with an empty code.
	if h.Len() == 1 {
		push(&Leaf{Frequency: sentinelFreq, Sentinel: true})
	}

	for h.Len() > 1 {
		left := heap.Pop(h).(heapItem).node
		right := heap.Pop(h).(heapItem).node
		push(&Internal{
			Frequency: left.Freq() + right.Freq(),
			Left:      left,
			Right:     right,
		})
	}

	return heap.Pop(h).(heapItem).node, nil
}
