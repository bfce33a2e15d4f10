package pkg

// Symbol is one unit of input.
type Symbol = byte

type FreqEntry struct {
	Symbol Symbol
	Count  int64
}

// FrequencyTable maps symbols to occurrence counts and remembers the order
// in which symbols were first added. The tree builder consumes entries in
// that order, so a table read back from disk must keep the order it was
// written in.
type FrequencyTable struct {
	entries []FreqEntry
	index   map[Symbol]int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[Symbol]int)}
}

// CountFrequencies counts every byte of data. Symbols are ordered by first
// occurrence.
func CountFrequencies(data []byte) *FrequencyTable {
	t := NewFrequencyTable()
	for _, b := range data {
		t.Add(b, 1)
	}
	return t
}

// Add increments the count for sym, appending it on first sight.
func (t *FrequencyTable) Add(sym Symbol, n int64) {
	if i, ok := t.index[sym]; ok {
		t.entries[i].Count += n
		return
	}
	t.index[sym] = len(t.entries)
	t.entries = append(t.entries, FreqEntry{Symbol: sym, Count: n})
}

// Set overwrites the count for sym, appending it on first sight.
func (t *FrequencyTable) Set(sym Symbol, n int64) {
	if i, ok := t.index[sym]; ok {
		t.entries[i].Count = n
		return
	}
	t.index[sym] = len(t.entries)
	t.entries = append(t.entries, FreqEntry{Symbol: sym, Count: n})
}

func (t *FrequencyTable) Has(sym Symbol) bool {
	_, ok := t.index[sym]
	return ok
}

func (t *FrequencyTable) Count(sym Symbol) int64 {
	if i, ok := t.index[sym]; ok {
		return t.entries[i].Count
	}
	return 0
}

func (t *FrequencyTable) Len() int { return len(t.entries) }

// Entries returns a copy of the table in insertion order.
func (t *FrequencyTable) Entries() []FreqEntry {
	out := make([]FreqEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Total is the sum of all counts, which equals the length of the input the
// table was counted from.
func (t *FrequencyTable) Total() int64 {
	var n int64
	for _, e := range t.entries {
		n += e.Count
	}
	return n
}
