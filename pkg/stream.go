package pkg

import (
	"fmt"
	"strings"
)

// Bits is a sequence of code decisions, false = 0 = left, true = 1 = right.
type Bits []bool

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits reads a string of '0' and '1' characters. Line breaks are
// skipped; anything else is rejected.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		case '\n', '\r':
		default:
			return nil, fmt.Errorf("%w: invalid bit character %q at offset %d", ErrCorruptStream, s[i], i)
		}
	}
	return bits, nil
}

// Encode concatenates the code of every symbol of data. Every symbol must
// have a code; a missing one means the table was built from other input.
func Encode(data []byte, codes CodeTable) Bits {
	n := 0
	for _, b := range data {
		n += len(codes[b])
	}

	out := make(Bits, 0, n)
	for _, b := range data {
		code, ok := codes[b]
		if !ok {
			panic(fmt.Sprintf("hufftext: no code for symbol %d", b))
		}
		out = append(out, code...)
	}
	return out
}

// Decode walks the tree from the root for each code, emitting a symbol at
// every leaf. The stream must end exactly on a leaf.
func Decode(bits Bits, root Node) ([]byte, error) {
	if root == nil {
		return nil, ErrEmptyTable
	}

	// Only reachable with a hand-built tree; BuildTree always pads.
	if leaf, ok := root.(*Leaf); ok {
		if leaf.Sentinel {
			return nil, fmt.Errorf("%w: tree holds only the sentinel", ErrCorruptStream)
		}
		out := make([]byte, len(bits))
		for i := range out {
			out[i] = leaf.Symbol
		}
		return out, nil
	}

	out := make([]byte, 0, len(bits)/2)
	cur := root
	for i, bit := range bits {
		n := cur.(*Internal)
		if bit {
			cur = n.Right
		} else {
			cur = n.Left
		}

		leaf, ok := cur.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Sentinel {
			return nil, fmt.Errorf("%w: padding code at bit %d", ErrCorruptStream, i)
		}
		out = append(out, leaf.Symbol)
		cur = root
	}

	if cur != root {
		return nil, fmt.Errorf("%w: stream ends inside a code after %d symbols", ErrTruncatedStream, len(out))
	}
	return out, nil
}
