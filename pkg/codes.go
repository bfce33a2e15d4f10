package pkg

// CodeTable maps each real symbol to its root-to-leaf path.
type CodeTable map[Symbol]Bits

// GenerateCodes walks the tree depth first, left (0) before right (1). The
// walk uses an explicit stack so deep trees cannot exhaust the call stack.
func GenerateCodes(root Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}

	type frame struct {
		node   Node
		prefix Bits
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := f.node.(type) {
		case *Leaf:
			if n.Sentinel {
				continue
			}
			code := f.prefix
			if len(code) == 0 {
				// root is the only leaf
				code = Bits{false}
			}
			codes[n.Symbol] = code
		case *Internal:
			// right is pushed first so left is visited first
			stack = append(stack,
				frame{node: n.Right, prefix: extend(f.prefix, true)},
				frame{node: n.Left, prefix: extend(f.prefix, false)},
			)
		}
	}

	return codes
}

func extend(prefix Bits, bit bool) Bits {
	out := make(Bits, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = bit
	return out
}
