// core/scan/ac.go
package scan

// ------------------------ Aho–Corasick (AC) -------------------------------
//
// A goto/fail automaton over A/C/G/T. Patterns must be canonical; any other
// subject byte resets the walk to the root, since no pattern can span it.

type acNode struct {
	next [4]int32 // -1 means no edge until completion; indices into nodes
	fail int32
	out  []int32 // seed indices ending here (fail-chain outputs folded in)
}

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func newACNode() acNode {
	var n acNode
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func buildAC(pats [][]byte) []acNode {
	nodes := []acNode{newACNode()}

	// goto function
	for pi, p := range pats {
		state := int32(0)
		for _, b := range p {
			ix := baseIdx(b)
			if ix < 0 {
				panic("scan: non-canonical byte in seed pattern")
			}
			if nodes[state].next[ix] == -1 {
				nodes[state].next[ix] = int32(len(nodes))
				nodes = append(nodes, newACNode())
			}
			state = nodes[state].next[ix]
		}
		nodes[state].out = append(nodes[state].out, int32(pi))
	}

	// failure links (BFS), completing the goto table as we go
	queue := make([]int32, 0, len(nodes))
	for ch := 0; ch < 4; ch++ {
		nx := nodes[0].next[ch]
		if nx != -1 {
			nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := 0; ch < 4; ch++ {
			s := nodes[r].next[ch]
			if s != -1 {
				queue = append(queue, s)
				f := nodes[r].fail
				nodes[s].fail = nodes[f].next[ch]
				nodes[s].out = append(nodes[s].out, nodes[nodes[s].fail].out...)
			} else {
				nodes[r].next[ch] = nodes[nodes[r].fail].next[ch]
			}
		}
	}
	return nodes
}

// walkAC calls emit(patternIndex, endPos) for every pattern occurrence in s;
// endPos is the index of the last matched byte.
func walkAC(s []byte, nodes []acNode, emit func(pi int32, end int)) {
	state := int32(0)
	for i := 0; i < len(s); i++ {
		ix := baseIdx(s[i])
		if ix < 0 {
			state = 0
			continue
		}
		state = nodes[state].next[ix]
		for _, pi := range nodes[state].out {
			emit(pi, i)
		}
	}
}
