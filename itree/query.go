package itree

// Walk calls visit once with the sorted position of every stored interval
// overlapping the query interval [qBeg, qEnd), that is every position i with
// begs[i] < qEnd and ends[i] > qBeg. visit returns true to continue or false
// to stop the walk immediately.
//
// Hits are delivered slice by slice in ascending offset order. Within a
// slice the index node, when it overlaps, is delivered before any of the
// slice's tree nodes; tree hits then follow in ascending sorted position.
// Walk allocates nothing; resolve IDs with ID(i) and positions with Item(i)
// as needed, or use the Query wrappers.
func (x *Index[K]) Walk(qBeg, qEnd K, visit func(i int) bool) {
	if qEnd <= qBeg {
		// half open: nothing can overlap an empty or inverted query
		return
	}
	for k := 0; k < len(x.indexNodes)-1; k++ {
		i := x.indexNodes[k]
		if x.begs[i] >= qEnd {
			// index nodes occupy sorted positions, so the whole remainder of
			// the array is irrelevant
			break
		}
		if x.maxEnds[i] <= qBeg {
			continue
		}
		if x.ends[i] > qBeg && !visit(i) {
			return
		}
		// search the adjacent tree, the slice from i+1 until the next index
		// node; the root offset is calculable from the slice length alone
		sz := x.indexNodes[k+1] - i
		if sz > 1 {
			root := RootNode(sz - 1)
			if !x.search(qBeg, qEnd, i+1, root, NodeLevel(root), visit) {
				return
			}
		}
	}
}

func (x *Index[K]) search(qBeg, qEnd K, ofs, node, lvl int, visit func(i int) bool) bool {
	i := ofs + node
	if x.maxEnds[i] <= qBeg {
		return true
	}
	if lvl > 0 {
		if !x.search(qBeg, qEnd, ofs, LeftChild(node, lvl), lvl-1, visit) {
			return false
		}
	}
	if x.begs[i] < qEnd {
		if x.ends[i] > qBeg && !visit(i) {
			return false
		}
		if lvl > 0 {
			if !x.search(qBeg, qEnd, ofs, RightChild(node, lvl), lvl-1, visit) {
				return false
			}
		}
	}
	// begs[i] >= qEnd rules out the node and, by the sorted order, its right
	// subtree with it
	return true
}
