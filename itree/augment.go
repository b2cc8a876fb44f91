package itree

// buildMaxEnds computes the interval tree augmentation over each slice. For
// an index node the value covers its entire slice: the greater of its own
// end position and the maxEnd of the adjacent tree's root.
func (x *Index[K]) buildMaxEnds() {
	for k := 0; k < len(x.indexNodes)-1; k++ {
		i := x.indexNodes[k]
		sz := x.indexNodes[k+1] - i
		if sz == 1 {
			x.maxEnds[i] = x.ends[i]
			continue
		}
		root := RootNode(sz - 1)
		x.augment(i+1, root, NodeLevel(root))
		x.maxEnds[i] = max(x.ends[i], x.maxEnds[i+1+root])
	}
}

// augment fills in maxEnds for the subtree rooted at in-order position node,
// children first; a node's value depends on both children being final.
func (x *Index[K]) augment(ofs, node, lvl int) {
	m := x.ends[ofs+node]
	if lvl > 0 {
		ch := LeftChild(node, lvl)
		x.augment(ofs, ch, lvl-1)
		m = max(m, x.maxEnds[ofs+ch])
		ch = RightChild(node, lvl)
		x.augment(ofs, ch, lvl-1)
		m = max(m, x.maxEnds[ofs+ch])
	}
	x.maxEnds[ofs+node] = m
}
