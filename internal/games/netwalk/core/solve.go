package core

// IsSolved recomputes which tiles receive power and reports whether every
// terminal is powered. Power crosses an edge only when both tiles have a
// stub facing each other.
func (b *Board) IsSolved() bool {
	b.propagate()

	for _, t := range b.tiles {
		if t.Kind == KindTerminal && !t.Powered {
			return false
		}
	}
	return true
}

// PoweredCount returns how many tiles the last IsSolved call powered.
func (b *Board) PoweredCount() int {
	return b.powered
}

// propagate floods power from the root with an explicit stack.
func (b *Board) propagate() {
	for i := range b.tiles {
		b.tiles[i].Powered = false
	}
	b.powered = 0

	b.stack = append(b.stack[:0], b.root)
	b.tiles[b.index(b.root)].Powered = true
	b.powered++

	for len(b.stack) > 0 {
		pos := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		conns := b.tiles[b.index(pos)].Connections

		for _, d := range Directions {
			if conns&d.Flag == 0 {
				continue
			}
			np := pos.Add(d.Offset)
			if !b.InBounds(np) {
				continue
			}
			nt := &b.tiles[b.index(np)]
			if nt.Connections&d.Opposite == 0 || nt.Powered {
				continue
			}
			nt.Powered = true
			b.powered++
			b.stack = append(b.stack, np)
		}
	}
}
