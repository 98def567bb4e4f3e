package core

// Kind is the role of a tile in the network.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindServer
	KindTerminal
	KindConnector
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindTerminal:
		return "terminal"
	case KindConnector:
		return "connector"
	default:
		return "undefined"
	}
}

// Tile is the state of one grid cell.
type Tile struct {
	Kind        Kind
	Connections Mask // current pipe orientation
	Frontier    Mask // directions toward unvisited in-bounds cells during generation
	Powered     bool
}

// Rotate applies n quarter turns to the tile's pipes.
func (t *Tile) Rotate(rot Rotation, n int) {
	t.Connections = t.Connections.Rotate(rot, n)
}

// ConnectionCount returns how many pipe stubs the tile has (0-4).
func (t Tile) ConnectionCount() int {
	return t.Connections.Count()
}

// FreeDirections returns how many frontier directions remain.
func (t Tile) FreeDirections() int {
	return t.Frontier.Count()
}
