package core

import "strings"

// pipeGlyphs maps a connection mask to a box-drawing rune.
var pipeGlyphs = [16]rune{
	0:                        ' ',
	Up:                       '╵',
	Right:                    '╶',
	Down:                     '╷',
	Left:                     '╴',
	Up | Down:                '│',
	Left | Right:             '─',
	Up | Right:               '└',
	Right | Down:             '┌',
	Down | Left:              '┐',
	Left | Up:                '┘',
	Up | Right | Down:        '├',
	Right | Down | Left:      '┬',
	Down | Left | Up:         '┤',
	Left | Up | Right:        '┴',
	Up | Right | Down | Left: '┼',
}

// Glyph returns the box-drawing rune for a mask.
func Glyph(m Mask) rune {
	return pipeGlyphs[m&All]
}

// RenderASCII draws the board three columns per tile. The server is marked
// with S, powered terminals with * and unpowered terminals with o.
// Call IsSolved first for up-to-date power markers.
func RenderASCII(b *Board) string {
	var sb strings.Builder
	sb.Grow((b.size.Width*3 + 1) * b.size.Height)

	for y := 0; y < b.size.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.size.Width; x++ {
			t := b.tiles[b.index(Pos{X: x, Y: y})]
			left, right := ' ', ' '
			if t.Connections&Left != 0 {
				left = '─'
			}
			if t.Connections&Right != 0 {
				right = '─'
			}

			center := Glyph(t.Connections)
			switch t.Kind {
			case KindServer:
				center = 'S'
			case KindTerminal:
				if t.Powered {
					center = '*'
				} else {
					center = 'o'
				}
			}

			sb.WriteRune(left)
			sb.WriteRune(center)
			sb.WriteRune(right)
		}
	}
	return sb.String()
}
