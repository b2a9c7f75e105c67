package game

import "math"

// wallSegment returns the endpoints of wall d of cell (cx,cy) on the XZ
// plane. Cell (cx,cy) spans [cx,cx+1] x [cy,cy+1].
func wallSegment(cx, cy int, d Direction) (x1, z1, x2, z2 float64) {
	fx, fz := float64(cx), float64(cy)
	switch d {
	case DirN:
		return fx, fz, fx + 1, fz
	case DirE:
		return fx + 1, fz, fx + 1, fz + 1
	case DirS:
		return fx, fz + 1, fx + 1, fz + 1
	default: // DirW
		return fx, fz, fx, fz + 1
	}
}

// collides reports whether a circle of the given radius at (x,z) overlaps
// any maze wall. Walls are tested as segments in the 3x3 cell neighbourhood
// so corners and neighbouring cells' walls are caught. Positions outside
// the grid always collide; the entrance and exit openings do not let the
// player leave the board.
func collides(x, z float64, m *Maze, radius float64) bool {
	if x < 0 || x >= float64(m.Size) || z < 0 || z >= float64(m.Size) {
		return true
	}

	cx := int(math.Floor(x))
	cy := int(math.Floor(z))

	for ny := cy - 1; ny <= cy+1; ny++ {
		for nx := cx - 1; nx <= cx+1; nx++ {
			if !m.InBounds(nx, ny) {
				continue
			}
			cell := m.At(nx, ny)
			for d := DirN; d <= DirW; d++ {
				if !cell.Walls[d] {
					continue
				}
				x1, z1, x2, z2 := wallSegment(nx, ny, d)
				if distPointSeg(x, z, x1, z1, x2, z2) < radius {
					return true
				}
			}
		}
	}
	return false
}
