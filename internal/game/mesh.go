package game

// MazeMesh holds interleaved vertex data (x,y,z, u,v, r,g,b) for the three
// textured passes of the maze. Built CPU-side so it is testable without a
// GL context; the renderer uploads it into static VBOs.
type MazeMesh struct {
	Floor   []float32
	Walls   []float32
	Ceiling []float32
}

const meshStride = 8 // floats per vertex

// Fake face shading: walls running east-west read slightly darker than the
// ones running north-south, tops slightly brighter, which keeps corners
// legible without real normals.
const (
	shadeSideNS = 1.0
	shadeSideEW = 0.82
	shadeTop    = 1.08
)

type meshColor struct{ r, g, b float32 }

func (c meshColor) scaled(k float32) meshColor {
	s := func(v float32) float32 {
		v *= k
		if v > 1 {
			v = 1
		}
		return v
	}
	return meshColor{s(c.r), s(c.g), s(c.b)}
}

// appendQuad appends two triangles for the quad a-b-c-d (counter-clockwise)
// with per-corner UVs.
func appendQuad(buf []float32, pos [4][3]float32, uv [4][2]float32, col meshColor) []float32 {
	order := [6]int{0, 1, 2, 0, 2, 3}
	for _, i := range order {
		buf = append(buf,
			pos[i][0], pos[i][1], pos[i][2],
			uv[i][0], uv[i][1],
			col.r, col.g, col.b,
		)
	}
	return buf
}

// appendWallBox appends the four sides and the top of a wall box spanning
// [x0,x1] x [z0,z1] on the ground plane, WallHeight tall.
func appendWallBox(buf []float32, x0, z0, x1, z1 float32, col meshColor) []float32 {
	h := float32(WallHeight)
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	ns := col.scaled(shadeSideNS)
	ew := col.scaled(shadeSideEW)
	top := col.scaled(shadeTop)

	// North face (z = z0).
	buf = appendQuad(buf, [4][3]float32{
		{x0, 0, z0}, {x1, 0, z0}, {x1, h, z0}, {x0, h, z0},
	}, uvs, ns)
	// South face (z = z1).
	buf = appendQuad(buf, [4][3]float32{
		{x1, 0, z1}, {x0, 0, z1}, {x0, h, z1}, {x1, h, z1},
	}, uvs, ns)
	// West face (x = x0).
	buf = appendQuad(buf, [4][3]float32{
		{x0, 0, z1}, {x0, 0, z0}, {x0, h, z0}, {x0, h, z1},
	}, uvs, ew)
	// East face (x = x1).
	buf = appendQuad(buf, [4][3]float32{
		{x1, 0, z0}, {x1, 0, z1}, {x1, h, z1}, {x1, h, z0},
	}, uvs, ew)
	// Top.
	buf = appendQuad(buf, [4][3]float32{
		{x0, h, z0}, {x1, h, z0}, {x1, h, z1}, {x0, h, z1},
	}, uvs, top)
	return buf
}

// BuildMazeMesh builds the static geometry for a maze: a floor plane, one
// box per wall flag (shared walls are drawn from both cells, as each side
// carries its own cell tint), and an optional ceiling plane.
func BuildMazeMesh(m *Maze, rng *Rand, ceiling bool) MazeMesh {
	var mesh MazeMesh
	size := float32(m.Size)
	t := float32(WallThickness) / 2

	mesh.Floor = appendQuad(nil, [4][3]float32{
		{0, 0, 0}, {size, 0, 0}, {size, 0, size}, {0, 0, size},
	}, [4][2]float32{
		{0, 0}, {size, 0}, {size, size}, {0, size},
	}, meshColor{0.8, 0.8, 0.8})

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			cell := m.At(x, y)
			// Per-cell brightness jitter keeps long hedge runs from
			// reading as one flat surface.
			b := float32(0.85 + rng.Float64()*0.15)
			col := meshColor{b * 0.7, b, b * 0.6}

			fx, fz := float32(x), float32(y)
			if cell.Walls[DirN] {
				mesh.Walls = appendWallBox(mesh.Walls, fx, fz-t, fx+1, fz+t, col)
			}
			if cell.Walls[DirE] {
				mesh.Walls = appendWallBox(mesh.Walls, fx+1-t, fz, fx+1+t, fz+1, col)
			}
			if cell.Walls[DirS] {
				mesh.Walls = appendWallBox(mesh.Walls, fx, fz+1-t, fx+1, fz+1+t, col)
			}
			if cell.Walls[DirW] {
				mesh.Walls = appendWallBox(mesh.Walls, fx-t, fz, fx+t, fz+1, col)
			}
		}
	}

	if ceiling {
		h := float32(WallHeight)
		mesh.Ceiling = appendQuad(nil, [4][3]float32{
			{0, h, 0}, {0, h, size}, {size, h, size}, {size, h, 0},
		}, [4][2]float32{
			{0, 0}, {0, size}, {size, size}, {size, 0},
		}, meshColor{0.55, 0.55, 0.55})
	}

	return mesh
}
