package game

// Direction indexes the four cell walls.
type Direction int

const (
	DirN Direction = iota
	DirE
	DirS
	DirW
)

var dirDX = [4]int{0, 1, 0, -1}
var dirDY = [4]int{-1, 0, 1, 0}
var dirOpposite = [4]Direction{DirS, DirW, DirN, DirE}

// CellPos is a cell coordinate (x = column, y = row).
type CellPos struct {
	X, Y int
}

// Cell holds the four wall flags of a maze cell. A wall is shared with the
// neighbouring cell: carving N of (x,y) also carves S of (x,y-1).
type Cell struct {
	Walls [4]bool
}

// Maze is a square grid of cells with a carved passage structure.
// The entrance is the opened north wall of (0,0), the goal cell is
// (Size-1,Size-1) with its south wall opened as the exit.
type Maze struct {
	Size  int
	Cells []Cell

	solution []CellPos
}

// GenerateMaze carves a random perfect maze of size x size cells using
// recursive backtracking (iterative, explicit stack) and caches the BFS
// solution path.
func GenerateMaze(size int, rng *Rand) *Maze {
	if size < 2 {
		size = 2
	}
	m := &Maze{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
	for i := range m.Cells {
		m.Cells[i].Walls = [4]bool{true, true, true, true}
	}

	visited := make([]bool, size*size)
	stack := make([]CellPos, 0, size*size)
	cur := CellPos{0, 0}
	visited[0] = true
	stack = append(stack, cur)

	var dirs [4]Direction
	for len(stack) > 0 {
		cur = stack[len(stack)-1]

		dirs = [4]Direction{DirN, DirE, DirS, DirW}
		rng.Shuffle(4, func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		carved := false
		for _, d := range dirs {
			nx, ny := cur.X+dirDX[d], cur.Y+dirDY[d]
			if nx < 0 || nx >= size || ny < 0 || ny >= size || visited[ny*size+nx] {
				continue
			}
			m.Cells[cur.Y*size+cur.X].Walls[d] = false
			m.Cells[ny*size+nx].Walls[dirOpposite[d]] = false
			visited[ny*size+nx] = true
			stack = append(stack, CellPos{nx, ny})
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	// Entrance and exit openings.
	m.Cells[0].Walls[DirN] = false
	m.Cells[size*size-1].Walls[DirS] = false

	m.solution = m.solveBFS(CellPos{0, 0}, CellPos{size - 1, size - 1})
	return m
}

func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size && y >= 0 && y < m.Size
}

func (m *Maze) At(x, y int) *Cell {
	return &m.Cells[y*m.Size+x]
}

// HasWall reports whether cell (x,y) has a wall on side d. Out-of-range
// cells count as walled.
func (m *Maze) HasWall(x, y int, d Direction) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Cells[y*m.Size+x].Walls[d]
}

// Solution returns the cached shortest path from entrance to goal.
func (m *Maze) Solution() []CellPos {
	return m.solution
}

// Start and Goal cells.
func (m *Maze) Start() CellPos { return CellPos{0, 0} }
func (m *Maze) Goal() CellPos  { return CellPos{m.Size - 1, m.Size - 1} }

// solveBFS finds the shortest cell path between two cells, or nil if
// disconnected.
func (m *Maze) solveBFS(from, to CellPos) []CellPos {
	n := m.Size * m.Size
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	start := from.Y*m.Size + from.X
	end := to.Y*m.Size + to.X
	parent[start] = start

	queue := make([]int, 0, n)
	queue = append(queue, start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			break
		}
		cx, cy := cur%m.Size, cur/m.Size
		for d := DirN; d <= DirW; d++ {
			if m.Cells[cur].Walls[d] {
				continue
			}
			nx, ny := cx+dirDX[d], cy+dirDY[d]
			if !m.InBounds(nx, ny) {
				continue
			}
			ni := ny*m.Size + nx
			if parent[ni] != -1 {
				continue
			}
			parent[ni] = cur
			queue = append(queue, ni)
		}
	}

	if parent[end] == -1 {
		return nil
	}
	var path []CellPos
	for cur := end; ; cur = parent[cur] {
		path = append(path, CellPos{cur % m.Size, cur / m.Size})
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DeadEnds returns all cells with exactly three walls.
func (m *Maze) DeadEnds() []CellPos {
	var ends []CellPos
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			walls := 0
			for d := DirN; d <= DirW; d++ {
				if m.Cells[y*m.Size+x].Walls[d] {
					walls++
				}
			}
			if walls == 3 {
				ends = append(ends, CellPos{x, y})
			}
		}
	}
	return ends
}
