package game

import "math"

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// distPointSeg returns the distance from point (px,pz) to segment (x1,z1)-(x2,z2).
func distPointSeg(px, pz, x1, z1, x2, z2 float64) float64 {
	dx := x2 - x1
	dz := z2 - z1
	lenSq := dx*dx + dz*dz
	if lenSq == 0 {
		return math.Hypot(px-x1, pz-z1)
	}
	t := clampF(((px-x1)*dx+(pz-z1)*dz)/lenSq, 0, 1)
	return math.Hypot(px-(x1+t*dx), pz-(z1+t*dz))
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Shuffle permutes s in place (Fisher-Yates).
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// ---- 4x4 matrices (column-major, as OpenGL expects) ----------------------

type Mat4 [16]float32

func mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// mat4Mul returns a*b; applying the result to v equals a*(b*v).
func mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

func mat4Perspective(fovyDeg, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(radians(fovyDeg)/2)
	nf := near - far
	var m Mat4
	m[0] = float32(f / aspect)
	m[5] = float32(f)
	m[10] = float32((far + near) / nf)
	m[11] = -1
	m[14] = float32(2 * far * near / nf)
	return m
}

func mat4RotX(rad float64) Mat4 {
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))
	m := mat4Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

func mat4RotY(rad float64) Mat4 {
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))
	m := mat4Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

func mat4Translate(x, y, z float64) Mat4 {
	m := mat4Identity()
	m[12] = float32(x)
	m[13] = float32(y)
	m[14] = float32(z)
	return m
}
