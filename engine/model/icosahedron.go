package model

import (
	"math"
	"slices"
)

var icosahedronVertices = func() [12][3]float64 {
	t := (1 + math.Sqrt(5)) / 2
	return [12][3]float64{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}()

var icosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// IcosahedronVertexCount returns the number of vertices IcosahedronVertices produces for a
// subdivision level: 20 faces of (detail+1)^2 triangles each.
func IcosahedronVertexCount(detail int) int {
	cols := max(detail, 0) + 1
	return 20 * cols * cols * 3
}

// IcosahedronVertices builds a non-indexed subdivided icosphere. Every face of the base
// icosahedron is split into (detail+1)^2 triangles whose vertices are projected onto a sphere of
// the given radius. Normals point away from the center. UVs are equirectangular with u = 0.5 on
// the -X meridian and v = 0 at the +Y pole, and triangles straddling the u seam are shifted so
// no triangle interpolates across the whole texture.
//
// Parameters:
//   - radius: sphere radius
//   - detail: subdivision level, negative values are treated as 0
//
// Returns:
//   - []GPUVertex: three vertices per triangle in counter-clockwise order
func IcosahedronVertices(radius float32, detail int) []GPUVertex {
	detail = max(detail, 0)
	positions := make([][3]float64, 0, IcosahedronVertexCount(detail))
	for _, f := range icosahedronFaces {
		positions = subdivideFace(positions,
			icosahedronVertices[f[0]], icosahedronVertices[f[1]], icosahedronVertices[f[2]], detail)
	}

	r := float64(radius)
	vertices := make([]GPUVertex, len(positions))
	uvs := make([][2]float64, len(positions))
	for i, p := range positions {
		n := normalize(p)
		vertices[i].Position = [3]float32{float32(n[0] * r), float32(n[1] * r), float32(n[2] * r)}
		vertices[i].Normal = [3]float32{float32(n[0]), float32(n[1]), float32(n[2])}
		uvs[i] = [2]float64{azimuth(n)/(2*math.Pi) + 0.5, inclination(n)/math.Pi + 0.5}
	}

	correctUVs(positions, uvs)
	correctSeam(uvs)

	for i := range vertices {
		vertices[i].UV = [2]float32{float32(uvs[i][0]), float32(uvs[i][1])}
	}
	return vertices
}

// NewIcosahedron creates a sphere Model with sequential indices over IcosahedronVertices.
//
// Parameters:
//   - name: the model name
//   - radius: sphere radius
//   - detail: subdivision level
//
// Returns:
//   - Model: the sphere model
func NewIcosahedron(name string, radius float32, detail int) Model {
	vertices := IcosahedronVertices(radius, detail)
	indices := make([]uint32, len(vertices))
	for i := range indices {
		indices[i] = uint32(i)
	}
	return NewModel(
		WithName(name),
		WithVertices(vertices),
		WithIndices(indices),
	)
}

func subdivideFace(out [][3]float64, a, b, c [3]float64, detail int) [][3]float64 {
	cols := detail + 1
	grid := make([][][3]float64, cols+1)
	for i := 0; i <= cols; i++ {
		aj := lerp(a, c, float64(i)/float64(cols))
		bj := lerp(b, c, float64(i)/float64(cols))
		rows := cols - i
		grid[i] = make([][3]float64, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = lerp(aj, bj, float64(j)/float64(rows))
			}
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				out = append(out, grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				out = append(out, grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
	return out
}

// correctUVs fixes vertices on the seam and at the poles using the azimuth of their triangle.
func correctUVs(positions [][3]float64, uvs [][2]float64) {
	for i := 0; i+2 < len(positions); i += 3 {
		var centroid [3]float64
		for _, p := range positions[i : i+3] {
			centroid[0] += p[0] / 3
			centroid[1] += p[1] / 3
			centroid[2] += p[2] / 3
		}
		azi := azimuth(centroid)
		for k := i; k < i+3; k++ {
			if azi < 0 && uvs[k][0] == 1 {
				uvs[k][0] -= 1
			}
			if positions[k][0] == 0 && positions[k][2] == 0 {
				uvs[k][0] = azi/(2*math.Pi) + 0.5
			}
		}
	}
}

// correctSeam shifts the low side of triangles that wrap around u = 0/1.
func correctSeam(uvs [][2]float64) {
	for i := 0; i+2 < len(uvs); i += 3 {
		us := []float64{uvs[i][0], uvs[i+1][0], uvs[i+2][0]}
		if slices.Max(us) > 0.9 && slices.Min(us) < 0.1 {
			for k := i; k < i+3; k++ {
				if uvs[k][0] < 0.2 {
					uvs[k][0] += 1
				}
			}
		}
	}
}

func azimuth(v [3]float64) float64 {
	return math.Atan2(v[2], -v[0])
}

func inclination(v [3]float64) float64 {
	return math.Atan2(-v[1], math.Hypot(v[0], v[2]))
}

func lerp(a, b [3]float64, t float64) [3]float64 {
	return [3]float64{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

func normalize(v [3]float64) [3]float64 {
	l := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return [3]float64{v[0] / l, v[1] / l, v[2] / l}
}
