package geometry

// Triangle returns a single triangle with red, green and blue corners.
func Triangle() Mesh {
	return Mesh{
		Positions: []float32{
			0, 1, 0,
			-1, -1, 0,
			1, -1, 0,
		},
		Colors: []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
	}
}

var cubePositions = []float32{
	// Front face
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	-1, -1, 1,
	1, 1, 1,
	-1, 1, 1,
	// Back face
	-1, -1, -1,
	-1, 1, -1,
	1, 1, -1,
	-1, -1, -1,
	1, 1, -1,
	1, -1, -1,
	// Top face
	-1, 1, -1,
	-1, 1, 1,
	1, 1, 1,
	-1, 1, -1,
	1, 1, 1,
	1, 1, -1,
	// Bottom face
	-1, -1, -1,
	1, -1, -1,
	1, -1, 1,
	-1, -1, -1,
	1, -1, 1,
	-1, -1, 1,
	// Right face
	1, -1, -1,
	1, 1, -1,
	1, 1, 1,
	1, -1, -1,
	1, 1, 1,
	1, -1, 1,
	// Left face
	-1, -1, -1,
	-1, -1, 1,
	-1, 1, 1,
	-1, -1, -1,
	-1, 1, 1,
	-1, 1, -1,
}

// Face normals in the order of cubePositions.
var faceNormals = [6][3]float32{
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
}

var faceColors = [6][3]float32{
	{1, 0.2, 0.2},
	{0.2, 1, 0.2},
	{0.2, 0.2, 1},
	{1, 1, 0.2},
	{1, 0.2, 1},
	{0.2, 1, 1},
}

func perFace(values [6][3]float32) []float32 {
	out := make([]float32, 0, 6*6*3)
	for _, v := range values {
		out = append(out, Repeat(6, v[:]...)...)
	}
	return out
}

func copyPositions() []float32 {
	return append([]float32(nil), cubePositions...)
}

// ColorCube returns a cube with a flat color and normal per face.
func ColorCube() Mesh {
	return Mesh{
		Positions: copyPositions(),
		Colors:    perFace(faceColors),
		Normals:   perFace(faceNormals),
	}
}

// TexturedCube returns a cube with the full texture mapped onto every face.
func TexturedCube() Mesh {
	return Mesh{
		Positions: copyPositions(),
		UVs: Repeat(6,
			0, 0,
			1, 0,
			1, 1,

			0, 0,
			1, 1,
			0, 1,
		),
		Normals: perFace(faceNormals),
	}
}
