package geom

// Vertex is a single mesh vertex. Shadow meshes use Z for elevation and
// Alpha for penumbra falloff; flat shape meshes carry Z=0 and Alpha=1.
type Vertex struct {
	X, Y, Z float32
	Alpha   float32
}

// vertexSize is the in-memory size of a Vertex in bytes.
const vertexSize = 16

// Mesh is a tessellated triangle strip. Meshes are produced once by a
// tessellation task and treated as immutable afterwards.
type Mesh struct {
	vertices []Vertex
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Append adds a vertex to the strip.
func (m *Mesh) Append(v Vertex) {
	m.vertices = append(m.vertices, v)
}

// AppendXYZA adds a vertex from float64 components.
func (m *Mesh) AppendXYZA(x, y, z, alpha float64) {
	m.vertices = append(m.vertices, Vertex{
		X:     float32(x),
		Y:     float32(y),
		Z:     float32(z),
		Alpha: float32(alpha),
	})
}

// Vertices returns the strip vertices. The returned slice must be
// treated as read-only.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// VertexCount returns the number of vertices in the strip.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// Empty returns true if the mesh has no vertices.
func (m *Mesh) Empty() bool {
	return len(m.vertices) == 0
}

// Size returns the in-memory size of the vertex data in bytes. Cache
// budgets are accounted against this value.
func (m *Mesh) Size() int {
	return len(m.vertices) * vertexSize
}

// MeshPair holds the two meshes of a tessellated shadow.
type MeshPair struct {
	Ambient *Mesh
	Spot    *Mesh
}
