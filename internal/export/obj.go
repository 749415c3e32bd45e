// Package export writes rope output to interchange formats: the ribbon
// mesh as Wavefront OBJ, the terminal canvas as SVG, and recorded runs
// as JSON.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/ropesim/internal/mesh"
)

// WriteOBJ emits the triangle list as a Wavefront OBJ with positions,
// normals, and texture coordinates. Faces reference the soup verbatim;
// no vertex welding is attempted.
func WriteOBJ(w io.Writer, m *mesh.Mesh, name string) error {
	if m == nil || len(m.Vertices) == 0 {
		return fmt.Errorf("export: empty mesh")
	}
	if _, err := fmt.Fprintf(w, "o %s\n", name); err != nil {
		return err
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.Position.X(), v.Position.Y(), v.Position.Z())
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "vt %.6f %.6f\n", v.U, v.V)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "vn %.6f %.6f %.6f\n", v.Normal.X(), v.Normal.Y(), v.Normal.Z())
	}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		// OBJ indices are 1-based.
		a, b, c := i+1, i+2, i+3
		if _, err := fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c); err != nil {
			return err
		}
	}
	return nil
}

// SaveOBJ writes the mesh to a file.
func SaveOBJ(path string, m *mesh.Mesh, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteOBJ(f, m, name)
}
