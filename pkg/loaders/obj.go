// Package loaders reads external mesh formats into shape trees. Only the
// Wavefront OBJ subset the tracer can render is parsed: vertices, vertex
// normals, faces and named groups. Everything else is counted and skipped.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/glintrt/glint/pkg/core"
	"github.com/glintrt/glint/pkg/shapes"
)

// OBJData holds the result of parsing an OBJ stream. Vertices and normals
// are 1-indexed as in the file format; index 0 is a padding entry.
type OBJData struct {
	Vertices     []core.Tuple // points, 1-indexed
	Normals      []core.Tuple // vectors, 1-indexed
	DefaultGroup *shapes.Group
	NamedGroups  map[string]*shapes.Group
	IgnoredLines int
}

// LoadOBJ parses an OBJ file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %v", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, err
	}

	triangles := 0
	for _, g := range data.groups() {
		triangles += len(g.Children())
	}
	fmt.Printf("Loaded OBJ: %d vertices, %d triangles, %d ignored lines in %v\n",
		len(data.Vertices)-1, triangles, data.IgnoredLines, time.Since(startTime))

	return data, nil
}

// ParseOBJ reads OBJ statements from r. Unrecognized or malformed lines
// are never fatal; they increment IgnoredLines and parsing continues.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{
		// pad index 0 so face indices can be used directly
		Vertices:     []core.Tuple{core.NewPoint(0, 0, 0)},
		Normals:      []core.Tuple{core.NewVector(0, 0, 0)},
		DefaultGroup: shapes.NewGroup(),
		NamedGroups:  make(map[string]*shapes.Group),
	}

	current := data.DefaultGroup
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, ok := parseTriple(fields[1:], core.NewPoint)
			if !ok {
				data.IgnoredLines++
				continue
			}
			data.Vertices = append(data.Vertices, p)
		case "vn":
			n, ok := parseTriple(fields[1:], core.NewVector)
			if !ok {
				data.IgnoredLines++
				continue
			}
			data.Normals = append(data.Normals, n)
		case "f":
			if !data.addFace(current, fields[1:]) {
				data.IgnoredLines++
			}
		case "g":
			if len(fields) < 2 {
				data.IgnoredLines++
				continue
			}
			name := fields[1]
			g, ok := data.NamedGroups[name]
			if !ok {
				g = shapes.NewGroup()
				data.NamedGroups[name] = g
			}
			current = g
		default:
			data.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ stream: %v", err)
	}

	return data, nil
}

// ToGroup collects the default group and every named group into a single
// group suitable for adding to a world. Named groups are attached in name
// order so the result is deterministic.
func (d *OBJData) ToGroup() *shapes.Group {
	root := shapes.NewGroup()
	for _, g := range d.groups() {
		if len(g.Children()) > 0 {
			root.AddChild(g)
		}
	}
	return root
}

// groups returns the default group followed by the named groups sorted by
// name
func (d *OBJData) groups() []*shapes.Group {
	names := make([]string, 0, len(d.NamedGroups))
	for name := range d.NamedGroups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := []*shapes.Group{d.DefaultGroup}
	for _, name := range names {
		out = append(out, d.NamedGroups[name])
	}
	return out
}

// addFace triangulates a polygonal face statement into a fan anchored at
// the first vertex and adds the triangles to the group. Faces with vertex
// normals become smooth triangles. Returns false if the statement is
// malformed.
func (d *OBJData) addFace(g *shapes.Group, refs []string) bool {
	if len(refs) < 3 {
		return false
	}

	verts := make([]core.Tuple, 0, len(refs))
	normals := make([]core.Tuple, 0, len(refs))
	smooth := true

	for _, ref := range refs {
		vi, ni, ok := parseFaceRef(ref)
		if !ok || vi < 1 || vi >= len(d.Vertices) {
			return false
		}
		verts = append(verts, d.Vertices[vi])

		if ni == 0 {
			smooth = false
			continue
		}
		if ni < 1 || ni >= len(d.Normals) {
			return false
		}
		normals = append(normals, d.Normals[ni])
	}
	if len(normals) != len(verts) {
		smooth = false
	}

	for i := 1; i < len(verts)-1; i++ {
		if smooth {
			g.AddChild(shapes.NewSmoothTriangle(
				verts[0], verts[i], verts[i+1],
				normals[0], normals[i], normals[i+1],
			))
		} else {
			g.AddChild(shapes.NewTriangle(verts[0], verts[i], verts[i+1]))
		}
	}
	return true
}

// parseFaceRef parses one face vertex reference of the form "v", "v/vt",
// "v//vn" or "v/vt/vn". The texture index is discarded; a missing normal
// index is reported as 0.
func parseFaceRef(ref string) (vertex, normal int, ok bool) {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, 0, false
	}

	vertex, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	if len(parts) == 3 && parts[2] != "" {
		normal, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, false
		}
	}
	return vertex, normal, true
}

// parseTriple parses three floats and builds a tuple with the given
// constructor
func parseTriple(fields []string, build func(x, y, z float64) core.Tuple) (core.Tuple, bool) {
	if len(fields) < 3 {
		return core.Tuple{}, false
	}
	var vals [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Tuple{}, false
		}
		vals[i] = v
	}
	return build(vals[0], vals[1], vals[2]), true
}
