package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildScene_WithOBJMesh(t *testing.T) {
	objPath := filepath.Join(t.TempDir(), "tri.obj")
	obj := "v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1 2 3\n"
	if err := os.WriteFile(objPath, []byte(obj), 0o644); err != nil {
		t.Fatalf("Writing the OBJ fixture failed: %v", err)
	}

	base, err := buildScene("default", 10, 10, "")
	if err != nil {
		t.Fatalf("buildScene without a mesh failed: %v", err)
	}

	sc, err := buildScene("default", 10, 10, objPath)
	if err != nil {
		t.Fatalf("buildScene with a mesh failed: %v", err)
	}
	if len(sc.World.Objects) != len(base.World.Objects)+1 {
		t.Errorf("Expected the mesh group appended to %d objects, got %d",
			len(base.World.Objects), len(sc.World.Objects))
	}
	// The mesh went through the same validation as the built-in objects
	if err := sc.Validate(); err != nil {
		t.Errorf("Scene with mesh should validate, got %v", err)
	}
}

func TestBuildScene_Errors(t *testing.T) {
	if _, err := buildScene("no-such-scene", 10, 10, ""); err == nil {
		t.Error("Unknown scene names should be rejected")
	}
	if _, err := buildScene("default", 10, 10, filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("A missing OBJ file should be reported")
	}
}
