package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k, ok := c.Conductivity("brickwork_outer"); !ok || k != 0.77 {
		t.Errorf("brickwork_outer conductivity = %g, %v; expected 0.77, true", k, ok)
	}
	if r, ok := c.Resistance("air_cavity_unventilated"); !ok || r != 0.18 {
		t.Errorf("air_cavity_unventilated resistance = %g, %v; expected 0.18, true", r, ok)
	}
	if _, ok := c.Conductivity("unobtainium"); ok {
		t.Error("unexpected conductivity for unknown material")
	}

	opts, err := c.ThicknessOptions("mineral_wool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) == 0 {
		t.Error("mineral_wool has no thickness options")
	}
}

// Every construction in the shipped catalog must be buildable: the
// generator picks from these blind, so a dangling material reference
// would surface as a runtime failure on a random request.
func TestDefaultCatalogConstructionsComplete(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for count := 1; count <= 6; count++ {
		walls, err := c.WallConstructions(count)
		if err != nil {
			t.Errorf("no wall constructions for %d layers: %v", count, err)
			continue
		}
		for _, con := range walls {
			if len(con.Layers) != count {
				t.Errorf("construction %q has %d layers, listed under %d", con.Name, len(con.Layers), count)
			}
		}
	}

	for count := 3; count <= 5; count++ {
		walls, err := c.BridgingConstructions(count)
		if err != nil {
			t.Errorf("no bridging constructions for %d layers: %v", count, err)
			continue
		}
		for _, con := range walls {
			mixed := 0
			for _, layer := range con.Layers {
				if layer.Bridging != nil {
					mixed++
				}
			}
			if mixed == 0 {
				t.Errorf("bridging construction %q has no mixed layer", con.Name)
			}
		}
	}
}

func TestWallConstructionsOutOfRange(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.WallConstructions(7); err == nil {
		t.Error("expected error for 7-layer walls")
	}
	if _, err := c.BridgingConstructions(2); err == nil {
		t.Error("expected error for 2-layer bridging walls")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
conductivities:
  brick: 0.77
resistances:
  cavity: 0.18
thicknesses:
  brick: [102.5]
  cavity: [50]
walls:
  2:
    - name: Test Wall
      layers:
        - material: brick
        - material: cavity
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	walls, err := c.WallConstructions(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(walls) != 1 || walls[0].Name != "Test Wall" {
		t.Errorf("unexpected constructions: %+v", walls)
	}
}

func TestLoadYAMLRejectsDanglingMaterial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
conductivities:
  brick: 0.77
thicknesses:
  brick: [102.5]
walls:
  1:
    - name: Broken Wall
      layers:
        - material: vapormatter
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadYAML(path); err == nil {
		t.Fatal("expected validation error for unknown material")
	}
}

func TestLoadUnknownSource(t *testing.T) {
	if _, err := Load("etcd", ""); err == nil {
		t.Fatal("expected error for unsupported source")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"brickwork_outer", "Brickwork Outer"},
		{"mineral_wool", "Mineral Wool"},
		{"plasterboard", "Plasterboard"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
