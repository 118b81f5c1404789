package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads a catalog from a SQLite database. Expected schema:
//
//	materials(name TEXT PRIMARY KEY, conductivity REAL, resistance REAL)
//	thicknesses(material TEXT, thickness_mm REAL)
//	constructions(id INTEGER PRIMARY KEY, name TEXT, layer_count INTEGER, bridging INTEGER)
//	construction_layers(construction_id INTEGER, position INTEGER, material TEXT,
//	    insulation_material TEXT, structural_min_pct REAL, structural_max_pct REAL,
//	    secondary_material TEXT, secondary_pct REAL)
func LoadSQLite(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening SQLite database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("catalog: pinging SQLite database: %w", err)
	}

	c := &Catalog{
		Conductivities: make(map[string]float64),
		Resistances:    make(map[string]float64),
		Thicknesses:    make(map[string][]float64),
		Walls:          make(map[int][]Construction),
		BridgingWalls:  make(map[int][]Construction),
	}

	if err := loadMaterials(db, c); err != nil {
		return nil, err
	}
	if err := loadThicknesses(db, c); err != nil {
		return nil, err
	}
	if err := loadConstructions(db, c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadMaterials(db *sql.DB, c *Catalog) error {
	rows, err := db.Query(`SELECT name, conductivity, resistance FROM materials ORDER BY name`)
	if err != nil {
		return fmt.Errorf("catalog: querying materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var conductivity, resistance sql.NullFloat64
		if err := rows.Scan(&name, &conductivity, &resistance); err != nil {
			return fmt.Errorf("catalog: scanning material row: %w", err)
		}
		if conductivity.Valid {
			c.Conductivities[name] = conductivity.Float64
		}
		if resistance.Valid {
			c.Resistances[name] = resistance.Float64
		}
	}
	return rows.Err()
}

func loadThicknesses(db *sql.DB, c *Catalog) error {
	rows, err := db.Query(`SELECT material, thickness_mm FROM thicknesses ORDER BY material, thickness_mm`)
	if err != nil {
		return fmt.Errorf("catalog: querying thicknesses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var material string
		var mm float64
		if err := rows.Scan(&material, &mm); err != nil {
			return fmt.Errorf("catalog: scanning thickness row: %w", err)
		}
		c.Thicknesses[material] = append(c.Thicknesses[material], mm)
	}
	return rows.Err()
}

func loadConstructions(db *sql.DB, c *Catalog) error {
	rows, err := db.Query(`SELECT id, name, layer_count, bridging FROM constructions ORDER BY layer_count, id`)
	if err != nil {
		return fmt.Errorf("catalog: querying constructions: %w", err)
	}
	defer rows.Close()

	type constructionRow struct {
		id       int
		layers   int
		bridging bool
	}
	var order []constructionRow
	built := make(map[int]*Construction)
	for rows.Next() {
		var cr constructionRow
		var name string
		if err := rows.Scan(&cr.id, &name, &cr.layers, &cr.bridging); err != nil {
			return fmt.Errorf("catalog: scanning construction row: %w", err)
		}
		built[cr.id] = &Construction{Name: name}
		order = append(order, cr)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	layerRows, err := db.Query(`
		SELECT construction_id, material, insulation_material,
		       structural_min_pct, structural_max_pct,
		       secondary_material, secondary_pct
		FROM construction_layers ORDER BY construction_id, position`)
	if err != nil {
		return fmt.Errorf("catalog: querying construction layers: %w", err)
	}
	defer layerRows.Close()

	for layerRows.Next() {
		var conID int
		var material string
		var insulation, secondary sql.NullString
		var minPct, maxPct, secondaryPct sql.NullFloat64
		if err := layerRows.Scan(&conID, &material, &insulation, &minPct, &maxPct, &secondary, &secondaryPct); err != nil {
			return fmt.Errorf("catalog: scanning construction layer row: %w", err)
		}
		con, ok := built[conID]
		if !ok {
			return fmt.Errorf("catalog: construction layer references unknown construction %d", conID)
		}

		layer := ConstructionLayer{Material: material}
		if insulation.Valid && insulation.String != "" {
			layer.Bridging = &BridgingSpec{
				Insulation:      insulation.String,
				StructuralRange: []float64{minPct.Float64, maxPct.Float64},
			}
			if secondary.Valid && secondary.String != "" {
				layer.Bridging.Secondary = secondary.String
				layer.Bridging.SecondaryPercentage = secondaryPct.Float64
			}
		}
		con.Layers = append(con.Layers, layer)
	}
	if err := layerRows.Err(); err != nil {
		return err
	}

	for _, cr := range order {
		con := built[cr.id]
		if cr.bridging {
			c.BridgingWalls[cr.layers] = append(c.BridgingWalls[cr.layers], *con)
		} else {
			c.Walls[cr.layers] = append(c.Walls[cr.layers], *con)
		}
	}
	return nil
}
