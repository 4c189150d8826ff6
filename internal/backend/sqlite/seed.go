package sqlite

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML document loaded by the seed command. Each row is a
// column map in the table's wire shape.
type Fixture struct {
	Settings     map[string]any   `yaml:"settings"`
	Projects     []map[string]any `yaml:"projects"`
	Skills       []map[string]any `yaml:"skills"`
	Experience   []map[string]any `yaml:"experience"`
	Testimonials []map[string]any `yaml:"testimonials"`
	Certificates []map[string]any `yaml:"certificates"`
}

// SeedReport counts rows written per table.
type SeedReport map[string]int

// DecodeFixture parses a YAML fixture.
func DecodeFixture(r io.Reader) (Fixture, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return fixture, nil
}

func (f Fixture) tables() map[string][]map[string]any {
	tables := map[string][]map[string]any{
		"projects":     f.Projects,
		"skills":       f.Skills,
		"experience":   f.Experience,
		"testimonials": f.Testimonials,
		"certificates": f.Certificates,
	}
	if len(f.Settings) > 0 {
		tables["settings"] = []map[string]any{f.Settings}
	}
	return tables
}

// Seed replaces the content of every table present in fixture inside one
// transaction. Tables the fixture omits are left untouched, and contact
// messages are never cleared.
func (b *Backend) Seed(ctx context.Context, fixture Fixture) (SeedReport, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	report := SeedReport{}
	tables := fixture.tables()
	for _, table := range Tables() {
		rows, ok := tables[table]
		if !ok || rows == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("clear %s: %w", table, err)
		}
		for i, row := range rows {
			if err := b.insert(ctx, tx, table, row); err != nil {
				return nil, fmt.Errorf("seed %s row %d: %w", table, i, err)
			}
		}
		report[table] = len(rows)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit seed: %w", err)
	}
	return report, nil
}
