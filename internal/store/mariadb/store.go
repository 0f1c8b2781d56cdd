// Package mariadb reads the canonical term vocabulary from its relational
// store. Each symbol type lives in three tables: <t>_canonical holds the
// canonical rows, <t>_recognized the aliases, and <t>_category_mapping the
// category paths.
package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/go-sql-driver/mysql"

	"github.com/vk/cookgraph/internal/ctxlog"
	"github.com/vk/cookgraph/internal/symbol"
)

// termTables maps each table-name prefix to the symbol type its rows carry.
var termTables = map[string]symbol.Type{
	"actions":         symbol.TypeAction,
	"equipment":       symbol.TypeEquipmentIdentity,
	"ingredients":     symbol.TypeIngredientIdentity,
	"item_properties": symbol.TypeItemProperty,
	"units":           symbol.TypeUnit,
}

// Store is a handle on the vocabulary database.
type Store struct {
	db *sql.DB
}

// Open connects to the term store. The DSN uses the go-sql-driver format,
// e.g. "user:pass@tcp(host:3306)/vocabulary?parseTime=true".
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open term store: %w", err)
	}
	return &Store{db: db}, nil
}

// Ping verifies the connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// canonicalRow mirrors one row of a <t>_canonical table.
type canonicalRow struct {
	ID          int
	Name        string
	Description sql.NullString
}

// aliasRow mirrors one row of a <t>_recognized table.
type aliasRow struct {
	CanonicalID int
	Alias       string
}

// categoryRow mirrors one row of a <t>_category_mapping table.
type categoryRow struct {
	CanonicalID int
	Category    string
}

// LoadRegistry reads every term table and builds the immutable symbol
// registry. The registry is built once at startup; nothing here is called on
// the per-recipe path.
func (s *Store) LoadRegistry(ctx context.Context) (*symbol.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("LoadRegistry: reading term tables.")

	tables := make([]string, 0, len(termTables))
	for table := range termTables {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	b := symbol.NewBuilder()
	for _, table := range tables {
		syms, err := s.loadTable(ctx, table, termTables[table])
		if err != nil {
			return nil, err
		}
		for _, sym := range syms {
			if err := b.Add(sym); err != nil {
				return nil, fmt.Errorf("term table %s: %w", table, err)
			}
		}
		logger.Debug("LoadRegistry: table loaded.", "table", table, "symbols", len(syms))
	}

	reg := b.Build()
	logger.Debug("LoadRegistry: registry built.", "symbols", reg.Len())
	return reg, nil
}

// loadTable reads the three tables of one symbol type and assembles them
// into symbols. Table names come from the fixed termTables map, never from
// input.
func (s *Store) loadTable(ctx context.Context, table string, typ symbol.Type) ([]symbol.Symbol, error) {
	canonicals, err := s.queryCanonicals(ctx, table)
	if err != nil {
		return nil, err
	}
	aliases, err := s.queryAliases(ctx, table)
	if err != nil {
		return nil, err
	}
	categories, err := s.queryCategories(ctx, table)
	if err != nil {
		return nil, err
	}
	return assemble(typ, canonicals, aliases, categories), nil
}

func (s *Store) queryCanonicals(ctx context.Context, table string) ([]canonicalRow, error) {
	query := fmt.Sprintf("SELECT id, name, description FROM %s_canonical", table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s_canonical: %w", table, err)
	}
	defer rows.Close()

	var out []canonicalRow
	for rows.Next() {
		var r canonicalRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Description); err != nil {
			return nil, fmt.Errorf("failed to scan %s_canonical: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) queryAliases(ctx context.Context, table string) ([]aliasRow, error) {
	query := fmt.Sprintf("SELECT canonical_id, alias FROM %s_recognized", table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s_recognized: %w", table, err)
	}
	defer rows.Close()

	var out []aliasRow
	for rows.Next() {
		var r aliasRow
		if err := rows.Scan(&r.CanonicalID, &r.Alias); err != nil {
			return nil, fmt.Errorf("failed to scan %s_recognized: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) queryCategories(ctx context.Context, table string) ([]categoryRow, error) {
	query := fmt.Sprintf("SELECT canonical_id, category FROM %s_category_mapping", table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s_category_mapping: %w", table, err)
	}
	defer rows.Close()

	var out []categoryRow
	for rows.Next() {
		var r categoryRow
		if err := rows.Scan(&r.CanonicalID, &r.Category); err != nil {
			return nil, fmt.Errorf("failed to scan %s_category_mapping: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// assemble joins the three row sets on canonical id. Output order follows
// the canonical rows.
func assemble(typ symbol.Type, canonicals []canonicalRow, aliases []aliasRow, categories []categoryRow) []symbol.Symbol {
	aliasesByID := make(map[int][]string)
	for _, a := range aliases {
		aliasesByID[a.CanonicalID] = append(aliasesByID[a.CanonicalID], a.Alias)
	}
	categoriesByID := make(map[int][]symbol.Category)
	for _, c := range categories {
		categoriesByID[c.CanonicalID] = append(categoriesByID[c.CanonicalID], symbol.Category(c.Category))
	}

	out := make([]symbol.Symbol, 0, len(canonicals))
	for _, row := range canonicals {
		out = append(out, symbol.Symbol{
			ID:            row.ID,
			Type:          typ,
			CanonicalForm: row.Name,
			Aliases:       aliasesByID[row.ID],
			Categories:    categoriesByID[row.ID],
			Description:   row.Description.String,
		})
	}
	return out
}
