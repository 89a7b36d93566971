// Package persistence exports computed element profiles to SQLite so the
// derived values can be inspected with ordinary SQL tooling. The analysis
// core never reads this back; each export is a self-contained run.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"alchemetrics/internal/analysis"
)

// DB wraps a SQLite connection for profile export.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		element_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS profiles (
		run_id TEXT NOT NULL REFERENCES runs(id),
		symbol TEXT NOT NULL,
		name TEXT NOT NULL,
		atomic_number INTEGER NOT NULL,
		atomic_mass REAL NOT NULL,
		ionization_energy REAL NOT NULL,
		electronegativity REAL,
		atomic_radius REAL NOT NULL,
		electron_config TEXT NOT NULL,
		impedance REAL NOT NULL,
		impedance_log REAL NOT NULL,
		f_quantum REAL NOT NULL,
		f_acoustic REAL NOT NULL,
		f_chemical REAL NOT NULL,
		consciousness_affinity REAL NOT NULL,
		nearest_brainwave TEXT NOT NULL,
		category TEXT NOT NULL,
		planet TEXT,
		PRIMARY KEY (run_id, symbol)
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes one export run with every profile given. Returns the run ID.
func (db *DB) SaveRun(profiles []*analysis.Profile) (string, error) {
	runID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, created_at, element_count) VALUES (?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), len(profiles),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt := `INSERT INTO profiles (
		run_id, symbol, name, atomic_number, atomic_mass,
		ionization_energy, electronegativity, atomic_radius, electron_config,
		impedance, impedance_log, f_quantum, f_acoustic, f_chemical,
		consciousness_affinity, nearest_brainwave, category, planet
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, p := range profiles {
		var chi *float64
		if p.Electronegativity.Known {
			v := p.Electronegativity.Value
			chi = &v
		}
		var planet *string
		if p.HasPlanetaryMetal {
			planet = &p.PlanetaryMetal.Planet
		}

		_, err = tx.Exec(stmt,
			runID, p.Symbol, p.Name, p.AtomicNumber, p.AtomicMass,
			p.IonizationEnergy, chi, p.AtomicRadius, p.ElectronConfig,
			p.Impedance, p.ImpedanceLog,
			p.Frequencies.Quantum, p.Frequencies.Acoustic, p.Frequencies.Chemical,
			p.ConsciousnessAffinity, p.NearestBrainwave.String(), p.Category.String(),
			planet,
		)
		if err != nil {
			return "", fmt.Errorf("insert profile %s: %w", p.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	slog.Info("profiles exported", "run_id", runID, "elements", len(profiles))
	return runID, nil
}

// CountProfiles returns the number of profile rows stored for a run.
func (db *DB) CountProfiles(runID string) (int, error) {
	var n int
	err := db.conn.Get(&n, `SELECT COUNT(*) FROM profiles WHERE run_id = ?`, runID)
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
