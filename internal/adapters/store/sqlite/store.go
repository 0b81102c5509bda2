// Package sqlite provides an EntityStore and an audit event log backed by an
// embedded SQLite database (modernc.org/sqlite, no cgo).
//
// Entities are stored as JSON bodies keyed by (kind, id) with a version
// column used for compare-and-swap writes. Secondary indexes and exclusive
// claims live in their own tables and are rewritten in the same transaction
// as the entity.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/kinds"
	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EntityStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a SQLite-backed EntityStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(ctx context.Context, path string, busyTimeout time.Duration) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	// A single connection serializes writers inside the process; the
	// version check still guards against other processes.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating sqlite %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the handle for the event log sharing this database.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Get implements ports.EntityStore.
func (s *Store) Get(ctx context.Context, kind domain.Kind, id uint64) (domain.Entity, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM entities WHERE kind = ? AND id = ?`, string(kind), id,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s %d: %w", kind, id, err)
	}
	return decode(kind, body)
}

// Put implements ports.EntityStore.
func (s *Store) Put(ctx context.Context, e domain.Entity, expectedVersion uint64) error {
	h := e.Meta()
	prevVersion := h.Version
	h.Version = expectedVersion + 1

	if err := s.put(ctx, e, expectedVersion); err != nil {
		h.Version = prevVersion
		return err
	}
	return nil
}

func (s *Store) put(ctx context.Context, e domain.Entity, expectedVersion uint64) error {
	h := e.Meta()
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %s %d: %w", e.Kind(), h.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	kind := string(e.Kind())
	var res sql.Result
	if expectedVersion == 0 {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO entities (kind, id, version, status, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (kind, id) DO NOTHING`,
			kind, h.ID, h.Version, string(h.Status), string(body),
			h.CreatedAt.Format(time.RFC3339Nano), h.UpdatedAt.Format(time.RFC3339Nano))
	} else {
		res, err = tx.ExecContext(ctx, `
			UPDATE entities SET version = ?, status = ?, body = ?, updated_at = ?
			WHERE kind = ? AND id = ? AND version = ?`,
			h.Version, string(h.Status), string(body), h.UpdatedAt.Format(time.RFC3339Nano),
			kind, h.ID, expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("writing %s %d: %w", kind, h.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w: expected version %d", kind, h.ID, domain.ErrConflict, expectedVersion)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entity_indexes WHERE kind = ? AND id = ?`, kind, h.ID); err != nil {
		return fmt.Errorf("clearing indexes for %s %d: %w", kind, h.ID, err)
	}
	for idx, value := range e.Indexes() {
		if value == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entity_indexes (kind, id, name, value) VALUES (?, ?, ?, ?)`,
			kind, h.ID, string(idx), value,
		); err != nil {
			return fmt.Errorf("indexing %s %d by %s: %w", kind, h.ID, idx, err)
		}
	}

	if err := claim(ctx, tx, e); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sequences (kind, last_id) VALUES (?, ?)
		ON CONFLICT (kind) DO UPDATE SET last_id = MAX(last_id, excluded.last_id)`,
		kind, h.ID,
	); err != nil {
		return fmt.Errorf("advancing %s sequence: %w", kind, err)
	}

	return tx.Commit()
}

// claim replaces the claims held by e with its current ones. The primary key
// on (kind, name, value) makes a claim held by another entity fail the write.
func claim(ctx context.Context, tx *sql.Tx, e domain.Entity) error {
	kind, id := string(e.Kind()), e.Meta().ID
	if _, err := tx.ExecContext(ctx, `DELETE FROM entity_claims WHERE kind = ? AND id = ?`, kind, id); err != nil {
		return fmt.Errorf("releasing claims of %s %d: %w", kind, id, err)
	}
	for idx, value := range domain.ClaimsOf(e) {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO entity_claims (kind, name, value, id) VALUES (?, ?, ?, ?)
			ON CONFLICT (kind, name, value) DO NOTHING`,
			kind, string(idx), value, id)
		if err != nil {
			return fmt.Errorf("claiming %s %q for %s %d: %w", idx, value, kind, id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%s %d: %w: %s %q is already claimed", kind, id, domain.ErrAlreadyExists, idx, value)
		}
	}
	return nil
}

// NextID implements ports.EntityStore.
func (s *Store) NextID(ctx context.Context, kind domain.Kind) (uint64, error) {
	var id uint64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sequences (kind, last_id) VALUES (?, 1)
		ON CONFLICT (kind) DO UPDATE SET last_id = last_id + 1
		RETURNING last_id`,
		string(kind),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("reserving %s id: %w", kind, err)
	}
	return id, nil
}

// ListByIndex implements ports.EntityStore.
func (s *Store) ListByIndex(ctx context.Context, kind domain.Kind, index domain.Index, value string) ([]domain.Entity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.body FROM entity_indexes i
		JOIN entities e ON e.kind = i.kind AND e.id = i.id
		WHERE i.kind = ? AND i.name = ? AND i.value = ?
		ORDER BY e.id`,
		string(kind), string(index), value,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s by %s: %w", kind, index, err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Entity
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		e, err := decode(kind, body)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "entity-store" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: sqlite: %w", domain.ErrUnavailable, err)
	}
	return nil
}

func decode(kind domain.Kind, body string) (domain.Entity, error) {
	e, err := kinds.New(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(body), e); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	return e, nil
}
