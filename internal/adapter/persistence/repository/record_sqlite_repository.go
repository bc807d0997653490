package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"ordenes_xpto/internal/domain/entities"
	"ordenes_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RecordSQLiteRepository stores persistence records in a local SQLite file.
type RecordSQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IPersistenceSink = (*RecordSQLiteRepository)(nil)

// NewRecordSQLiteRepository creates the records table when missing.
func NewRecordSQLiteRepository(db *sql.DB) (*RecordSQLiteRepository, error) {
	repo := &RecordSQLiteRepository{db: db, now: time.Now}
	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return repo, nil
}

func (r *RecordSQLiteRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		connection_tag TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_recorded_at ON records(recorded_at);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *RecordSQLiteRepository) Record(ctx context.Context, description string, connectionTag string) error {
	rec := entities.PersistenceRecord{
		ID:            uuid.NewString(),
		Description:   description,
		ConnectionTag: connectionTag,
		RecordedAt:    r.now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (id, description, connection_tag, recorded_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Description, rec.ConnectionTag, formatTime(rec.RecordedAt),
	)
	if err != nil {
		log.Printf("[persistence][sqlite] insert failed record_id=%s err=%v", rec.ID, err)
		return err
	}
	log.Printf("[persistence][sqlite] recorded record_id=%s", rec.ID)
	return nil
}

// List returns every record, oldest first.
func (r *RecordSQLiteRepository) List(ctx context.Context) ([]entities.PersistenceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, connection_tag, recorded_at FROM records ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entities.PersistenceRecord
	for rows.Next() {
		var rec entities.PersistenceRecord
		var recordedAt string
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.ConnectionTag, &recordedAt); err != nil {
			return nil, err
		}
		rec.RecordedAt = parseTime(recordedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}
