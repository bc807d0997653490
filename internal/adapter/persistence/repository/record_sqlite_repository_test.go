package repository

import (
	"context"
	"testing"

	"ordenes_xpto/internal/infrastructure/database"
)

func newTestSQLiteRepo(t *testing.T) *RecordSQLiteRepository {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewRecordSQLiteRepository(db)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func TestRecordSQLiteRepository_RecordAndList(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	ctx := context.Background()

	if err := repo.Record(ctx, "Cliente[ID: 1]", "tag"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Record(ctx, "OrdenDeTrabajo[ID: 1]", "tag"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Description != "Cliente[ID: 1]" || records[1].Description != "OrdenDeTrabajo[ID: 1]" {
		t.Fatalf("unexpected order: %+v", records)
	}
	for _, rec := range records {
		if rec.ID == "" || rec.ConnectionTag != "tag" || rec.RecordedAt.IsZero() {
			t.Fatalf("unexpected record: %+v", rec)
		}
	}
}

func TestRecordSQLiteRepository_MigrateIsIdempotent(t *testing.T) {
	repo := newTestSQLiteRepo(t)
	if err := repo.migrate(); err != nil {
		t.Fatalf("expected second migration to succeed, got %v", err)
	}
}
