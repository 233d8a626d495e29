package repository

import (
	"context"
	"errors"
	"testing"

	"talent-rank/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error { return r.err }

// rowDB returns the same row for every QueryRow call.
type rowDB struct {
	row database.Row
}

func (d rowDB) Ping(context.Context) error  { return nil }
func (d rowDB) Close() error                { return nil }
func (d rowDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (d rowDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}
func (d rowDB) QueryRow(context.Context, string, ...any) database.Row {
	return d.row
}
func (d rowDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

func TestGetStatusMissingRowIsNotFound(t *testing.T) {
	repo := NewPostgresScoreRepository(rowDB{row: errRow{err: pgx.ErrNoRows}})

	_, err := repo.GetStatus(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for a missing row", err)
	}
}

func TestGetStatusPropagatesInfrastructureError(t *testing.T) {
	outage := errors.New("connection refused")
	repo := NewPostgresScoreRepository(rowDB{row: errRow{err: outage}})

	_, err := repo.GetStatus(context.Background(), uuid.New(), uuid.New())
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("infrastructure error collapsed to ErrNotFound")
	}
	if !errors.Is(err, outage) {
		t.Fatalf("err = %v, want the underlying %v", err, outage)
	}
}

func TestFindPropagatesInfrastructureError(t *testing.T) {
	outage := errors.New("connection reset")
	repo := NewPostgresScoreRepository(rowDB{row: errRow{err: outage}})

	_, err := repo.Find(context.Background(), uuid.New(), uuid.New())
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("infrastructure error collapsed to ErrNotFound")
	}
	if !errors.Is(err, outage) {
		t.Fatalf("err = %v, want the underlying %v", err, outage)
	}
}
