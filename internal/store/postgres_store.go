package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/exemplo/crudmongo-api/internal/document"
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type documentRow struct {
	ID       string `db:"id"`
	Document []byte `db:"document"`
}

// PostgresStore keeps every collection in its own table of JSONB documents keyed by UUID.
type PostgresStore struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
	timeout time.Duration
}

func NewPostgresStore(db *sqlx.DB, timeout time.Duration) *PostgresStore {
	return &PostgresStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		timeout: timeout,
	}
}

// EnsureCollection creates the backing table for collection when missing.
func (s *PostgresStore) EnsureCollection(ctx context.Context, collection string) error {
	if !tableNamePattern.MatchString(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, document JSONB NOT NULL)`, collection)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) NewID() string {
	return uuid.NewString()
}

func (s *PostgresStore) FindAll(ctx context.Context, collection string) ([]Record, error) {
	query, args, err := s.builder.Select("id", "document").From(collection).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", collection, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeJSONDocument(row.Document)
		if err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, row.ID, err)
		}
		records = append(records, Record{ID: row.ID, Doc: doc})
	}
	return records, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, collection, id string) (document.Doc, error) {
	query, args, err := s.builder.Select("id", "document").From(collection).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find %s: %w", collection, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var row documentRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find %s/%s: %w", collection, id, err)
	}

	doc, err := decodeJSONDocument(row.Document)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

func (s *PostgresStore) Exists(ctx context.Context, collection, id string) (bool, error) {
	query, args, err := s.builder.Select("1").From(collection).Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists %s: %w", collection, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var one int
	if err := s.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists %s/%s: %w", collection, id, err)
	}
	return true, nil
}

func (s *PostgresStore) Replace(ctx context.Context, collection, id string, doc document.Doc) error {
	payload, err := json.Marshal(doc.Map())
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	query, args, err := s.builder.Insert(collection).
		Columns("id", "document").
		Values(id, string(payload)).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document").
		ToSql()
	if err != nil {
		return fmt.Errorf("build replace %s: %w", collection, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	query, args, err := s.builder.Delete(collection).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", collection, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	return s.db.Close()
}

func decodeJSONDocument(raw []byte) (document.Doc, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return document.FromMap(fields), nil
}
