package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lexorigin/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// allowedFilterKeys guards the jsonb filter path against arbitrary key
// injection; only metadata fields the API exposes as filters are accepted.
var allowedFilterKeys = map[string]struct{}{
	"party":    {},
	"topic":    {},
	"law_type": {},
}

type documentRepository struct {
	pool    *pgxpool.Pool
	encoder domain.VectorEncoder
}

// NewDocumentRepository creates a CollectionStore backed by a pgvector
// documents table. The repository owns query-text embedding, so callers only
// ever deal in plain strings.
func NewDocumentRepository(pool *pgxpool.Pool, encoder domain.VectorEncoder) domain.CollectionStore {
	return &documentRepository{pool: pool, encoder: encoder}
}

func (r *documentRepository) Upsert(ctx context.Context, collection string, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	embeddings, err := r.encoder.Encode(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to encode documents: %w", err)
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("expected %d embeddings, got %d", len(docs), len(embeddings))
	}

	const query = `
		INSERT INTO documents (collection, id, document, metadata, embedding, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (collection, id) DO UPDATE SET
			document = EXCLUDED.document,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding,
			updated_at = EXCLUDED.updated_at
	`

	now := time.Now()
	batch := &pgx.Batch{}
	for i, doc := range docs {
		metadata, err := json.Marshal(doc.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for %s: %w", doc.ID, err)
		}
		batch.Queue(query, collection, doc.ID, doc.Text, metadata, pgvector.NewVector(embeddings[i]), now)
	}

	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for range docs {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert document: %w", err)
			}
		}
		return results.Close()
	})
}

func (r *documentRepository) Query(ctx context.Context, collection, query string, limit int, filter map[string]string) ([]domain.QueryMatch, error) {
	embeddings, err := r.encoder.Encode(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	vec := pgvector.NewVector(embeddings[0])

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, document, metadata, embedding <=> $2 AS distance
		FROM documents
		WHERE collection = $1
	`)
	args := []interface{}{collection, vec}
	for key, value := range filter {
		if _, ok := allowedFilterKeys[key]; !ok {
			return nil, fmt.Errorf("unsupported filter key: %s", key)
		}
		args = append(args, value)
		sb.WriteString(fmt.Sprintf(" AND metadata->>'%s' = $%d", key, len(args)))
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY embedding <=> $2 LIMIT $%d", len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var matches []domain.QueryMatch
	for rows.Next() {
		var m domain.QueryMatch
		var distance float64
		if err := rows.Scan(&m.ID, &m.Text, &m.Metadata, &distance); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		m.Distance = &distance
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return matches, nil
}

func (r *documentRepository) List(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	const query = `
		SELECT id, document, metadata
		FROM documents
		WHERE collection = $1
		ORDER BY id ASC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, collection, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.Text, &d.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return docs, nil
}

func (r *documentRepository) Count(ctx context.Context, collection string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM documents WHERE collection = $1`, collection).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, err)
	}
	return count, nil
}
