package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"lexorigin/internal/domain"
)

// ingestBatchSize bounds how many documents are embedded and upserted per
// store call when ingesting large scraper outputs.
const ingestBatchSize = 100

// IngestUsecase performs the batch upsert path: it reads the scraper output
// JSON files and replaces-or-inserts every record by id. It never deletes.
// A missing input file is reported as fs.ErrNotExist.
type IngestUsecase interface {
	IngestLawsFile(ctx context.Context, path string) (int, error)
	IngestDebatesFile(ctx context.Context, path string) (int, error)
}

type ingestUsecase struct {
	store domain.CollectionStore
}

func NewIngestUsecase(store domain.CollectionStore) IngestUsecase {
	return &ingestUsecase{store: store}
}

func (u *ingestUsecase) IngestLawsFile(ctx context.Context, path string) (int, error) {
	return u.ingestFile(ctx, domain.CollectionLegalTexts, path)
}

func (u *ingestUsecase) IngestDebatesFile(ctx context.Context, path string) (int, error) {
	return u.ingestFile(ctx, domain.CollectionHansardDebates, path)
}

func (u *ingestUsecase) ingestFile(ctx context.Context, collection, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("ingest file %s: %w", path, fs.ErrNotExist)
		}
		return 0, fmt.Errorf("failed to read ingest file %s: %w", path, err)
	}

	var docs []domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, fmt.Errorf("failed to parse ingest file %s: %w", path, err)
	}
	if len(docs) == 0 {
		slog.Info("no records to ingest", slog.String("collection", collection), slog.String("path", path))
		return 0, nil
	}

	for start := 0; start < len(docs); start += ingestBatchSize {
		end := start + ingestBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := u.store.Upsert(ctx, collection, docs[start:end]); err != nil {
			return 0, fmt.Errorf("failed to upsert batch into %s: %w", collection, err)
		}
	}

	slog.Info("ingest completed",
		slog.String("collection", collection),
		slog.Int("count", len(docs)),
	)
	return len(docs), nil
}
