package processor

import (
	"context"
	"sync"

	"jobocr/services/processing/internal/models"

	"go.uber.org/zap"
)

// BatchExtractor extracts many posts on a fixed pool of workers.
type BatchExtractor struct {
	processor *JobProcessor
	workers   int
	logger    *zap.Logger
}

func NewBatchExtractor(processor *JobProcessor, workers int, logger *zap.Logger) *BatchExtractor {
	if workers < 1 {
		workers = 1
	}
	return &BatchExtractor{processor: processor, workers: workers, logger: logger}
}

type batchItem struct {
	index int
	text  models.RawText
}

// ExtractAll returns one result per input, in input order. When ctx is
// cancelled the remaining posts are skipped and ctx.Err() is returned.
func (b *BatchExtractor) ExtractAll(ctx context.Context, texts []models.RawText) ([]models.ExtractionResult, error) {
	results := make([]models.ExtractionResult, len(texts))
	items := make(chan batchItem)

	var wg sync.WaitGroup
	for i := 0; i < b.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range items {
				results[item.index] = b.processor.Extract(ctx, item.text)
			}
		}()
	}

	var err error
feed:
	for i, text := range texts {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case items <- batchItem{index: i, text: text}:
		}
	}
	close(items)
	wg.Wait()

	if err != nil {
		b.logger.Warn("Batch extraction cancelled", zap.Int("posts", len(texts)), zap.Error(err))
		return nil, err
	}
	return results, nil
}
