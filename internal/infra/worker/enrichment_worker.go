package worker

import (
	"context"
	"log"
	"time"

	"github.com/aksoytekstil/leadfinder/internal/usecase"
)

// EnrichmentWorker periodically backfills email addresses onto leads that
// were stored without one.
type EnrichmentWorker struct {
	enrich       *usecase.EnrichLeadsUseCase
	tickInterval time.Duration
	batchLimit   int
}

func NewEnrichmentWorker(enrich *usecase.EnrichLeadsUseCase, interval time.Duration, batchLimit int) *EnrichmentWorker {
	return &EnrichmentWorker{
		enrich:       enrich,
		tickInterval: interval,
		batchLimit:   batchLimit,
	}
}

func (w *EnrichmentWorker) Start(ctx context.Context) {
	log.Printf("enrichment worker started (every %s, batch %d)", w.tickInterval, w.batchLimit)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("enrichment worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *EnrichmentWorker) runOnce(ctx context.Context) {
	output, err := w.enrich.Execute(ctx, usecase.EnrichLeadsInput{Limit: w.batchLimit})
	if err != nil {
		log.Printf("enrichment worker: %v", err)
		return
	}
	if output.Processed > 0 {
		log.Printf("enrichment worker: processed=%d updated=%d", output.Processed, output.Updated)
	}
}
