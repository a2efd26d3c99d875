package service

import (
	"context"
	"log"
	"sync"
	"time"

	"menuflow/internal/port"
)

// ImportQueueConfig holds settings for the import queue worker.
type ImportQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// ImportQueueWorker polls for pending import jobs and dispatches them for
// execution.
type ImportQueueWorker struct {
	jobRepo       port.ImportJobRepository
	importService ImportService
	cfg           ImportQueueConfig
	wg            sync.WaitGroup
}

// NewImportQueueWorker creates a new ImportQueueWorker.
func NewImportQueueWorker(jobRepo port.ImportJobRepository, importService ImportService, cfg ImportQueueConfig) *ImportQueueWorker {
	return &ImportQueueWorker{
		jobRepo:       jobRepo,
		importService: importService,
		cfg:           cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight job executions have finished.
func (w *ImportQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("importQueueWorker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("importQueueWorker: shutting down, waiting for in-flight jobs...")
			w.wg.Wait()
			log.Printf("importQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			jobs, err := w.jobRepo.ClaimPending(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					// Context canceled during poll, exit gracefully
					continue
				}
				log.Printf("importQueueWorker: ClaimPending error: %v", err)
				continue
			}

			for i := range jobs {
				job := jobs[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight jobs complete even during shutdown.
					jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
					defer cancel()

					log.Printf("importQueueWorker: dispatching job %s (menu %s)", job.ID, job.MenuID)
					w.importService.ExecuteJob(jobCtx, &job)
				}()
			}
		}
	}
}
