package application

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
	"github.com/shirou/gopsutil/v3/cpu"
)

// BatchScanner runs the scan pipeline over many files under a bounded worker
// pool. Scans share only the read-only threat table and the cancellation
// flag; one file's failure never prevents the others from completing.
type BatchScanner struct {
	svc       *ScanService
	workers   int
	cancelled atomic.Bool
}

// NewBatchScanner sizes the pool as the smallest of the batch cap, the
// general worker cap, and the host's logical CPU count.
func NewBatchScanner(svc *ScanService) *BatchScanner {
	policy := svc.Policy()
	workers := policy.BatchWorkers
	if policy.MaxWorkers < workers {
		workers = policy.MaxWorkers
	}
	if cpus := logicalCPUs(); cpus < workers {
		workers = cpus
	}
	if workers < 1 {
		workers = 1
	}
	return &BatchScanner{svc: svc, workers: workers}
}

func logicalCPUs() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Workers reports the effective pool size.
func (b *BatchScanner) Workers() int { return b.workers }

// Cancel stops the scheduler from dispatching new scans and silences the
// progress sink. Scans already underway run to completion and still report;
// cancellation is cooperative, not preemptive.
func (b *BatchScanner) Cancel() { b.cancelled.Store(true) }

// Cancelled reports whether Cancel has been called.
func (b *BatchScanner) Cancelled() bool { return b.cancelled.Load() }

type batchJob struct {
	index int
	path  string
}

// ScanAll scans every path and returns one result per started scan. Absent
// cancellation, len(results) == len(paths). Result order follows completion,
// not input.
func (b *BatchScanner) ScanAll(ctx context.Context, paths []string, sink domain.ProgressSink) []domain.ScanResult {
	total := len(paths)
	if total == 0 {
		return nil
	}

	// Production is concurrent but delivery to the sink must be serialized
	// so the consumer never observes interleaved writes. After Cancel the
	// sink goes silent even for scans still draining.
	serial := b.serializeSink(sink)

	jobs := make(chan batchJob)
	out := make(chan domain.ScanResult, total)

	var wg sync.WaitGroup
	for w := 0; w < b.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// A job can be in flight on the channel when Cancel lands;
				// drain it without scanning.
				if b.cancelled.Load() {
					continue
				}
				serial.Emit(fmt.Sprintf("scanning %d/%d: %s", j.index+1, total, filepath.Base(j.path)))
				out <- b.scanOne(ctx, j.path, serial)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, path := range paths {
			if b.cancelled.Load() {
				return
			}
			select {
			case jobs <- batchJob{index: i, path: path}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]domain.ScanResult, 0, total)
	completed := 0
	for res := range out {
		results = append(results, res)
		completed++
		serial.Emit(fmt.Sprintf("progress: %d%%", completed*100/total))
	}
	return results
}

// scanOne isolates a single unit of work: a panic anywhere in the pipeline
// becomes an error result naming the file, never a dead batch.
func (b *BatchScanner) scanOne(ctx context.Context, path string, sink domain.ProgressSink) (res domain.ScanResult) {
	defer func() {
		if r := recover(); r != nil {
			res = domain.FailureResult(path, domain.FailureUnexpected,
				"Scan failed",
				fmt.Sprintf("failed to scan %s: %v", filepath.Base(path), r),
				domain.FailureRecommendations(domain.FailureUnexpected, b.svc.Policy(), 0, 0))
		}
	}()
	return b.svc.Scan(ctx, domain.ScanRequest{Path: path, Progress: sink})
}

func (b *BatchScanner) serializeSink(sink domain.ProgressSink) domain.ProgressSink {
	if sink == nil {
		return nil
	}
	var mu sync.Mutex
	return func(status string) {
		if b.cancelled.Load() {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		sink(status)
	}
}
