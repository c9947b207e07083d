// internal/progress/reporter.go
package progress

import (
	"sync"
	"time"

	"github.com/bstardust/photo-gps-report/internal/logger"
)

// Reporter tracks and reports scan progress
type Reporter struct {
	mu             sync.Mutex
	total          int
	located        int
	missing        int
	startTime      time.Time
	lastUpdateTime time.Time
	updateInterval time.Duration
}

// New creates a new progress reporter
func New() *Reporter {
	return &Reporter{
		updateInterval: 2 * time.Second,
	}
}

// Start initializes the progress reporter with the total number of photos
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	r.located = 0
	r.missing = 0
	r.startTime = time.Now()
	r.lastUpdateTime = time.Now()

	logger.Info("Scanning %d photos", total)
}

// Located marks a photo whose GPS position was decoded
func (r *Reporter) Located(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.located++
	r.updateProgress()
}

// Missing marks a photo without a usable GPS position
func (r *Reporter) Missing(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.missing++
	r.updateProgress()
}

// Finish completes the progress reporting
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime)

	logger.Info("Scan complete: %d/%d photos with GPS position, %d without, in %s",
		r.located, r.total, r.missing, duration.Round(time.Second))
}

// Counts returns the located and missing totals so far
func (r *Reporter) Counts() (located, missing int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.located, r.missing
}

// updateProgress updates and displays the progress
func (r *Reporter) updateProgress() {
	now := time.Now()
	if now.Sub(r.lastUpdateTime) < r.updateInterval {
		return
	}

	r.lastUpdateTime = now
	duration := now.Sub(r.startTime)
	processed := r.located + r.missing

	if processed == 0 {
		return
	}

	percentage := float64(processed) / float64(r.total) * 100

	// Estimated time remaining
	timePerFile := duration / time.Duration(processed)
	remaining := timePerFile * time.Duration(r.total-processed)
	eta := remaining.Round(time.Second).String()

	logger.Info("Progress: %.1f%% (%d/%d photos, %d located, %d without GPS) ETA: %s",
		percentage, processed, r.total, r.located, r.missing, eta)
}
