package model

import (
	"time"
)

// BatchKind names the file operation a batch performs
type BatchKind string

const (
	BatchMove   BatchKind = "move"
	BatchCopy   BatchKind = "copy"
	BatchDelete BatchKind = "delete"
)

// BatchItem is a single source path inside a batch
type BatchItem struct {
	Source    string          `json:"source"`
	Target    string          `json:"target,omitempty"` // empty for delete
	Status    OperationStatus `json:"status"`
	Error     string          `json:"error,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Batch represents one multi-item file operation. Items run in order and the
// batch stops at the first failure; later items end up Skipped.
type Batch struct {
	ID         string          `json:"id"`
	Kind       BatchKind       `json:"kind"`
	Items      []*BatchItem    `json:"items"`
	Status     OperationStatus `json:"status"`
	Error      string          `json:"error,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
}

// NewBatch creates a pending batch
func NewBatch(id string, kind BatchKind) *Batch {
	return &Batch{
		ID:        id,
		Kind:      kind,
		Items:     make([]*BatchItem, 0),
		Status:    OperationPending,
		StartedAt: time.Now(),
	}
}

// AddItem appends a pending item
func (b *Batch) AddItem(source, target string) *BatchItem {
	item := &BatchItem{
		Source:    source,
		Target:    target,
		Status:    OperationPending,
		UpdatedAt: time.Now(),
	}
	b.Items = append(b.Items, item)
	return item
}

// MarkRunning moves an item and the batch into the running state
func (b *Batch) MarkRunning(item *BatchItem) {
	item.Status = OperationRunning
	item.UpdatedAt = time.Now()
	b.Status = OperationRunning
}

// MarkCompleted marks an item as done
func (b *Batch) MarkCompleted(item *BatchItem) {
	item.Status = OperationCompleted
	item.UpdatedAt = time.Now()
}

// Fail marks an item failed, skips every item still pending, and finishes the batch
func (b *Batch) Fail(item *BatchItem, err error) {
	now := time.Now()
	item.Status = OperationError
	item.Error = err.Error()
	item.UpdatedAt = now
	for _, other := range b.Items {
		if other.Status == OperationPending {
			other.Status = OperationSkipped
			other.UpdatedAt = now
		}
	}
	b.Status = OperationError
	b.Error = err.Error()
	b.FinishedAt = now
}

// Finish completes the batch if no item failed
func (b *Batch) Finish() {
	if b.Status == OperationError {
		return
	}
	b.Status = OperationCompleted
	b.FinishedAt = time.Now()
}

// Completed returns the items that finished successfully
func (b *Batch) Completed() []*BatchItem {
	var done []*BatchItem
	for _, item := range b.Items {
		if item.Status == OperationCompleted {
			done = append(done, item)
		}
	}
	return done
}

// Skipped returns the items that were never attempted
func (b *Batch) Skipped() []*BatchItem {
	var skipped []*BatchItem
	for _, item := range b.Items {
		if item.Status == OperationSkipped {
			skipped = append(skipped, item)
		}
	}
	return skipped
}

// Progress returns completed items as a percentage of all items
func (b *Batch) Progress() float64 {
	if len(b.Items) == 0 {
		return 0
	}
	return float64(len(b.Completed())) / float64(len(b.Items)) * 100
}
