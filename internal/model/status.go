package model

// OperationStatus represents the status of a file operation item or batch
type OperationStatus string

const (
	// OperationPending means the item is queued but not started
	OperationPending OperationStatus = "Pending"

	// OperationRunning means the item is being processed
	OperationRunning OperationStatus = "Running"

	// OperationCompleted means the item finished successfully
	OperationCompleted OperationStatus = "Completed"

	// OperationError means the item failed
	OperationError OperationStatus = "Error"

	// OperationSkipped means the item was not attempted because an earlier item failed
	OperationSkipped OperationStatus = "Skipped"
)

// String returns the string representation of OperationStatus
func (s OperationStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is still pending or running
func (s OperationStatus) IsActive() bool {
	return s == OperationPending || s == OperationRunning
}

// IsFinished returns true if the item reached a terminal state
func (s OperationStatus) IsFinished() bool {
	return s == OperationCompleted || s == OperationError || s == OperationSkipped
}
