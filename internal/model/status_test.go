package model

import "testing"

func TestOperationStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   OperationStatus
		expected bool
	}{
		{OperationPending, true},
		{OperationRunning, true},
		{OperationCompleted, false},
		{OperationError, false},
		{OperationSkipped, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("OperationStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOperationStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   OperationStatus
		expected bool
	}{
		{OperationPending, false},
		{OperationRunning, false},
		{OperationCompleted, true},
		{OperationError, true},
		{OperationSkipped, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("OperationStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestOperationStatus_String(t *testing.T) {
	if got := OperationSkipped.String(); got != "Skipped" {
		t.Errorf("OperationStatus.String() = %s, expected Skipped", got)
	}
}
