package util

import (
	"testing"

	"schedsim/internal/responses"
)

func TestCalculateAverage(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, ResponseTime: 0, TurnAroundTime: 3},
		{WaitingTime: 1, ResponseTime: 1, TurnAroundTime: 7},
		{WaitingTime: 5, ResponseTime: 2, TurnAroundTime: 14},
	}
	wait, resp, turn := CalculateAverage(details)
	if wait != 2.0 {
		t.Errorf("averageWaitingTime = %v, want 2.0", wait)
	}
	if resp != 1.0 {
		t.Errorf("averageResponseTime = %v, want 1.0", resp)
	}
	if turn != 8.0 {
		t.Errorf("averageTurnAroundTime = %v, want 8.0", turn)
	}
}

func TestCalculateAverageEmpty(t *testing.T) {
	wait, resp, turn := CalculateAverage(nil)
	if wait != 0 || resp != 0 || turn != 0 {
		t.Errorf("averages over empty details = %v, %v, %v, want zeros", wait, resp, turn)
	}
}
