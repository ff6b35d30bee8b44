package core

import "testing"

func TestSortedByArrival(t *testing.T) {
	procs := []Process{
		{ID: 0, ArrivalTime: 5, BurstTime: 1},
		{ID: 1, ArrivalTime: 0, BurstTime: 2},
		{ID: 2, ArrivalTime: 5, BurstTime: 3},
		{ID: 3, ArrivalTime: 2, BurstTime: 4},
	}
	got := SortedBy(procs, ByArrival)
	wantIDs := []int{1, 3, 0, 2}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

// Equal keys must keep input order.
func TestSortedByStability(t *testing.T) {
	procs := []Process{
		{ID: 0, ArrivalTime: 1, BurstTime: 4},
		{ID: 1, ArrivalTime: 1, BurstTime: 4},
		{ID: 2, ArrivalTime: 1, BurstTime: 4},
	}
	for _, key := range []SortKey{ByArrival, ByBurst} {
		got := SortedBy(procs, key)
		for i := range got {
			if got[i].ID != i {
				t.Fatalf("stability broken: position %d holds ID %d", i, got[i].ID)
			}
		}
	}
}

func TestSortedByBurst(t *testing.T) {
	procs := []Process{
		{ID: 0, ArrivalTime: 0, BurstTime: 9},
		{ID: 1, ArrivalTime: 0, BurstTime: 1},
		{ID: 2, ArrivalTime: 0, BurstTime: 5},
	}
	got := SortedBy(procs, ByBurst)
	wantIDs := []int{1, 2, 0}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d", i, got[i].ID, want)
		}
	}
}

func TestSortedByDoesNotMutateInput(t *testing.T) {
	procs := []Process{
		{ID: 0, ArrivalTime: 9},
		{ID: 1, ArrivalTime: 1},
	}
	SortedBy(procs, ByArrival)
	if procs[0].ID != 0 || procs[1].ID != 1 {
		t.Errorf("input reordered: %+v", procs)
	}
}
