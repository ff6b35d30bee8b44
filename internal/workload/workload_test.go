package workload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schedsim/internal/core"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []core.Job
		wantErr bool
	}{
		{
			"classic three",
			"3\n0,10\n1,1\n2,1\n",
			[]core.Job{
				{ArrivalTime: 0, BurstTime: 10},
				{ArrivalTime: 1, BurstTime: 1},
				{ArrivalTime: 2, BurstTime: 1},
			},
			false,
		},
		{
			"spaces tolerated",
			"2\n0, 5\n 3,2\n",
			[]core.Job{
				{ArrivalTime: 0, BurstTime: 5},
				{ArrivalTime: 3, BurstTime: 2},
			},
			false,
		},
		{
			"zero processes",
			"0\n",
			[]core.Job{},
			false,
		},
		{"empty input", "", nil, true},
		{"count under records", "1\n0,5\n1,2\n", nil, true},
		{"count over records", "3\n0,5\n", nil, true},
		{"negative count", "-1\n", nil, true},
		{"count not a number", "three\n0,5\n", nil, true},
		{"count line with pair", "2,2\n0,5\n1,1\n", nil, true},
		{"record missing burst", "1\n0\n", nil, true},
		{"record extra field", "1\n0,5,9\n", nil, true},
		{"arrival not a number", "1\nx,5\n", nil, true},
		{"burst not a number", "1\n0,x\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseText(strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedWorkload) {
					t.Fatalf("error = %v, want %v", err, ErrMalformedWorkload)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseText: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d jobs, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("job %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	input := `
processes:
  - arrival: 0
    burst: 10
  - arrival: 1
    burst: 1
`
	got, err := ParseYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	want := []core.Job{
		{ArrivalTime: 0, BurstTime: 10},
		{ArrivalTime: 1, BurstTime: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("job %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseYAMLRejectsUnknownFields(t *testing.T) {
	input := "processes:\n  - arrival: 0\n    burst: 5\n    priority: 3\n"
	if _, err := ParseYAML(strings.NewReader(input)); !errors.Is(err, ErrMalformedWorkload) {
		t.Fatalf("error = %v, want %v", err, ErrMalformedWorkload)
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	if _, err := ParseYAML(strings.NewReader("")); !errors.Is(err, ErrMalformedWorkload) {
		t.Fatalf("error = %v, want %v", err, ErrMalformedWorkload)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "procs.txt")
	if err := os.WriteFile(textPath, []byte("1\n5,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "procs.yaml")
	if err := os.WriteFile(yamlPath, []byte("processes:\n  - arrival: 5\n    burst: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{textPath, yamlPath} {
		jobs, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if len(jobs) != 1 || jobs[0] != (core.Job{ArrivalTime: 5, BurstTime: 3}) {
			t.Errorf("Load(%s) = %+v, want one job (5,3)", path, jobs)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}
