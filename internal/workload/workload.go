// Package workload loads process sets from files: the classic
// count-and-pairs text format, or a YAML document. Loaders only parse;
// value validation belongs to the table that consumes the jobs.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"schedsim/internal/core"
)

// ErrMalformedWorkload indicates input that does not follow either format.
var ErrMalformedWorkload = errors.New("malformed workload")

// Load reads a workload file, picking the parser by extension: .yaml and
// .yml use the YAML schema, anything else the text format.
func Load(path string) ([]core.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseText(f)
	}
}

// ParseText reads the text format: the process count alone on the first
// record, then one arrival,burst pair per record.
//
//	3
//	0,10
//	1,1
//	2,1
func ParseText(r io.Reader) ([]core.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkload, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing process count", ErrMalformedWorkload)
	}
	if len(rows[0]) != 1 {
		return nil, fmt.Errorf("%w: process count line has %d fields, want 1", ErrMalformedWorkload, len(rows[0]))
	}
	count, err := strconv.Atoi(strings.TrimSpace(rows[0][0]))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad process count %q", ErrMalformedWorkload, rows[0][0])
	}

	records := rows[1:]
	if len(records) != count {
		return nil, fmt.Errorf("%w: %d records, count says %d", ErrMalformedWorkload, len(records), count)
	}

	jobs := make([]core.Job, count)
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, fmt.Errorf("%w: record %d has %d fields, want 2", ErrMalformedWorkload, i+1, len(rec))
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: bad arrival time %q", ErrMalformedWorkload, i+1, rec[0])
		}
		burst, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: bad burst time %q", ErrMalformedWorkload, i+1, rec[1])
		}
		jobs[i] = core.Job{ArrivalTime: arrival, BurstTime: burst}
	}
	return jobs, nil
}

// ParseYAML reads the structured schema:
//
//	processes:
//	  - arrival: 0
//	    burst: 10
func ParseYAML(r io.Reader) ([]core.Job, error) {
	var doc struct {
		Processes []struct {
			Arrival int `yaml:"arrival"`
			Burst   int `yaml:"burst"`
		} `yaml:"processes"`
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedWorkload)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkload, err)
	}

	jobs := make([]core.Job, len(doc.Processes))
	for i, p := range doc.Processes {
		jobs[i] = core.Job{ArrivalTime: p.Arrival, BurstTime: p.Burst}
	}
	return jobs, nil
}
