// Package report renders scheduling results as human-readable text: a gantt
// chart and a per-process timing table for each algorithm, then one summary
// line per algorithm with its mean turnaround time.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/core"
	"schedsim/internal/schedulers"
)

// Write renders every result in order, followed by the summary lines.
func Write(w io.Writer, results []schedulers.Result) {
	for _, res := range results {
		WriteResult(w, res)
	}
	Summary(w, results)
}

// WriteResult renders one algorithm's gantt chart and timing table.
func WriteResult(w io.Writer, res schedulers.Result) {
	writeTitle(w, res.Algorithm)
	writeGantt(w, res.Timeline)
	writeTable(w, res)
}

// Summary writes one line per algorithm with its mean turnaround time.
func Summary(w io.Writer, results []schedulers.Result) {
	for _, res := range results {
		fmt.Fprintf(w, "%s: mean turnaround = %.2f\n", res.Algorithm, res.MeanTurnaround)
	}
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, timeline []core.Slice) {
	if len(timeline) == 0 {
		return
	}
	fmt.Fprintln(w, "Gantt chart")
	fmt.Fprint(w, "|")
	for _, slice := range timeline {
		pid := fmt.Sprintf("P%d", slice.ProcessID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		fmt.Fprint(w, padding, pid, padding, "|")
	}
	fmt.Fprintln(w)
	for i, slice := range timeline {
		fmt.Fprint(w, slice.Start, "\t")
		if i == len(timeline)-1 {
			fmt.Fprint(w, slice.Stop)
		}
	}
	fmt.Fprintf(w, "\n\n")
}

func writeTable(w io.Writer, res schedulers.Result) {
	rows := make([][]string, len(res.Processes))
	var totalWait float64
	for i, p := range res.Processes {
		totalWait += float64(p.WaitingTime())
		rows[i] = []string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime()),
			fmt.Sprint(p.WaitingTime()),
		}
	}

	var meanWait, throughput float64
	if n := len(res.Processes); n > 0 {
		meanWait = totalWait / float64(n)
		if last := res.Timeline[len(res.Timeline)-1].Stop; last > 0 {
			throughput = float64(n) / float64(last)
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", throughput),
		fmt.Sprintf("Average\n%.2f", res.MeanTurnaround),
		fmt.Sprintf("Average\n%.2f", meanWait)})
	table.Render()
	fmt.Fprintln(w)
}
