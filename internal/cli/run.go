package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"schedsim/internal/core"
	"schedsim/internal/report"
	"schedsim/internal/schedulers"
	"schedsim/internal/workload"
)

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		quantum   int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "run <workload-file>",
		Short: "Simulate scheduling algorithms over a workload file",
		Long: `run loads a workload (plain text or YAML), simulates the requested
scheduling algorithms and prints a gantt chart, a timing table and the mean
turnaround time of each one. Reports go to stdout; logs go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			table, err := core.NewTable(jobs, cfg.Scheduler.MaxProcesses)
			if err != nil {
				return err
			}
			if quantum == 0 {
				quantum = cfg.Scheduler.RoundRobinTimeQuantum
			}
			logger.Debug("workload loaded", "source", args[0], "processes", table.Len(), "time_quantum", quantum)

			results, err := runAlgorithms(table, algorithm, quantum)
			if err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(schedulers.GenerateAllResponse(results))
			}
			report.Write(os.Stdout, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "Algorithm to run: fcfs, lcfs, lcfs-preemptive, rr, sjf or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON instead of tables")

	return cmd
}

func runAlgorithms(table *core.Table, algorithm string, quantum int) ([]schedulers.Result, error) {
	var (
		result schedulers.Result
		err    error
	)
	switch algorithm {
	case "all":
		return schedulers.ScheduleAll(table, quantum)
	case "fcfs":
		result, err = schedulers.ScheduleFirstComeFirstServe(table)
	case "lcfs":
		result, err = schedulers.ScheduleLastComeFirstServe(table)
	case "lcfs-preemptive":
		result, err = schedulers.ScheduleLastComeFirstServePreemptive(table)
	case "rr":
		result, err = schedulers.ScheduleRoundRobin(table, quantum)
	case "sjf":
		result, err = schedulers.ScheduleShortestJobFirst(table)
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want fcfs, lcfs, lcfs-preemptive, rr, sjf or all)", algorithm)
	}
	if err != nil {
		return nil, err
	}
	return []schedulers.Result{result}, nil
}
