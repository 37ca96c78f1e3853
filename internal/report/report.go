package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"cpu-scheduler-sim/internal/responses"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Write renders results in the given format.
func Write(w io.Writer, format string, results []responses.SimulationResult) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		for _, r := range results {
			WriteResult(w, r)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func WriteResult(w io.Writer, r responses.SimulationResult) {
	writeTitle(w, r.Algorithm)
	writeGantt(w, r.GanttChart)
	writeSchedule(w, r)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []responses.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range gantt {
		padding := strings.Repeat(" ", max(0, (8-len(s.PID))/2))
		_, _ = fmt.Fprint(w, padding, s.PID, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range gantt {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func writeSchedule(w io.Writer, r responses.SimulationResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, d := range r.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Utilization\n%.2f", r.CpuUtilization),
		fmt.Sprintf("Average\n%.2f", r.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
