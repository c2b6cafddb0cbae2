// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/radar/radar"
)

// runOutput is what detect and demo print, as a table or as JSON.
type runOutput struct {
	RunID      string            `json:"run_id"`
	Backend    string            `json:"backend"`
	Iterations int               `json:"iterations"`
	Converged  bool              `json:"converged"`
	Objective  float64           `json:"objective"`
	Trace      []float64         `json:"objective_trace"`
	Ranking    []radar.NodeScore `json:"ranking"`
	Scores     []float64         `json:"scores"`
}

func newRunOutput(runID, backend string, rep *radar.Report) runOutput {
	trace := rep.Result.Objective
	return runOutput{
		RunID:      runID,
		Backend:    backend,
		Iterations: rep.Result.Iterations,
		Converged:  rep.Result.Converged,
		Objective:  trace[len(trace)-1],
		Trace:      trace,
		Ranking:    rep.Ranking,
		Scores:     rep.Scores,
	}
}

// writeOutput prints out in the requested format.
func writeOutput(w io.Writer, format string, out runOutput) error {
	switch format {
	case formatTable:
		return writeTable(w, out)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return validateFormat(format)
	}
}

func validateFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatJSON)
	}
	return nil
}
