package framework

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	passMarker = color.New(color.FgGreen).SprintFunc()
	failMarker = color.New(color.FgRed).SprintFunc()
)

// PrintResults renders the per-case table, the run totals, and the list of
// failures. This is the human-readable half of the harness's output contract;
// the machine-readable half is the process exit code derived from OK().
func PrintResults(w io.Writer, results Results) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Test", "Result", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, r := range results.Tests {
		verdict := passMarker("PASS")
		if r.Failed {
			verdict = failMarker("FAIL")
		}
		table.Append([]string{r.TestID.String(), verdict, r.Message()})
	}
	table.Render()
	fmt.Fprintln(w)

	s := results.Summary()
	fmt.Fprintf(w, "Total tests: %d\n", s.Total)
	fmt.Fprintf(w, "Passed:      %d\n", s.Passed)
	fmt.Fprintf(w, "Failed:      %d\n", s.Failed)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", s.SuccessRate)

	if !results.OK() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, failMarker("FAILED TESTS:"))
		for _, f := range results.Failures {
			fmt.Fprintf(w, "  - %s: %s\n", f.TestID, f.Message())
			keys := make([]string, 0, len(f.Details))
			for k := range f.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "      %s: %v\n", k, f.Details[k])
			}
		}
	}
}
