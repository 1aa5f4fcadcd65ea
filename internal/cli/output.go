package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/advent/pkg/pipeline"
)

// writeResults writes solve results in the given format.
func writeResults(w io.Writer, format string, results []*pipeline.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(w, results)
		return nil
	}
}

// writeText prints results grouped under a heading per day.
//
//	Day 5  Print Queue
//	  Part 1  143  fresh
//	  Part 2  123  cached
func writeText(w io.Writer, results []*pipeline.Result) {
	width := 0
	for _, r := range results {
		width = max(width, len(strconv.Itoa(r.Answer)))
	}
	day := 0
	for _, r := range results {
		if r.Day != day {
			if day != 0 {
				fmt.Fprintln(w)
			}
			day = r.Day
			fmt.Fprintf(w, "%s  %s\n", StyleTitle.Render(fmt.Sprintf("Day %d", r.Day)), StyleValue.Render(r.Title))
		}
		fmt.Fprintf(w, "  %s  %s  %s\n",
			StyleDim.Render(fmt.Sprintf("Part %d", r.Part)),
			StyleNumber.Render(fmt.Sprintf("%*d", width, r.Answer)),
			cacheStatus(r.Cached))
	}
}
