package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DumpCSV appends one row to w in the column order fixed by spec.md §6:
// algorithm, threads, input, seed, cost, steps, read seconds, search
// seconds, reconstruction seconds, nodes visited, path.
func (c *Collector) DumpCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	record := []string{
		c.Algorithm,
		strconv.Itoa(c.Threads),
		c.Input,
		strconv.FormatUint(c.Seed, 10),
		strconv.FormatFloat(c.Cost, 'f', -1, 64),
		strconv.Itoa(c.Steps),
		strconv.FormatFloat(c.readSeconds, 'f', 9, 64),
		strconv.FormatFloat(c.searchSeconds, 'f', 9, 64),
		strconv.FormatFloat(c.reconstructSeconds, 'f', 9, 64),
		strconv.Itoa(c.NodesVisited),
		pathString(c.Path),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("stats: write csv row: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

func pathString(path []uint32) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, "-")
}
