package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDumpCSVColumnOrder(t *testing.T) {
	c := New("hdastar-mp", 4, "graph.txt", 42)
	c.Finish(3.0, []uint32{0, 1, 2, 3}, 7)

	var buf strings.Builder
	require.NoError(t, c.DumpCSV(&buf))

	require.Equal(t, "hdastar-mp,4,graph.txt,42,3,4,0.000000000,0.000000000,0.000000000,7,0-1-2-3\n", buf.String())
}

func TestPathStringEmpty(t *testing.T) {
	require.Equal(t, "", pathString(nil))
}

func TestPhaseTimingsAreRecordedInCSV(t *testing.T) {
	c := New("hdastar-sm", 2, "graph.txt", 1)

	ctx := c.BeginRead(context.Background())
	require.NotNil(t, ctx)
	time.Sleep(time.Millisecond)
	c.EndRead()

	c.BeginSearch(context.Background())
	time.Sleep(time.Millisecond)
	c.EndSearch()
	c.RecordEngineTimings(0.25, 0.05)

	c.Finish(1.5, []uint32{0, 1}, 2)

	var buf strings.Builder
	require.NoError(t, c.DumpCSV(&buf))

	fields := strings.Split(strings.TrimSpace(buf.String()), ",")
	require.Equal(t, "1.5", fields[4])
	require.NotEqual(t, "0.000000000", fields[6]) // read seconds
	require.Equal(t, "0.250000000", fields[7])    // search seconds
	require.Equal(t, "0.050000000", fields[8])    // reconstruction seconds
}
