package align

import (
	"time"

	"github.com/subpair/subpair/internal/subtitle"
)

// DefaultThreshold is the widest start-time gap under which two entries
// from different tracks are treated as the same spoken moment. Releases of
// the same content are rarely frame-exact between languages, but half a
// second of drift almost always means the same line.
const DefaultThreshold = 500 * time.Millisecond

// Row pairs up to two entries that start at roughly the same moment. One
// of TextA/TextB may be empty, never both. When both tracks contribute,
// the timestamp comes from track A.
type Row struct {
	Start subtitle.Timestamp
	TextA string
	TextB string
}

// reports whether both tracks contributed to this row
func (r Row) Merged() bool {
	return r.TextA != "" && r.TextB != ""
}

// Merge walks both entry sequences with one cursor each and produces a
// single chronological row sequence. Entries whose start times are within
// threshold of each other land on one merged row; everything else becomes
// a solo row for whichever entry is earlier. Both inputs must be
// non-decreasing in start time; the pass never backtracks, so disordered
// input degrades silently (see CountDisordered).
func Merge(a, b []subtitle.Entry, threshold time.Duration) []Row {
	rows := make([]Row, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		diff := a[i].Start.Offset - b[j].Start.Offset
		if diff < 0 {
			diff = -diff
		}

		switch {
		case diff <= threshold:
			// track A's timestamp is authoritative for merged rows
			rows = append(rows, Row{
				Start: a[i].Start,
				TextA: a[i].Text,
				TextB: b[j].Text,
			})
			i++
			j++
		case a[i].Start.Offset < b[j].Start.Offset:
			rows = append(rows, Row{Start: a[i].Start, TextA: a[i].Text})
			i++
		default:
			rows = append(rows, Row{Start: b[j].Start, TextB: b[j].Text})
			j++
		}
	}

	for ; i < len(a); i++ {
		rows = append(rows, Row{Start: a[i].Start, TextA: a[i].Text})
	}
	for ; j < len(b); j++ {
		rows = append(rows, Row{Start: b[j].Start, TextB: b[j].Text})
	}

	return rows
}

// CountDisordered returns the number of adjacent entry pairs whose start
// times go backwards. A non-zero count means the track violates the
// non-decreasing precondition and alignment may pair the wrong lines.
func CountDisordered(entries []subtitle.Entry) int {
	count := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Start.Offset < entries[i-1].Start.Offset {
			count++
		}
	}
	return count
}
