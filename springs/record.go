// Package springs counts the arrangements of damaged springs consistent with
// a condition record.
package springs

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Spring is the condition of one spring in a record.
type Spring byte

const (
	Operational Spring = '.'
	Damaged     Spring = '#'
	Unknown     Spring = '?'
)

// UnfoldFactor is how many copies Unfold makes for the extended records.
const UnfoldFactor = 5

var (
	ErrInvalidSymbol = errors.New("invalid spring symbol")
	ErrInvalidRun    = errors.New("invalid run length")
)

// Record is one line of the condition report: the springs and the lengths of
// the contiguous damaged runs, in order.
type Record struct {
	Springs []Spring
	Runs    []int
}

// NewRecord returns the record for a pattern of '.', '#' and '?' and its run
// lengths.
func NewRecord(pattern string, runs ...int) (Record, error) {
	var r Record
	for i := 0; i < len(pattern); i++ {
		switch s := Spring(pattern[i]); s {
		case Operational, Damaged, Unknown:
			r.Springs = append(r.Springs, s)
		default:
			return Record{}, errors.Wrapf(ErrInvalidSymbol, "%q at %d", pattern[i], i)
		}
	}
	for _, n := range runs {
		if n <= 0 {
			return Record{}, errors.Wrapf(ErrInvalidRun, "%d", n)
		}
	}
	r.Runs = slices.Clone(runs)
	return r, nil
}

// ParseRecord parses a line like "???.### 1,1,3".
func ParseRecord(line string) (Record, error) {
	pattern, list, ok := strings.Cut(line, " ")
	if !ok {
		return Record{}, errors.Errorf("missing run lengths in %q", line)
	}
	var runs []int
	if list != "" {
		for _, f := range strings.Split(list, ",") {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Record{}, errors.Wrapf(ErrInvalidRun, "%q", f)
			}
			runs = append(runs, n)
		}
	}
	return NewRecord(pattern, runs...)
}

// ParseRecords parses one record per line of r. Blank lines are skipped.
func ParseRecords(r io.Reader) ([]Record, error) {
	var out []Record
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		out = append(out, rec)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading records")
	}
	return out, nil
}

// String returns r in its input form.
func (r Record) String() string {
	var sb strings.Builder
	for _, s := range r.Springs {
		sb.WriteByte(byte(s))
	}
	sb.WriteByte(' ')
	for i, n := range r.Runs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Unfold returns n copies of the springs joined by Unknown, with the runs
// repeated n times.
func (r Record) Unfold(n int) Record {
	var out Record
	for i := 0; i < n; i++ {
		if i > 0 {
			out.Springs = append(out.Springs, Unknown)
		}
		out.Springs = append(out.Springs, r.Springs...)
		out.Runs = append(out.Runs, r.Runs...)
	}
	return out
}
