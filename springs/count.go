package springs

// Counter counts arrangements. It keeps its table between calls to save
// allocations; every call starts from a cleared table, so results never
// depend on earlier calls. A Counter is not safe for concurrent use.
//
// The zero value is ready to use.
type Counter struct {
	// table[i*(len(runs)+1)+j] is the number of ways springs[i:] can
	// produce exactly runs[j:].
	table []int64
	// avail[i] is how many non-operational springs start at i.
	avail []int
	// need[j] is the shortest suffix that can hold runs[j:].
	need []int
}

// Count returns the number of ways to replace each Unknown spring in r with
// Operational or Damaged so that the maximal runs of Damaged springs have
// exactly the lengths r.Runs, in order.
func Count(r Record) int64 {
	var c Counter
	return c.Count(r)
}

// Count is like the package-level Count but reuses c's buffers.
func (c *Counter) Count(r Record) int64 {
	springs, runs := r.Springs, r.Runs
	n, m := len(springs), len(runs)
	stride := m + 1
	c.reset(n, m)

	c.avail[n] = 0
	for i := n - 1; i >= 0; i-- {
		if springs[i] == Operational {
			c.avail[i] = 0
		} else {
			c.avail[i] = c.avail[i+1] + 1
		}
	}
	c.need[m] = 0
	for j := m - 1; j >= 0; j-- {
		c.need[j] = c.need[j+1] + runs[j]
		if j < m-1 {
			c.need[j]++ // separator
		}
	}

	// Both cursors exhausted: the empty completion.
	c.table[n*stride+m] = 1
	for i := n - 1; i >= 0; i-- {
		s := springs[i]
		for j := 0; j <= m; j++ {
			if n-i < c.need[j] {
				// Too little pattern left for the remaining runs.
				continue
			}
			var ways int64
			// Operational here. A stretch of operational springs
			// passes the same count through, so all of its positions
			// share one value.
			if s != Damaged {
				ways += c.table[(i+1)*stride+j]
			}
			// The next run starts here. It must fit in the
			// non-operational springs starting at i and must not be
			// followed by a damaged one.
			if s != Operational && j < m {
				if l := runs[j]; c.avail[i] >= l && (i+l == n || springs[i+l] != Damaged) {
					next := min(i+l+1, n) // skip the separator
					ways += c.table[next*stride+j+1]
				}
			}
			c.table[i*stride+j] = ways
		}
	}
	return c.table[0]
}

func (c *Counter) reset(n, m int) {
	c.table = grow(c.table, (n+1)*(m+1))
	c.avail = grow(c.avail, n+1)
	c.need = grow(c.need, m+1)
}

// grow returns s resized to n zeroed elements, reusing its storage when it
// is big enough.
func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}
