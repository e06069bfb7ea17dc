package workflow

import aoc "github.com/maisem/aoc2023"

// Range is an inclusive range of ratings. It is empty if Lo > Hi.
type Range struct {
	Lo, Hi int
}

func (r Range) Len() int {
	if r.Lo > r.Hi {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// split divides r into the ratings that satisfy "op v" and the rest.
func (r Range) split(op byte, v int) (in, out Range) {
	switch op {
	case '<':
		return Range{r.Lo, min(r.Hi, v-1)}, Range{max(r.Lo, v), r.Hi}
	case '>':
		return Range{max(r.Lo, v+1), r.Hi}, Range{r.Lo, min(r.Hi, v)}
	}
	return r, Range{1, 0}
}

// PartRange is a box of parts, one Range per category.
type PartRange [4]Range

func (pr PartRange) Len() int64 {
	n := int64(1)
	for _, r := range pr {
		n *= int64(r.Len())
	}
	return n
}

// Combinations returns how many distinct parts with every rating in
// [lo, hi] are accepted. Parts that would go around a cycle of workflows
// are not counted.
func (s *System) Combinations(lo, hi int) int64 {
	type item struct {
		name string
		pr   PartRange
		hops int
	}
	all := Range{lo, hi}
	q := aoc.NewQueue(item{Start, PartRange{all, all, all, all}, 0})
	var total int64
	q.While(func(it item) bool {
		switch it.name {
		case Accepted:
			total += it.pr.Len()
			return true
		case Rejected:
			return true
		}
		if it.hops > len(s.Workflows) {
			// Only a cycle visits more workflows than there are.
			return true
		}
		pr := it.pr
		for _, r := range s.Workflows[it.name].Rules {
			if r.Op == 0 {
				q.Push(item{r.Target, pr, it.hops + 1})
				break
			}
			in, out := pr[r.Cat].split(r.Op, r.Value)
			if in.Len() > 0 {
				next := pr
				next[r.Cat] = in
				q.Push(item{r.Target, next, it.hops + 1})
			}
			if out.Len() == 0 {
				break
			}
			pr[r.Cat] = out
		}
		return true
	})
	return total
}
