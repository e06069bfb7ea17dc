// Package workflow sorts machine parts through a system of workflows.
package workflow

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2023"
)

// Category is one of the four ratings of a part.
type Category int

const (
	X Category = iota
	M
	A
	S
)

var categories = map[byte]Category{'x': X, 'm': M, 'a': A, 's': S}

const (
	Start    = "in"
	Accepted = "A"
	Rejected = "R"
)

// Part holds the ratings of a part, indexed by Category.
type Part [4]int

// Rating returns the sum of all ratings of p.
func (p Part) Rating() int {
	return aoc.Sum(p[:]...)
}

// Rule sends a part to Target. If Op is '<' or '>' the rule only applies
// when the part's Cat rating compares that way to Value; if Op is 0 it
// always applies.
type Rule struct {
	Cat    Category
	Op     byte
	Value  int
	Target string
}

func (r Rule) matches(p Part) bool {
	switch r.Op {
	case '<':
		return p[r.Cat] < r.Value
	case '>':
		return p[r.Cat] > r.Value
	}
	return true
}

type Workflow struct {
	Name  string
	Rules []Rule
}

// System is the parsed puzzle input.
type System struct {
	Workflows map[string]Workflow
	Parts     []Part
}

// ParseWorkflow parses a line like "px{a<2006:qkq,m>2090:A,rfg}".
func ParseWorkflow(s string) (Workflow, error) {
	name, body, ok := strings.Cut(s, "{")
	if !ok || name == "" || !strings.HasSuffix(body, "}") {
		return Workflow{}, errors.Errorf("bad workflow %q", s)
	}
	w := Workflow{Name: name}
	for _, rs := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		cond, target, ok := strings.Cut(rs, ":")
		if !ok {
			if rs == "" {
				return Workflow{}, errors.Errorf("empty rule in %q", s)
			}
			w.Rules = append(w.Rules, Rule{Target: rs})
			continue
		}
		if len(cond) < 3 || target == "" {
			return Workflow{}, errors.Errorf("bad rule %q in %q", rs, s)
		}
		c, ok := categories[cond[0]]
		if !ok {
			return Workflow{}, errors.Errorf("unknown category %q in %q", cond[0], s)
		}
		op := cond[1]
		if op != '<' && op != '>' {
			return Workflow{}, errors.Errorf("unknown operator %q in %q", op, s)
		}
		v, err := strconv.Atoi(cond[2:])
		if err != nil {
			return Workflow{}, errors.Wrapf(err, "rule %q", rs)
		}
		w.Rules = append(w.Rules, Rule{Cat: c, Op: op, Value: v, Target: target})
	}
	if last := w.Rules[len(w.Rules)-1]; last.Op != 0 {
		return Workflow{}, errors.Errorf("workflow %q has no fallback rule", name)
	}
	return w, nil
}

// ParsePart parses a line like "{x=787,m=2655,a=1222,s=2876}".
func ParsePart(s string) (Part, error) {
	body, ok := strings.CutPrefix(s, "{")
	if !ok || !strings.HasSuffix(body, "}") {
		return Part{}, errors.Errorf("bad part %q", s)
	}
	var p Part
	var seen [4]bool
	for _, f := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		k, v, ok := strings.Cut(f, "=")
		if !ok || len(k) != 1 {
			return Part{}, errors.Errorf("bad rating %q in %q", f, s)
		}
		c, ok := categories[k[0]]
		if !ok {
			return Part{}, errors.Errorf("unknown category %q in %q", k, s)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Part{}, errors.Wrapf(err, "rating %q", f)
		}
		p[c] = n
		seen[c] = true
	}
	for c, ok := range seen {
		if !ok {
			return Part{}, errors.Errorf("part %q misses category %d", s, c)
		}
	}
	return p, nil
}

// Parse reads the workflows, a blank line and the parts. Every rule must
// target a defined workflow, Accepted or Rejected.
func Parse(r io.Reader) (*System, error) {
	sys := &System{Workflows: map[string]Workflow{}}
	s := bufio.NewScanner(r)
	inParts := false
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		switch {
		case line == "":
			if len(sys.Workflows) > 0 {
				inParts = true
			}
		case inParts:
			p, err := ParsePart(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", n)
			}
			sys.Parts = append(sys.Parts, p)
		default:
			w, err := ParseWorkflow(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", n)
			}
			if _, dup := sys.Workflows[w.Name]; dup {
				return nil, errors.Errorf("line %d: duplicate workflow %q", n, w.Name)
			}
			sys.Workflows[w.Name] = w
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading system")
	}
	if _, ok := sys.Workflows[Start]; !ok {
		return nil, errors.Errorf("no %q workflow", Start)
	}
	for _, w := range sys.Workflows {
		for _, r := range w.Rules {
			if r.Target == Accepted || r.Target == Rejected {
				continue
			}
			if _, ok := sys.Workflows[r.Target]; !ok {
				return nil, errors.Errorf("workflow %q sends to unknown %q", w.Name, r.Target)
			}
		}
	}
	if err := sys.checkAcyclic(); err != nil {
		return nil, err
	}
	return sys, nil
}

// checkAcyclic returns an error if some workflow can send a part back to
// itself.
func (s *System) checkAcyclic() error {
	const (
		unseen = iota
		open
		done
	)
	state := make(map[string]int, len(s.Workflows))
	var visit func(name string) error
	visit = func(name string) error {
		if name == Accepted || name == Rejected {
			return nil
		}
		switch state[name] {
		case open:
			return errors.Errorf("workflow %q is part of a cycle", name)
		case done:
			return nil
		}
		state[name] = open
		for _, r := range s.Workflows[name].Rules {
			if err := visit(r.Target); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}
	for name := range s.Workflows {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// Accepts reports whether p ends up accepted, starting from the "in"
// workflow. A part that comes back to a workflow it already went through,
// or reaches an undefined one, is not accepted.
func (s *System) Accepts(p Part) bool {
	name := Start
	visited := map[string]bool{}
	for {
		switch name {
		case Accepted:
			return true
		case Rejected:
			return false
		}
		if visited[name] {
			return false
		}
		visited[name] = true
		for _, r := range s.Workflows[name].Rules {
			if r.matches(p) {
				name = r.Target
				break
			}
		}
	}
}

// AcceptedRatings returns the sum of the ratings of the accepted parts.
func (s *System) AcceptedRatings() int {
	var sum int
	for _, p := range s.Parts {
		if s.Accepts(p) {
			sum += p.Rating()
		}
	}
	return sum
}
