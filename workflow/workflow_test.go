package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
`

func TestParseWorkflow(t *testing.T) {
	got, err := ParseWorkflow("qqz{s>2770:qs,m<1801:hdj,R}")
	require.NoError(t, err)
	assert.Equal(t, Workflow{
		Name: "qqz",
		Rules: []Rule{
			{Cat: S, Op: '>', Value: 2770, Target: "qs"},
			{Cat: M, Op: '<', Value: 1801, Target: "hdj"},
			{Target: "R"},
		},
	}, got)

	for _, bad := range []string{
		"qqz",
		"{A}",
		"qqz{s>2770:qs}",
		"qqz{q>1:A,R}",
		"qqz{s=1:A,R}",
		"qqz{s>x:A,R}",
		"qqz{s>1:,R}",
		"qqz{s>1:A,}",
	} {
		_, err := ParseWorkflow(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePart(t *testing.T) {
	got, err := ParsePart("{x=787,m=2655,a=1222,s=2876}")
	require.NoError(t, err)
	assert.Equal(t, Part{787, 2655, 1222, 2876}, got)
	assert.Equal(t, 7540, got.Rating())

	for _, bad := range []string{
		"x=787,m=2655,a=1222,s=2876",
		"{x=787,m=2655,a=1222}",
		"{x=787,m=2655,a=1222,q=1}",
		"{x=787,m=2655,a=1222,s=}",
	} {
		_, err := ParsePart(bad)
		assert.Error(t, err, bad)
	}
}

func TestSystem(t *testing.T) {
	sys, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sys.Workflows, 11)
	require.Len(t, sys.Parts, 5)

	var accepted []bool
	for _, p := range sys.Parts {
		accepted = append(accepted, sys.Accepts(p))
	}
	assert.Equal(t, []bool{true, false, true, false, true}, accepted)
	assert.Equal(t, 19114, sys.AcceptedRatings())
	assert.Equal(t, int64(167409079868000), sys.Combinations(1, 4000))
}

func TestCombinationsSmall(t *testing.T) {
	sys, err := Parse(strings.NewReader("in{x<3:A,m>2:R,A}\n\n"))
	require.NoError(t, err)

	var want int64
	for x := 1; x <= 4; x++ {
		for m := 1; m <= 4; m++ {
			for a := 1; a <= 4; a++ {
				for s := 1; s <= 4; s++ {
					if sys.Accepts(Part{x, m, a, s}) {
						want++
					}
				}
			}
		}
	}
	assert.Equal(t, want, sys.Combinations(1, 4))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"px{a<2006:A,R}\n\n{x=1,m=1,a=1,s=1}\n",
		"in{a<2006:nope,R}\n",
		"in{A}\nin{R}\n",
		"in{A}\n\n{x=1}\n",
		"in{x<5:ab,R}\nab{cd}\ncd{m>3:in,A}\n",
	} {
		_, err := Parse(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestCyclicSystem(t *testing.T) {
	sys := &System{Workflows: map[string]Workflow{
		Start: {Name: Start, Rules: []Rule{{Cat: X, Op: '<', Value: 3, Target: "lp"}, {Target: Accepted}}},
		"lp":  {Name: "lp", Rules: []Rule{{Target: Start}}},
	}}
	assert.False(t, sys.Accepts(Part{1, 1, 1, 1}))
	assert.True(t, sys.Accepts(Part{3, 1, 1, 1}))
	assert.Equal(t, int64(2*4*4*4), sys.Combinations(1, 4))
}
