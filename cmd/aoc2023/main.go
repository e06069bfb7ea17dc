package main

import (
	"bytes"
	_ "embed"

	"github.com/dustin/go-humanize"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/lagoon"
	"github.com/maisem/aoc2023/platform"
	"github.com/maisem/aoc2023/springs"
	"github.com/maisem/aoc2023/workflow"
)

func main() {
	memo := aoc.MustGet(springs.NewMemo(1 << 12))
	defer memo.Close()
	aoc.Run(2023, source, &solver{memo: memo})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle

	memo *springs.Memo
}

func (s solver) records() []springs.Record {
	return aoc.MustGet(springs.ParseRecords(bytes.NewReader(s.Input())))
}

func (s solver) arrangements(records []springs.Record) int64 {
	counts := aoc.Parallel(records, s.memo.Count)
	for i, r := range records {
		s.Debugf("%v: %s", r, humanize.Comma(counts[i]))
	}
	return aoc.Sum(counts...)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return s.arrangements(s.records())
}

// want=525152
func (s solver) D12p2() any {
	records := s.records()
	for i, r := range records {
		records[i] = r.Unfold(springs.UnfoldFactor)
	}
	return s.arrangements(records)
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := aoc.MustGet(platform.Parse(s.Lines()))
	platform.Tilt(g, aoc.Up)
	return platform.Load(g)
}

// want=64
func (s solver) D14p2() any {
	g := aoc.MustGet(platform.Parse(s.Lines()))
	return platform.SpinLoad(g, 1_000_000_000)
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	return lagoon.Area(aoc.MustGet(lagoon.ParsePlan(s.Lines(), lagoon.ParseInstruction)))
}

// want=952408144115
func (s solver) D18p2() any {
	return lagoon.Area(aoc.MustGet(lagoon.ParsePlan(s.Lines(), lagoon.ParseHexInstruction)))
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
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
*/
func (s solver) D19p1() any {
	sys := aoc.MustGet(workflow.Parse(bytes.NewReader(s.Input())))
	return sys.AcceptedRatings()
}

// want=167409079868000
func (s solver) D19p2() any {
	sys := aoc.MustGet(workflow.Parse(bytes.NewReader(s.Input())))
	return sys.Combinations(1, 4000)
}
