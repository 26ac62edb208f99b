package orthtree_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/orthtree"
	"github.com/npillmayer/orthtree/geom"
	"github.com/npillmayer/orthtree/randbox"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Model-based tests: the tree has to agree with a brute-force O(n²) scan
// over its own registry, for every configuration and after every round of
// mutations. Workloads are seeded, so failures replay.

const propertySeed = 4711

var propertyConfigs = []orthtree.Config{
	{Dim: 2, GroupCount: 1},
	{Dim: 2, GroupCount: 4},
	{Dim: 2},
	{Dim: 2, GroupCount: 10000},
	{Dim: 2, GroupCount: 4, SharedValues: true},
	{Dim: 2, SharedValues: true},
	{Dim: 3, GroupCount: 4},
	{Dim: 3},
	{Dim: 3, GroupCount: 4, SharedValues: true},
}

func configLabel(cfg orthtree.Config) string {
	return fmt.Sprintf("dim=%d/group=%d/shared=%v", cfg.Dim, cfg.GroupCount, cfg.SharedValues)
}

func testArea(dim int) geom.Box[float64] {
	lo := make(geom.Point[float64], dim)
	hi := make(geom.Point[float64], dim)
	for i := range lo {
		lo[i] = -0.1
		hi[i] = 100.1
	}
	return geom.NewBox(lo, hi)
}

func TestIntersectRandomBoxes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, cfg := range propertyConfigs {
		t.Run(configLabel(cfg), func(t *testing.T) {
			area := testArea(cfg.Dim)
			gen := randbox.New(area, 12, propertySeed)
			tree, err := orthtree.New[int](area, cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if err := randbox.Fill(tree, gen, 0, 150); err != nil {
				t.Fatalf("Fill failed: %v", err)
			}
			verifyAgainstModel(t, tree)
			//
			// probe with query boxes the tree does not store
			for i := 0; i < 20; i++ {
				probe := gen.Box()
				hits := tree.FindIntersectedBy(probe)
				want := bruteIntersectedBy(tree, probe, -1)
				if !equalSets(hits, want) {
					t.Errorf("probe %v: tree found %v, model %v", probe, hits, want)
				}
			}
		})
	}
}

func TestAddDelRandomRounds(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, cfg := range propertyConfigs {
		t.Run(configLabel(cfg), func(t *testing.T) {
			area := testArea(cfg.Dim)
			gen := randbox.New(area, 12, propertySeed)
			rnd := rand.New(rand.NewSource(propertySeed))
			tree, err := orthtree.New[int](area, cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if err := randbox.Fill(tree, gen, 0, 100); err != nil {
				t.Fatalf("Fill failed: %v", err)
			}
			nextID := 100
			for round := 0; round < 8; round++ {
				// delete a random fifth of the population
				for _, val := range pickValues(tree, rnd, tree.Len()/5) {
					if err := tree.Del(val); err != nil {
						t.Fatalf("round %d: Del(%d) failed: %v", round, val, err)
					}
				}
				// relocate a random tenth
				for _, val := range pickValues(tree, rnd, tree.Len()/10) {
					if err := tree.Change(val, gen.Box()); err != nil {
						t.Fatalf("round %d: Change(%d) failed: %v", round, val, err)
					}
				}
				// and refill
				if err := randbox.Fill(tree, gen, nextID, 20); err != nil {
					t.Fatalf("round %d: Fill failed: %v", round, err)
				}
				nextID += 20
				verifyAgainstModel(t, tree)
			}
		})
	}
}

func TestDeleteDownToEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, cfg := range propertyConfigs {
		t.Run(configLabel(cfg), func(t *testing.T) {
			area := testArea(cfg.Dim)
			gen := randbox.New(area, 12, propertySeed)
			tree, err := orthtree.New[int](area, cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if err := randbox.Fill(tree, gen, 0, 80); err != nil {
				t.Fatalf("Fill failed: %v", err)
			}
			for val := 79; val >= 0; val-- {
				if err := tree.Del(val); err != nil {
					t.Fatalf("Del(%d) failed: %v", val, err)
				}
				if val%16 == 0 {
					verifyAgainstModel(t, tree)
				}
			}
			if tree.Len() != 0 {
				t.Errorf("tree should be empty, holds %d values", tree.Len())
			}
			if pairs := tree.FindIntersected(); len(pairs) != 0 {
				t.Errorf("empty tree reports pairs %v", pairs)
			}
		})
	}
}

// verifyAgainstModel checks structural invariants and compares every query
// the tree offers against a brute-force scan of the registry.
func verifyAgainstModel(t *testing.T, tree *orthtree.Tree[int, float64]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
	pairs := tree.FindIntersected()
	want := bruteForcePairs(tree)
	if !equalPairSets(pairs, want) {
		t.Fatalf("pair sets differ: tree found %d pairs, model %d", len(pairs), len(want))
	}
	for val := range tree.Values() {
		hits, err := tree.FindIntersectedWith(val)
		if err != nil {
			t.Fatalf("FindIntersectedWith(%d) failed: %v", val, err)
		}
		box, err := tree.GetBox(val)
		if err != nil {
			t.Fatalf("GetBox(%d) failed: %v", val, err)
		}
		if !equalSets(hits, bruteIntersectedBy(tree, box, val)) {
			t.Fatalf("FindIntersectedWith(%d) disagrees with model", val)
		}
	}
}

func bruteForcePairs(tree *orthtree.Tree[int, float64]) [][2]int {
	type entry struct {
		val int
		box geom.Box[float64]
	}
	var entries []entry
	for v, b := range tree.Values() {
		entries = append(entries, entry{val: v, box: b})
	}
	var pairs [][2]int
	for i, e1 := range entries {
		for _, e2 := range entries[i+1:] {
			if e1.box.Intersect(e2.box) {
				pairs = append(pairs, [2]int{e1.val, e2.val})
			}
		}
	}
	return pairs
}

// bruteIntersectedBy scans the registry for boxes intersecting the probe,
// excluding the value with identity exclude.
func bruteIntersectedBy(tree *orthtree.Tree[int, float64], probe geom.Box[float64], exclude int) []int {
	var hits []int
	for v, b := range tree.Values() {
		if v != exclude && probe.Intersect(b) {
			hits = append(hits, v)
		}
	}
	return hits
}

func pickValues(tree *orthtree.Tree[int, float64], rnd *rand.Rand, n int) []int {
	all := make([]int, 0, tree.Len())
	for v := range tree.Values() {
		all = append(all, v)
	}
	sort.Ints(all) // map order is random, keep the workload replayable
	rnd.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func equalSets(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	set := make(map[int]struct{}, len(got))
	for _, v := range got {
		set[v] = struct{}{}
	}
	for _, v := range want {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func equalPairSets(got, want [][2]int) bool {
	norm := func(p [2]int) [2]int {
		if p[0] > p[1] {
			return [2]int{p[1], p[0]}
		}
		return p
	}
	if len(got) != len(want) {
		return false
	}
	set := make(map[[2]int]struct{}, len(got))
	for _, p := range got {
		set[norm(p)] = struct{}{}
	}
	if len(set) != len(got) {
		return false
	}
	for _, p := range want {
		if _, ok := set[norm(p)]; !ok {
			return false
		}
	}
	return true
}
