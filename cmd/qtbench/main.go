/*
Command qtbench compares quadtree searches against a linear scan and an
R-tree.

For growing numbers of random points it fills all three indexes with the
same points, runs the same random searches against each, and prints the
time per search. Result counts must agree; a mismatch is reported and makes
the command exit non-zero.

	qtbench -from 200 -to 5000 -step 200 -capacity 64
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/robert-butts/quadtree/v2"
	"github.com/robert-butts/quadtree/v2/internal/baseline"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type options struct {
	from, to, step int
	capacity       int
	queries        int
	extent         int
	window         int
	seed           int64
}

func main() {
	var opts options
	flag.IntVar(&opts.from, "from", 200, "smallest number of points")
	flag.IntVar(&opts.to, "to", 5000, "largest number of points")
	flag.IntVar(&opts.step, "step", 200, "increment of the number of points")
	flag.IntVar(&opts.capacity, "capacity", quadtree.DefaultCapacity, "quadtree node capacity")
	flag.IntVar(&opts.queries, "queries", 1000, "searches per index and round")
	flag.IntVar(&opts.extent, "extent", 10000, "points are drawn from [0,extent)x[0,extent)")
	flag.IntVar(&opts.window, "window", 50, "width and height of the search boundary")
	flag.Int64Var(&opts.seed, "seed", time.Now().UnixNano(), "random seed")
	verbose := flag.Bool("v", false, "trace at debug level")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if err := run(opts); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.from < 1 || opts.step < 1 || opts.to < opts.from {
		return fmt.Errorf("invalid point range %d..%d step %d", opts.from, opts.to, opts.step)
	}
	if opts.capacity < 1 || opts.queries < 1 || opts.extent < 1 || opts.window < 1 {
		return fmt.Errorf("capacity, queries, extent and window must be positive")
	}
	T().Infof("qtbench: seed %d, capacity %d", opts.seed, opts.capacity)
	rng := rand.New(rand.NewSource(opts.seed))
	header := color.New(color.Bold)
	header.Printf("%8s %12s %12s %12s  %s\n", "points", "quadtree", "naive", "rtree", "shape")
	mismatches := 0
	for at := opts.from; at <= opts.to; at += opts.step {
		r := measure(rng, opts, at)
		fast := color.New(color.FgGreen).SprintFunc()
		slow := color.New(color.FgYellow).SprintFunc()
		qt := fmt.Sprintf("%12s", r.times[0])
		if r.times[0] <= r.times[1] {
			qt = fast(qt)
		} else {
			qt = slow(qt)
		}
		fmt.Printf("%8d %s %12s %12s  %s\n", at, qt, r.times[1], r.times[2], r.stats)
		if r.mismatch != "" {
			mismatches++
			color.New(color.FgRed).Println("  " + r.mismatch)
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d rounds returned differing results", mismatches)
	}
	return nil
}

type result struct {
	times    [3]time.Duration // per search: quadtree, naive, rtree
	stats    quadtree.Stats
	mismatch string
}

func measure(rng *rand.Rand, opts options, points int) result {
	extent := float64(opts.extent)
	root := quadtree.Bounds(0.0, extent, 0.0, extent)
	qt := quadtree.WithCapacity(opts.capacity, root)
	indexes := []baseline.Index[float64]{qt, baseline.NewNaive(root), baseline.NewRTree(root)}
	for i := 0; i < points; i++ {
		p := quadtree.Pt(float64(rng.Intn(opts.extent)), float64(rng.Intn(opts.extent)))
		for _, idx := range indexes {
			idx.Insert(p)
		}
	}
	searches := make([]quadtree.Boundary[float64], opts.queries)
	for i := range searches {
		x, y := float64(rng.Intn(opts.extent)), float64(rng.Intn(opts.extent))
		w := float64(opts.window)
		searches[i] = quadtree.Bounds(x, x+w, y, y+w)
	}
	var r result
	var found [3]int
	for i, idx := range indexes {
		start := time.Now()
		for _, b := range searches {
			found[i] += len(idx.Search(b))
		}
		r.times[i] = time.Since(start) / time.Duration(len(searches))
	}
	r.stats = qt.Stats()
	if found[0] != found[1] || found[0] != found[2] {
		r.mismatch = fmt.Sprintf("found quadtree=%d naive=%d rtree=%d", found[0], found[1], found[2])
	}
	T().Debugf("qtbench: %d points, %d found per index", points, found[0])
	return r
}
