package main

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMeasureAgrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quadtree")
	defer teardown()
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	opts := options{capacity: 4, queries: 50, extent: 200, window: 30}
	rng := rand.New(rand.NewSource(5))
	for _, points := range []int{10, 500, 2000} {
		r := measure(rng, opts, points)
		if r.mismatch != "" {
			t.Errorf("%d points: %s", points, r.mismatch)
		}
		if r.stats.Points == 0 || r.stats.Points > points {
			t.Errorf("%d points: unexpected stats %v", points, r.stats)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quadtree")
	defer teardown()
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	if err := run(options{from: 10, to: 5, step: 1, capacity: 4, queries: 1, extent: 10, window: 1}); err == nil {
		t.Errorf("expected an error for an empty point range")
	}
	if err := run(options{from: 1, to: 5, step: 1, capacity: 0, queries: 1, extent: 10, window: 1}); err == nil {
		t.Errorf("expected an error for capacity 0")
	}
}
