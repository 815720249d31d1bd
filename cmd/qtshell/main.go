// Command qtshell serves a float64 quadtree over TELNET.
//
//	qtshell -addr :3456 -boundary 0,1000,0,1000
//	telnet localhost 3456
//	insert 10 20; search 0 100 0 100;
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/reiver/go-telnet"
	"github.com/robert-butts/quadtree/v2"
	"github.com/robert-butts/quadtree/v2/internal/shell"
)

func main() {
	addr := flag.String("addr", ":3456", "TELNET listen address")
	bounds := flag.String("boundary", "0,1000,0,1000", "xmin,xmax,ymin,ymax of the tree")
	capacity := flag.Int("capacity", quadtree.DefaultCapacity, "quadtree node capacity")
	verbose := flag.Bool("v", false, "trace at debug level")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	b, err := parseBoundary(*bounds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *capacity < 1 {
		fmt.Fprintln(os.Stderr, "capacity must be positive")
		os.Exit(2)
	}
	handler := &shell.ConnectionHandler{Store: shell.NewStore(b, *capacity)}
	gtrace.CoreTracer.Infof("qtshell: serving %v on %s", b, *addr)
	if err := telnet.ListenAndServe(*addr, handler); err != nil {
		gtrace.CoreTracer.Errorf("qtshell: %v", err)
		os.Exit(1)
	}
}

func parseBoundary(s string) (quadtree.Boundary[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quadtree.Boundary[float64]{}, fmt.Errorf("boundary %q: expected xmin,xmax,ymin,ymax", s)
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return quadtree.Boundary[float64]{}, fmt.Errorf("boundary %q: %w", s, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return quadtree.Boundary[float64]{}, fmt.Errorf("boundary %q: %v is not finite", s, f)
		}
		v[i] = f
	}
	if v[0] > v[1] || v[2] > v[3] {
		return quadtree.Boundary[float64]{}, fmt.Errorf("boundary %q: min exceeds max", s)
	}
	return quadtree.Bounds(v[0], v[1], v[2], v[3]), nil
}
