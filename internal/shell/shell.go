/*
Package shell serves a float64 quadtree over a line oriented command
protocol. Commands are terminated by ';':

	insert X Y;
	search XMIN XMAX YMIN YMAX;
	size;
	stats;
	help;

A Store is shared by all connections of a server.
*/
package shell

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/robert-butts/quadtree/v2"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrSyntax         = errors.New("syntax error")
)

const usage = `insert X Y;                  add a point
search XMIN XMAX YMIN YMAX;  list points in [XMIN,XMAX)x[YMIN,YMAX)
size;                        number of stored points
stats;                       shape of the tree
help;                        this text`

// tracer writes to trace with key 'quadtree'
func tracer() tracing.Trace {
	return tracing.Select("quadtree")
}

// Store guards a quadtree for use by concurrent connections. Inserts are
// exclusive, searches may run in parallel.
type Store struct {
	mutex sync.RWMutex
	tree  *quadtree.Quadtree[float64]
}

func NewStore(b quadtree.Boundary[float64], capacity int) *Store {
	return &Store{tree: quadtree.WithCapacity(capacity, b)}
}

func (s *Store) Insert(p quadtree.Point[float64]) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tree.Insert(p)
}

func (s *Store) Search(b quadtree.Boundary[float64]) []quadtree.Point[float64] {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Search(b)
}

func (s *Store) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Size()
}

func (s *Store) Stats() quadtree.Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Stats()
}

// Execute runs a single command, without its terminating ';', and returns
// the reply.
func (s *Store) Execute(command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrSyntax)
	}
	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "insert":
		coords, err := parseCoords(args, 2)
		if err != nil {
			return "", fmt.Errorf("insert: %w", err)
		}
		p := quadtree.Pt(coords[0], coords[1])
		if !s.Insert(p) {
			return "rejected " + p.String(), nil
		}
		return "ok", nil
	case "search":
		coords, err := parseCoords(args, 4)
		if err != nil {
			return "", fmt.Errorf("search: %w", err)
		}
		found := s.Search(quadtree.Bounds(coords[0], coords[1], coords[2], coords[3]))
		sort.Slice(found, func(i, j int) bool {
			if found[i].X != found[j].X {
				return found[i].X < found[j].X
			}
			return found[i].Y < found[j].Y
		})
		var b strings.Builder
		fmt.Fprintf(&b, "%d points", len(found))
		for _, p := range found {
			b.WriteString("\n" + p.String())
		}
		return b.String(), nil
	case "size":
		if len(args) != 0 {
			return "", fmt.Errorf("size: %w: no arguments expected", ErrSyntax)
		}
		return strconv.Itoa(s.Size()), nil
	case "stats":
		return s.Stats().String(), nil
	case "help":
		return usage, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
}

func parseCoords(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", ErrSyntax, n, len(args))
	}
	coords := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		coords[i] = v
	}
	return coords, nil
}
