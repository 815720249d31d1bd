package shell

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/robert-butts/quadtree/v2"
)

func newTestStore() *Store {
	return NewStore(quadtree.Bounds(0.0, 100.0, 0.0, 100.0), 4)
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quadtree")
	defer teardown()
	//
	s := newTestStore()
	for _, tc := range []struct {
		command, want string
	}{
		{"insert 1 2", "ok"},
		{"insert 2 2", "ok"},
		{"INSERT 2.5 3", "ok"},
		{"insert 2 2", "ok"},
		{"insert 100 5", "rejected [100,5]"},
		{"size", "3"},
		{"search 0 3 0 3", "2 points\n[1,2]\n[2,2]"},
		{"search 50 60 50 60", "0 points"},
		{"stats", "3 points in 1 leaves, 0 internal nodes, depth 1"},
	} {
		got, err := s.Execute(tc.command)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.command, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.command, tc.want, got)
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	s := newTestStore()
	for _, tc := range []struct {
		command string
		want    error
	}{
		{"", ErrSyntax},
		{"delete 1 2", ErrUnknownCommand},
		{"insert 1", ErrSyntax},
		{"insert a b", ErrSyntax},
		{"search 0 1 2", ErrSyntax},
		{"size 3", ErrSyntax},
	} {
		_, err := s.Execute(tc.command)
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v, got %v", tc.command, tc.want, err)
		}
	}
	if s.Size() != 0 {
		t.Errorf("failed commands must not insert, size is %d", s.Size())
	}
}

func TestServeTELNET(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quadtree")
	defer teardown()
	//
	h := &ConnectionHandler{Store: newTestStore()}
	in := strings.NewReader("insert 1 1;\r\ninsert 7\n 7;size;bogus;search 0 5 0 5;")
	var out bytes.Buffer
	h.ServeTELNET(nil, &out, in)
	want := "ok\nok\n2\nerror: unknown command: bogus\n1 points\n[1,1]\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) {
	return 0, errors.New("connection closed")
}

func TestServeTELNETStopsWhenClientGone(t *testing.T) {
	h := &ConnectionHandler{Store: newTestStore()}
	in := strings.NewReader("insert 1 1;insert 2 2;insert 3 3;")
	h.ServeTELNET(nil, closedWriter{}, in)
	if n := h.Store.Size(); n != 1 {
		t.Errorf("expected handler to stop after the first failed reply, size is %d", n)
	}
}

func TestStoreConcurrentSearch(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 100; i++ {
		s.Insert(quadtree.Pt(float64(i), float64(i)))
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n := len(s.Search(quadtree.Bounds(0.0, 50.0, 0.0, 50.0))); n != 50 {
				t.Errorf("expected 50 points, got %d", n)
			}
		}()
	}
	wg.Wait()
}
