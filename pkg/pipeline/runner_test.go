package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/phipebble/pkg/cache"
	"github.com/matzehuels/phipebble/pkg/errors"
	"github.com/matzehuels/phipebble/pkg/sufficiency"
)

// memCache is an in-memory cache that counts reads and writes.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	if ok {
		c.hits++
	}
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, ok := r.Cache.(cache.NullCache); !ok {
		t.Errorf("Cache should default to NullCache, got %T", r.Cache)
	}
	if r.Keyer == nil || r.Logger == nil {
		t.Error("Keyer and Logger should be defaulted")
	}
}

func TestLoadGraph(t *testing.T) {
	var logs bytes.Buffer
	r := NewRunner(nil, nil, log.NewWithOptions(&logs, log.Options{}))

	l, err := r.LoadGraph(Options{Named: "petersen"})
	if err != nil {
		t.Fatalf("LoadGraph named: %v", err)
	}
	if l.Graph.N() != 10 || l.Name != "petersen" {
		t.Errorf("unexpected graph %q with %d vertices", l.Name, l.Graph.N())
	}

	_, err = r.LoadGraph(Options{Named: "dodecahedron"})
	if !errors.Is(err, errors.ErrCodeGraphNotFound) {
		t.Errorf("unknown name should be GRAPH_NOT_FOUND, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "g.json")
	if err := os.WriteFile(path, []byte(`[[1, 5], [0]]`), 0644); err != nil {
		t.Fatal(err)
	}
	l, err = r.LoadGraph(Options{GraphPath: path})
	if err != nil {
		t.Fatalf("LoadGraph file: %v", err)
	}
	if len(l.Discarded) != 1 {
		t.Errorf("Discarded = %v", l.Discarded)
	}
	if !strings.Contains(logs.String(), "dropped out-of-range neighbor") {
		t.Errorf("dropped reference should be logged, got %q", logs.String())
	}
}

func TestRunnerCheckCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	var logs bytes.Buffer
	r := NewRunner(mc, nil, log.NewWithOptions(&logs, log.Options{}))

	if _, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2}); err != nil {
		t.Fatalf("Check: %v", err)
	}
	for k := range mc.data {
		mc.data[k] = []byte("{not json")
	}

	res, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2})
	if err != nil {
		t.Fatalf("Check over corrupt entry: %v", err)
	}
	if res.CacheHit || !res.Verdict.Sufficient {
		t.Errorf("corrupt entry: cache hit %v, sufficient %v; want recomputed verdict", res.CacheHit, res.Verdict.Sufficient)
	}
	if !strings.Contains(logs.String(), "discarded corrupt cache entry") {
		t.Errorf("corrupt entry should be logged, got %q", logs.String())
	}

	again, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2})
	if err != nil {
		t.Fatalf("Check after rewrite: %v", err)
	}
	if !again.CacheHit {
		t.Error("recomputed verdict should be cached again")
	}
}

func TestRunnerCheck(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())

	res, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !res.Verdict.Sufficient || res.CacheHit {
		t.Errorf("first check: sufficient %v, cache hit %v", res.Verdict.Sufficient, res.CacheHit)
	}
	if res.RunID == "" || res.Graph.Hash == "" || res.Graph.Vertices != 3 || res.Graph.Edges != 2 {
		t.Errorf("incomplete result: %+v", res)
	}

	again, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2})
	if err != nil {
		t.Fatalf("Check again: %v", err)
	}
	if !again.CacheHit {
		t.Error("second check should hit the cache")
	}
	if again.RunID == res.RunID {
		t.Error("every run should get a fresh run ID")
	}
	if again.Verdict.Pairs != res.Verdict.Pairs {
		t.Errorf("cached verdict differs: %+v vs %+v", again.Verdict, res.Verdict)
	}

	fresh, err := r.Check(ctx, Options{Named: "path3", Pebbles: 2, Refresh: true})
	if err != nil {
		t.Fatalf("Check refresh: %v", err)
	}
	if fresh.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerCheckInsufficient(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Check(context.Background(), Options{Named: "path3", Pebbles: 1, Workers: 2})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Verdict.Sufficient || res.Verdict.Failure == nil {
		t.Errorf("one pebble on a path of three should fail: %+v", res.Verdict)
	}
}

func TestRunnerSweep(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())

	res, err := r.Sweep(ctx, Options{Named: "cycle5", From: 1, To: 8, StopAtFirst: true})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if res.Sweep.Estimate != 3 || len(res.Sweep.Verdicts) != 3 {
		t.Errorf("estimate %d over %d verdicts, want 3 over 3", res.Sweep.Estimate, len(res.Sweep.Verdicts))
	}
	if res.CacheHit {
		t.Error("first sweep should miss")
	}

	again, err := r.Sweep(ctx, Options{Named: "cycle5", From: 1, To: 8, StopAtFirst: true})
	if err != nil {
		t.Fatalf("Sweep again: %v", err)
	}
	if !again.CacheHit || again.Sweep.Estimate != 3 {
		t.Errorf("second sweep: hit %v, estimate %d", again.CacheHit, again.Sweep.Estimate)
	}

	// A different range misses the sweep key but reuses the per-count verdicts.
	hits := mc.hits
	wider, err := r.Sweep(ctx, Options{Named: "cycle5", From: 1, To: 4})
	if err != nil {
		t.Fatalf("wider sweep: %v", err)
	}
	if wider.CacheHit {
		t.Error("a new range should not hit the sweep key")
	}
	if got := mc.hits - hits; got != 3 {
		t.Errorf("wider sweep reused %d cached verdicts, want 3", got)
	}
	if len(wider.Sweep.Verdicts) != 4 || len(wider.Sweep.NonMonotonic) != 0 {
		t.Errorf("wider sweep: %+v", wider.Sweep)
	}
}

func TestRunnerDiameter(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Diameter(Options{Named: "petersen"})
	if err != nil {
		t.Fatalf("Diameter: %v", err)
	}
	if !res.AtMostTwo || res.Witness != nil {
		t.Errorf("Petersen has diameter two: %+v", res)
	}

	res, err = r.Diameter(Options{Named: "cycle6"})
	if err != nil {
		t.Fatalf("Diameter: %v", err)
	}
	if res.AtMostTwo || res.Witness == nil || *res.Witness != [2]int{0, 3} || res.Disconnected {
		t.Errorf("C6 result: %+v", res)
	}
}

func TestRunnerRenderDOT(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Render(context.Background(), Options{
		Named:        "k4",
		Format:       FormatDOT,
		Distribution: "0,3,0,0",
		Target:       2,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	dot := string(res.Data)
	if !strings.HasPrefix(dot, "graph G {") || !strings.Contains(dot, "doublecircle") {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
}

func TestRunnerRenderErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	_, err := r.Render(ctx, Options{Named: "k4", Format: FormatDOT, Distribution: "1,2", Target: -1})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("short distribution should be INVALID_INPUT, got %v", err)
	}

	_, err = r.Render(ctx, Options{Named: "k4", Format: FormatDOT, Target: 9})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("out-of-range target should be INVALID_INPUT, got %v", err)
	}
}

func TestRunnerRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz layout in short mode")
	}
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Render(context.Background(), Options{Named: "petersen", Target: -1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(res.Data, []byte("<svg")) {
		t.Errorf("output is not SVG: %.100s", res.Data)
	}
}

func TestRunnerSweepReportsProgress(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	var seen []int
	_, err := r.Sweep(context.Background(), Options{
		Named:       "path5",
		From:        2,
		To:          6,
		StopAtFirst: true,
		OnVerdict: func(v sufficiency.Verdict, cached bool) {
			if cached {
				t.Errorf("null cache reported a hit for %d pebbles", v.Pebbles)
			}
			seen = append(seen, v.Pebbles)
		},
	})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(seen) == 0 || seen[0] != 2 {
		t.Fatalf("OnVerdict calls = %v, want counts starting at 2", seen)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] != seen[i-1]+1 {
			t.Errorf("counts should ascend by one: %v", seen)
		}
	}
}
