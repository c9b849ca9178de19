package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args against a temporary cache
// directory and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return runInCache(t, args...)
}

// runInCache is run without resetting the cache directory.
func runInCache(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decode(t *testing.T, out string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
}

type checkReport struct {
	CacheHit bool `json:"cache_hit"`
	Graph    struct {
		Name     string `json:"name"`
		Vertices int    `json:"vertices"`
	} `json:"graph"`
	Verdict struct {
		Pebbles    int  `json:"pebbles"`
		Sufficient bool `json:"sufficient"`
		Failure    *struct {
			Target int `json:"target"`
		} `json:"failure"`
	} `json:"verdict"`
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name       string
		pebbles    string
		sufficient bool
	}{
		{"path3 with 2", "2", true},
		{"path3 with 1", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "check", "--named", "path3", "-p", tt.pebbles, "--json")
			if err != nil {
				t.Fatalf("check: %v", err)
			}

			var rep checkReport
			decode(t, out, &rep)
			if rep.Graph.Name != "path3" || rep.Graph.Vertices != 3 {
				t.Errorf("graph = %+v, want path3 with 3 vertices", rep.Graph)
			}
			if rep.Verdict.Sufficient != tt.sufficient {
				t.Errorf("sufficient = %v, want %v", rep.Verdict.Sufficient, tt.sufficient)
			}
			if !tt.sufficient && rep.Verdict.Failure == nil {
				t.Error("insufficient verdict should carry a failure")
			}
		})
	}
}

func TestCheckCommandCaches(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	args := []string{"check", "--named", "cycle5", "-p", "3", "--json"}
	var first, second checkReport

	out, err := runInCache(t, args...)
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	decode(t, out, &first)

	out, err = runInCache(t, args...)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	decode(t, out, &second)

	if first.CacheHit {
		t.Error("first run should not hit the cache")
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if first.Verdict.Sufficient != second.Verdict.Sufficient {
		t.Error("cached verdict differs from computed verdict")
	}

	out, err = runInCache(t, append(args, "--no-cache")...)
	if err != nil {
		t.Fatalf("uncached check: %v", err)
	}
	var third checkReport
	decode(t, out, &third)
	if third.CacheHit {
		t.Error("--no-cache run should not hit the cache")
	}
}

func TestCheckCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing pebbles", []string{"check", "--named", "k4"}},
		{"no graph", []string{"check", "-p", "3"}},
		{"unknown graph", []string{"check", "--named", "nope", "-p", "3"}},
		{"missing file", []string{"check", filepath.Join(t.TempDir(), "missing.json"), "-p", "3"}},
		{"unknown backend", []string{"check", "--named", "k4", "-p", "1", "--cache", "bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestSweepCommand(t *testing.T) {
	out, err := run(t, "sweep", "--named", "cycle5", "--stop-at-first", "--json")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	var rep struct {
		Sweep struct {
			Estimate int               `json:"estimate"`
			Verdicts []json.RawMessage `json:"verdicts"`
		} `json:"sweep"`
	}
	decode(t, out, &rep)
	if rep.Sweep.Estimate != 3 {
		t.Errorf("estimate = %d, want 3", rep.Sweep.Estimate)
	}
	if len(rep.Sweep.Verdicts) != 3 {
		t.Errorf("got %d verdicts, want 3 (stop at first sufficient)", len(rep.Sweep.Verdicts))
	}
}

func TestDiameterCommand(t *testing.T) {
	tests := []struct {
		named     string
		atMostTwo bool
	}{
		{"petersen", true},
		{"path5", false},
	}

	for _, tt := range tests {
		t.Run(tt.named, func(t *testing.T) {
			out, err := run(t, "diameter", "--named", tt.named, "--json")
			if err != nil {
				t.Fatalf("diameter: %v", err)
			}
			var rep struct {
				AtMostTwo bool    `json:"at_most_two"`
				Witness   *[2]int `json:"witness"`
			}
			decode(t, out, &rep)
			if rep.AtMostTwo != tt.atMostTwo {
				t.Errorf("at_most_two = %v, want %v", rep.AtMostTwo, tt.atMostTwo)
			}
			if !tt.atMostTwo && rep.Witness == nil {
				t.Error("expected a witness pair")
			}
		})
	}
}

func TestRenderCommandDOT(t *testing.T) {
	out, err := run(t, "render", "--named", "path3", "--format", "dot", "--distribution", "0,2,0", "--target", "0")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"graph G {", "doublecircle", "lightgoldenrod"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "--named", "k4", "--format", "png"}},
		{"bad layout", []string{"render", "--named", "k4", "--format", "dot", "--layout", "twopi"}},
		{"short distribution", []string{"render", "--named", "k4", "--format", "dot", "-d", "1,2"}},
		{"target out of range", []string{"render", "--named", "k4", "--format", "dot", "-t", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestGraphsCommand(t *testing.T) {
	out, err := run(t, "graphs")
	if err != nil {
		t.Fatalf("graphs: %v", err)
	}
	for _, name := range []string{"petersen", "cycle5", "k4"} {
		if !strings.Contains(out, name) {
			t.Errorf("graphs output should list %q:\n%s", name, out)
		}
	}
}

func TestCachePathCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	out, err := runInCache(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(dir, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}
