package solve

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

// nakedSingleGrid is testSolution with r1c1 cleared, so the whole solve is
// one naked single placing 5 back.
var nakedSingleGrid = "." + testSolution[1:]

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Grid != "" {
		t.Errorf("expected empty grid, got %q", cfg.Grid)
	}
	if cfg.Steps {
		t.Error("expected steps off by default")
	}
	if cfg.Lang != "en" {
		t.Errorf("expected default lang en, got %q", cfg.Lang)
	}
	if cfg.JSON {
		t.Error("expected json off by default")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-grid", nakedSingleGrid, "-steps", "-lang", "pt-BR", "-json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Grid != nakedSingleGrid {
		t.Errorf("grid got %q, want flag value", cfg.Grid)
	}
	if !cfg.Steps || !cfg.JSON {
		t.Errorf("expected steps and json on, got %+v", cfg)
	}
	if cfg.Lang != "pt-BR" {
		t.Errorf("lang got %q, want pt-BR", cfg.Lang)
	}
}

func TestParseConfigPositionalGridFile(t *testing.T) {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"puzzle.txt"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GridFile != "puzzle.txt" {
		t.Errorf("grid file got %q, want puzzle.txt", cfg.GridFile)
	}
}

func TestRunPrintsSolvedGrid(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Grid: nakedSingleGrid}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != testSolution {
		t.Errorf("output got %q, want %q", got, testSolution)
	}
}

func TestRunPrintsSteps(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Grid: nakedSingleGrid, Steps: true}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "1. Naked Single: place 5 in r1c1." {
		t.Errorf("step line got %q", lines[0])
	}
	if lines[1] != testSolution {
		t.Errorf("grid line got %q, want %q", lines[1], testSolution)
	}
}

func TestRunLocalizesSteps(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Grid: nakedSingleGrid, Steps: true, Lang: "pt-BR"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Candidato Único: coloque 5 em r1c1.") {
		t.Errorf("expected localized step, got %q", out.String())
	}
}

func TestRunJSONReport(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Grid: nakedSingleGrid, Steps: true, JSON: true}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var rep report
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if rep.Grid != testSolution {
		t.Errorf("grid got %q, want %q", rep.Grid, testSolution)
	}
	if !rep.Solved {
		t.Error("expected solved report")
	}
	if rep.Level != "Basic" {
		t.Errorf("level got %q, want Basic", rep.Level)
	}
	if len(rep.Steps) != 1 || rep.Steps[0].Technique != "NakedSingle" {
		t.Errorf("steps got %+v", rep.Steps)
	}
}

func TestRunReportsStall(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Grid: strings.Repeat(".", 81)}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "logic stalled") {
		t.Errorf("expected stall note, got %q", out.String())
	}
}

func TestRunRejectsBadGrid(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Grid: "123"}, &out); err == nil {
		t.Error("expected parse error for short grid")
	}
}

func TestRunRequiresGrid(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), Config{}, &out); err == nil {
		t.Error("expected error when no grid source is given")
	}
}

func TestResolveGridFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	// Grid split across lines, with a trailing newline.
	content := nakedSingleGrid[:27] + "\n" + nakedSingleGrid[27:54] + "\n" + nakedSingleGrid[54:] + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write grid file: %v", err)
	}

	got, err := resolveGrid(Config{GridFile: path}, nil)
	if err != nil {
		t.Fatalf("resolve grid: %v", err)
	}
	if got != nakedSingleGrid {
		t.Errorf("grid got %q, want %q", got, nakedSingleGrid)
	}
}

func TestResolveGridFromStdin(t *testing.T) {
	stdin := strings.NewReader(nakedSingleGrid + "\n")
	got, err := resolveGrid(Config{GridFile: "-"}, stdin)
	if err != nil {
		t.Fatalf("resolve grid: %v", err)
	}
	if got != nakedSingleGrid {
		t.Errorf("grid got %q, want %q", got, nakedSingleGrid)
	}
}

func TestResolveGridPrefersFlag(t *testing.T) {
	got, err := resolveGrid(Config{Grid: nakedSingleGrid, GridFile: "ignored.txt"}, nil)
	if err != nil {
		t.Fatalf("resolve grid: %v", err)
	}
	if got != nakedSingleGrid {
		t.Errorf("grid got %q, want flag value", got)
	}
}
