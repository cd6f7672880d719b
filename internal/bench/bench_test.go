package bench

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-complex/internal/calc"
)

func TestDefaultProfileIsValid(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile invalid: %v", err)
	}

	if len(p.Functions) != len(calc.Names()) {
		t.Fatalf("default profile has %d functions, registry has %d", len(p.Functions), len(calc.Names()))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr error
	}{
		{"zero iterations", func(p *Profile) { p.Iterations = 0 }, ErrInvalidIterations},
		{"negative warmup", func(p *Profile) { p.Warmup = -1 }, ErrInvalidIterations},
		{"no functions", func(p *Profile) { p.Functions = nil }, ErrNoFunctions},
		{"unknown function", func(p *Profile) { p.Functions = []string{"mul", "nope"} }, calc.ErrUnknownFunction},
		{"fractional powi", func(p *Profile) { p.Functions = []string{"powi"}; p.Param = 0.5 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.toml")

	content := `
iterations = 3
seed = 42
functions = ["mul", "sqrt"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}

	if p.Iterations != 3 || p.Seed != 42 {
		t.Fatalf("iterations=%d seed=%d, want 3 and 42", p.Iterations, p.Seed)
	}

	if strings.Join(p.Functions, ",") != "mul,sqrt" {
		t.Fatalf("functions = %v", p.Functions)
	}

	// Untouched keys keep their defaults.
	if def := DefaultProfile(); p.Warmup != def.Warmup || p.Scale != def.Scale {
		t.Fatalf("warmup=%d scale=%v, want defaults %d and %v", p.Warmup, p.Scale, def.Warmup, def.Scale)
	}
}

func TestLoadProfileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	_, err := DecodeProfile(strings.NewReader("iterations = 2\nfrobs = 1\n"))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("DecodeProfile unknown key: err = %v", err)
	}

	if !strings.Contains(err.Error(), "frobs") {
		t.Fatalf("error %q does not name the key", err)
	}

	if _, err := DecodeProfile(strings.NewReader("iterations = [")); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.Iterations = 2
	p.Warmup = 1
	p.Functions = []string{"mul", "sqrt", "abs", "powi", "log"}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	results, err := Run(context.Background(), p, logger)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != len(p.Functions) {
		t.Fatalf("got %d results, want %d", len(results), len(p.Functions))
	}

	seen := map[string]bool{}

	for i, r := range results {
		seen[r.Name] = true

		if r.NsPerOp < 0 {
			t.Errorf("%s: ns/op = %v", r.Name, r.NsPerOp)
		}

		if i > 0 && results[i-1].NsPerOp > r.NsPerOp {
			t.Errorf("results not sorted at %d", i)
		}
	}

	for _, name := range p.Functions {
		if !seen[name] {
			t.Errorf("missing result for %s", name)
		}

		if !strings.Contains(logs.String(), "func="+name) {
			t.Errorf("no log line for %s", name)
		}
	}
}

func TestRunCountsNonFinite(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.Iterations = 1
	p.Warmup = 0
	p.Param = 0
	p.Functions = []string{"divr"}

	results, err := Run(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if results[0].NonFinite != inputCount {
		t.Fatalf("divr by 0: NonFinite = %d, want %d", results[0].NonFinite, inputCount)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultProfile(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run with canceled context: err = %v", err)
	}
}

func TestRunRejectsFractionalPowi(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.Param = 0.5
	p.Functions = []string{"powi"}

	if _, err := Run(context.Background(), p, nil); !errors.Is(err, calc.ErrNonIntegerExponent) {
		t.Fatalf("Run: err = %v, want ErrNonIntegerExponent", err)
	}
}
