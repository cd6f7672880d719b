package bench

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-complex/internal/calc"
)

var (
	// ErrNoFunctions is returned when a profile selects no functions.
	ErrNoFunctions = errors.New("algocomplex/bench: no functions selected")

	// ErrInvalidIterations is returned for non-positive iteration counts or
	// a negative warmup.
	ErrInvalidIterations = errors.New("algocomplex/bench: invalid iteration count")

	// ErrUnknownKey is returned when a profile file contains keys that do not
	// map to a Profile field.
	ErrUnknownKey = errors.New("algocomplex/bench: unknown profile key")
)

// Profile configures a benchmark run. It can be loaded from TOML:
//
//	iterations = 200
//	warmup     = 10
//	seed       = 1
//	scale      = 4.0
//	param      = 3.0
//	functions  = ["mul", "div", "sqrt", "powc"]
type Profile struct {
	Iterations int      `toml:"iterations"`
	Warmup     int      `toml:"warmup"`
	Seed       int64    `toml:"seed"`
	Scale      float64  `toml:"scale"`
	Param      float64  `toml:"param"`
	Functions  []string `toml:"functions"`
}

// DefaultProfile benchmarks every registered function.
func DefaultProfile() Profile {
	return Profile{
		Iterations: 50,
		Warmup:     5,
		Seed:       1,
		Scale:      4,
		Param:      3,
		Functions:  calc.Names(),
	}
}

// LoadProfile reads a TOML profile from path. Keys absent from the file keep
// their DefaultProfile values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("load profile %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("load profile %s: %w: %s", path, ErrUnknownKey, joinKeys(undecoded))
	}

	return p, nil
}

// DecodeProfile reads a TOML profile from r, like LoadProfile.
func DecodeProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()

	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("decode profile: %w: %s", ErrUnknownKey, joinKeys(undecoded))
	}

	return p, nil
}

// Validate checks iteration counts and that every function is registered.
func (p Profile) Validate() error {
	if p.Iterations < 1 || p.Warmup < 0 {
		return fmt.Errorf("iterations=%d warmup=%d: %w", p.Iterations, p.Warmup, ErrInvalidIterations)
	}

	if len(p.Functions) == 0 {
		return ErrNoFunctions
	}

	for _, name := range p.Functions {
		if _, err := calc.Lookup(name); err != nil {
			return err
		}
	}

	return nil
}

func joinKeys(keys []toml.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}

	return strings.Join(parts, ", ")
}
