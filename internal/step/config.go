package step

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is one stage's external configuration (spec.md section 6):
// kind, bounds, NISS mode, per-axis substep names, and free-form
// key/value params (`triggers=...` being the one DR cares about).
type Config struct {
	Kind     string
	Min      int
	Max      int
	Niss     NissMode
	Substeps []string
	Params   map[string]string
	Quality  int
}

// ParseConfig parses one `--steps` entry the way the teacher's CLI
// flags are hand-parsed (internal/cli/solve.go's GetString calls):
// `kind:key=value:key=value`. A stage's key/value pairs are colon
// separated rather than comma separated so a `triggers=R U2 R,L U2 L`
// value's commas stay unambiguous; callers split multiple stages on
// `;` before calling this (e.g. "eo:niss=never;dr:niss=always").
func ParseConfig(entry string) (Config, error) {
	parts := strings.Split(entry, ":")
	if len(parts) == 0 || parts[0] == "" {
		return Config{}, fmt.Errorf("invalid config: empty stage kind in %q", entry)
	}
	cfg := Config{
		Kind:    parts[0],
		Max:     -1,
		Quality: 1,
		Params:  map[string]string{},
	}
	for _, kv := range parts[1:] {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			return Config{}, fmt.Errorf("invalid config: %q has no '=' in %q", kv, entry)
		}
		key, val := kv[:eq], kv[eq+1:]
		switch key {
		case "min":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Config{}, fmt.Errorf("invalid config: min=%q: %w", val, err)
			}
			cfg.Min = n
		case "max":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Config{}, fmt.Errorf("invalid config: max=%q: %w", val, err)
			}
			cfg.Max = n
		case "niss":
			mode, ok := ParseNissMode(val)
			if !ok {
				return Config{}, fmt.Errorf("invalid config: unknown niss mode %q", val)
			}
			cfg.Niss = mode
		case "substeps":
			cfg.Substeps = strings.Split(val, "|")
		case "quality":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Config{}, fmt.Errorf("invalid config: quality=%q: %w", val, err)
			}
			cfg.Quality = n
		default:
			cfg.Params[key] = val
		}
	}
	return cfg, nil
}

// ParseConfigs parses a full `;`-separated `--steps` value into one
// Config per stage, in order.
func ParseConfigs(value string) ([]Config, error) {
	var out []Config
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		cfg, err := ParseConfig(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// StepLimit computes a node-count cutoff for bounding per-stage work
// (spec.md section 6: "quality: a positive integer
// controlling step_limit = Some(quality * k); 0 disables the limit"),
// mirroring rzp_config.rs's `config.step_limit.or(Some(config.quality *
// 10))`. The Searcher and the pipeline do not call it, so no search
// is bounded by it.
func (c Config) StepLimit(k int) (int, bool) {
	if c.Quality == 0 {
		return 0, false
	}
	return c.Quality * k, true
}
