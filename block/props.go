package block

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Props is the free-form JSON-compatible property record of a block. Its
// real shape is defined per type by the registry default; renderers decode
// it into their own typed views and tolerate whatever is actually present.
type Props map[string]any

// Clone returns a deep copy. Nested maps and slices are copied, scalars are
// shared (they are immutable values anyway).
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	return Props(cloneMap(p))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Props:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// MergedWith deep-merges override over p and returns the result as a new
// record: override wins on conflicting keys, nested maps merge recursively,
// arrays replace rather than concatenate. Neither input is modified.
func (p Props) MergedWith(override Props) Props {
	base := p.Clone()
	if len(override) == 0 {
		return base
	}
	return Props(mergeMap(base, override))
}

func mergeMap(base, override map[string]any) map[string]any {
	for k, ov := range override {
		bm, baseIsMap := asMap(base[k])
		om, overrideIsMap := asMap(ov)
		if baseIsMap && overrideIsMap {
			base[k] = mergeMap(bm, om)
			continue
		}
		base[k] = cloneValue(ov)
	}
	return base
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Props:
		return t, true
	default:
		return nil, false
	}
}

// Decode populates out (a pointer to a renderer's typed view) from the
// record. Fields absent from the record keep their zero values; fields with
// incompatible shapes make Decode fail, which renderers treat as malformed
// props and degrade.
func (p Props) Decode(out any) error {
	data, err := yaml.Marshal(map[string]any(p))
	if err != nil {
		return fmt.Errorf("unable to encode props: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unable to decode props: %w", err)
	}
	return nil
}

// String fetches a string-valued prop, with fallback when absent or of a
// different shape.
func (p Props) String(key, fallback string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}
