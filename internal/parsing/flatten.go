package parsing

import (
	"fmt"
	"sort"
)

// LeafValue is one finite numeric leaf discovered while flattening a
// tree-shaped extraction, together with its dotted path (array indices
// rendered as "[i]").
type LeafValue struct {
	Path  string
	Value float64
}

// Flatten walks a tree-shaped extraction (maps, slices, and scalar leaves as
// produced by an LLM structured extractor) and emits one LeafValue per
// finite numeric leaf. Non-numeric leaves are skipped. The result is sorted
// by path for deterministic iteration order.
func Flatten(tree any) []LeafValue {
	var out []LeafValue
	walk("", tree, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func walk(prefix string, node any, out *[]LeafValue) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			walk(joinPath(prefix, key), child, out)
		}
	case []any:
		for i, child := range v {
			walk(fmt.Sprintf("%s[%d]", prefix, i), child, out)
		}
	case float64:
		*out = append(*out, LeafValue{Path: prefix, Value: v})
	case int:
		*out = append(*out, LeafValue{Path: prefix, Value: float64(v)})
	case int64:
		*out = append(*out, LeafValue{Path: prefix, Value: float64(v)})
	default:
		// strings, bools, nil: not numeric leaves, skipped.
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Get reads a single dotted path out of a tree-shaped extraction, returning
// (0, false) if the path does not resolve to a finite numeric leaf. Supports
// the same "[i]" array index notation Flatten produces, plus "field[i]"
// segments mixing a map key with a following index.
func Get(tree any, path string) (float64, bool) {
	node := tree
	for _, segment := range splitPath(path) {
		if segment.isIndex {
			slice, ok := node.([]any)
			if !ok || segment.index < 0 || segment.index >= len(slice) {
				return 0, false
			}
			node = slice[segment.index]
			continue
		}
		m, ok := node.(map[string]any)
		if !ok {
			return 0, false
		}
		node, ok = m[segment.key]
		if !ok {
			return 0, false
		}
	}
	switch v := node.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

type pathSegment struct {
	key     string
	isIndex bool
	index   int
}

// splitPath turns "scheduleC[1].netProfit_line31" into
// [{key:"scheduleC"}, {isIndex:true,index:1}, {key:"netProfit_line31"}].
func splitPath(path string) []pathSegment {
	var segments []pathSegment
	var current []rune
	flushKey := func() {
		if len(current) > 0 {
			segments = append(segments, pathSegment{key: string(current)})
			current = current[:0]
		}
	}
	i := 0
	for i < len(path) {
		r := rune(path[i])
		switch {
		case r == '.':
			flushKey()
			i++
		case r == '[':
			flushKey()
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			idx := 0
			for _, d := range path[i+1 : j] {
				idx = idx*10 + int(d-'0')
			}
			segments = append(segments, pathSegment{isIndex: true, index: idx})
			i = j + 1
		default:
			current = append(current, r)
			i++
		}
	}
	flushKey()
	return segments
}
