// Package pretty renders Go values as structured single-pass text for
// debug output: a reflection-based value printer, horizontal rules with
// centered titles, and directory trees.
package pretty

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Marker substituted for content cut off by depth or length limits.
const TruncationMarker = "…"

// Options control how far Sprint descends into a value.
type Options struct {
	// MaxDepth cuts off nesting beyond this depth with a truncation
	// marker. Zero means unbounded.
	MaxDepth int
	// MaxLength caps the elements rendered per collection; the rest
	// collapse into a truncation marker. Zero means unbounded.
	MaxLength int
}

// Sprint renders v as structured text honoring o. Maps render with
// deterministic key order. Cyclic values terminate: a pointer, map, or
// slice already being rendered prints as the truncation marker.
func Sprint(v any, o Options) string {
	var sb strings.Builder
	p := printer{opts: o, seen: map[uintptr]bool{}}
	p.value(&sb, reflect.ValueOf(v), 1)
	return sb.String()
}

type printer struct {
	opts Options
	seen map[uintptr]bool
}

func (p *printer) value(sb *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		sb.WriteString("nil")
		return
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		p.value(sb, v.Elem(), depth)

	case reflect.Pointer:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		if p.seen[v.Pointer()] {
			sb.WriteString(TruncationMarker)
			return
		}
		p.seen[v.Pointer()] = true
		sb.WriteString("&")
		p.value(sb, v.Elem(), depth)
		delete(p.seen, v.Pointer())

	case reflect.Slice:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		if p.seen[v.Pointer()] {
			sb.WriteString(TruncationMarker)
			return
		}
		if p.truncated(sb, depth) {
			return
		}
		p.seen[v.Pointer()] = true
		sb.WriteByte('[')
		p.elements(sb, v, depth)
		sb.WriteByte(']')
		delete(p.seen, v.Pointer())

	case reflect.Array:
		if p.truncated(sb, depth) {
			return
		}
		sb.WriteByte('[')
		p.elements(sb, v, depth)
		sb.WriteByte(']')

	case reflect.Map:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		if p.seen[v.Pointer()] {
			sb.WriteString(TruncationMarker)
			return
		}
		if p.truncated(sb, depth) {
			return
		}
		p.seen[v.Pointer()] = true
		p.mapValue(sb, v, depth)
		delete(p.seen, v.Pointer())

	case reflect.Struct:
		if p.truncated(sb, depth) {
			return
		}
		p.structValue(sb, v, depth)

	case reflect.String:
		sb.WriteString(strconv.Quote(v.String()))

	default:
		fmt.Fprintf(sb, "%v", v)
	}
}

// truncated writes the marker and reports true when depth exceeds the
// configured limit. Composite kinds call it before descending.
func (p *printer) truncated(sb *strings.Builder, depth int) bool {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		sb.WriteString(TruncationMarker)
		return true
	}
	return false
}

func (p *printer) elements(sb *strings.Builder, v reflect.Value, depth int) {
	n := v.Len()
	shown := n
	if p.opts.MaxLength > 0 && n > p.opts.MaxLength {
		shown = p.opts.MaxLength
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.value(sb, v.Index(i), depth+1)
	}
	if shown < n {
		if shown > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s +%d more", TruncationMarker, n-shown)
	}
}

func (p *printer) mapValue(sb *strings.Builder, v reflect.Value, depth int) {
	type pair struct {
		label string
		key   reflect.Value
	}
	pairs := make([]pair, 0, v.Len())
	for _, k := range v.MapKeys() {
		var kb strings.Builder
		p.value(&kb, k, depth+1)
		pairs = append(pairs, pair{label: kb.String(), key: k})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].label < pairs[j].label })

	n := len(pairs)
	shown := n
	if p.opts.MaxLength > 0 && n > p.opts.MaxLength {
		shown = p.opts.MaxLength
	}

	sb.WriteByte('{')
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pairs[i].label)
		sb.WriteString(": ")
		p.value(sb, v.MapIndex(pairs[i].key), depth+1)
	}
	if shown < n {
		if shown > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%s +%d more", TruncationMarker, n-shown)
	}
	sb.WriteByte('}')
}

func (p *printer) structValue(sb *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()
	if t.Name() != "" {
		sb.WriteString(t.String())
	}
	sb.WriteByte('{')
	n := t.NumField()
	written := 0
	for i := 0; i < n; i++ {
		if written > 0 {
			sb.WriteString(", ")
		}
		if p.opts.MaxLength > 0 && written >= p.opts.MaxLength {
			fmt.Fprintf(sb, "%s +%d more", TruncationMarker, n-written)
			break
		}
		sb.WriteString(t.Field(i).Name)
		sb.WriteString(": ")
		p.value(sb, v.Field(i), depth+1)
		written++
	}
	sb.WriteByte('}')
}

// TypeName returns the rendered type annotation name for v.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
