package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"

	"octavia-hq/vela/pkg/compile"
)

// Key derives the cache key for a descriptor: a SHA-256 over its identity,
// runtime schema, canonically serialized compile-time parameters, and hints.
// Everything that can influence the compiled plan is included, so equal keys
// imply interchangeable artifacts.
func Key(d *compile.Descriptor) string {
	h := sha256.New()

	writeField(h, d.Namespace)
	writeField(h, d.Name)
	writeField(h, d.Version)

	names := make([]string, 0, len(d.Schema))
	for name := range d.Schema {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeField(h, name)
		writeField(h, string(d.Schema[name]))
	}

	writeCanonical(h, d.Params)
	writeField(h, d.ComplexityHint)
	writeField(h, string(d.BackendHint))

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(w io.Writer, s string) {
	io.WriteString(w, s)
	w.Write([]byte{0})
}

// writeCanonical serializes an arbitrary YAML-shaped value deterministically:
// map keys sorted, values tagged with their type so "1" and 1 differ.
func writeCanonical(w io.Writer, v any) {
	switch x := v.(type) {
	case nil:
		io.WriteString(w, "~")
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		io.WriteString(w, "{")
		for _, k := range keys {
			fmt.Fprintf(w, "%q:", k)
			writeCanonical(w, x[k])
			io.WriteString(w, ";")
		}
		io.WriteString(w, "}")
	case []any:
		io.WriteString(w, "[")
		for _, item := range x {
			writeCanonical(w, item)
			io.WriteString(w, ";")
		}
		io.WriteString(w, "]")
	case string:
		fmt.Fprintf(w, "s%q", x)
	case bool:
		fmt.Fprintf(w, "b%v", x)
	case int:
		fmt.Fprintf(w, "i%d", x)
	case int64:
		fmt.Fprintf(w, "i%d", x)
	case float64:
		fmt.Fprintf(w, "f%g", x)
	default:
		fmt.Fprintf(w, "?%v", x)
	}
}
