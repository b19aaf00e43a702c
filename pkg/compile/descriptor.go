package compile

import (
	"fmt"
	"strings"
)

// ParamKind declares the shape of one runtime parameter in a descriptor
// schema.
type ParamKind string

const (
	ParamClass   ParamKind = "class"   // class index 0..95
	ParamElement ParamKind = "element" // algebra element
	ParamInts    ParamKind = "ints"    // integer list (reductions)
)

// Valid reports whether k names a parameter kind.
func (k ParamKind) Valid() bool {
	switch k {
	case ParamClass, ParamElement, ParamInts:
		return true
	}
	return false
}

// BackendHint is the descriptor's backend preference. The empty hint means
// auto. Hints are advisory: trees that only the algebraic engine can run are
// routed there whatever the hint says.
type BackendHint string

const (
	HintAuto        BackendHint = "auto"
	HintPermutation BackendHint = "permutation"
	HintAlgebraic   BackendHint = "algebraic"
)

// Valid reports whether h names a backend hint.
func (h BackendHint) Valid() bool {
	switch h {
	case "", HintAuto, HintPermutation, HintAlgebraic:
		return true
	}
	return false
}

// Tier is a complexity class assigned at compile time, ordered from fully
// baked to unbounded.
type Tier int

const (
	Tier0 Tier = iota // zero runtime parameters: the plan is fully determined
	Tier1             // shallow parameterized pipelines, no grade projections
	Tier2             // bounded trees with at most two grade projections
	Tier3             // everything else
)

func (t Tier) String() string {
	return fmt.Sprintf("tier%d", int(t))
}

// ParseTier parses a complexity hint string. Empty and "auto" report no
// override.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tier0":
		return Tier0, true
	case "tier1":
		return Tier1, true
	case "tier2":
		return Tier2, true
	case "tier3":
		return Tier3, true
	}
	return 0, false
}

// Descriptor names an operation and fixes everything knowable before runtime:
// compile-time parameters baked into the plan, the declared shape of runtime
// parameters, and optional complexity and backend hints. Descriptors are
// read-only inputs to Compile; two equal descriptors always compile to
// structurally identical plans.
type Descriptor struct {
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`

	// Params are compile-time parameters, consumed by the operation's tree
	// builder and baked into the plan.
	Params map[string]any `yaml:"params,omitempty"`

	// Schema declares the runtime parameters callers must supply on every
	// invocation, by name and kind.
	Schema map[string]ParamKind `yaml:"schema,omitempty"`

	// ComplexityHint overrides the analyzer's tier when set to "tier0" ..
	// "tier3". Empty or "auto" defers to the analyzer.
	ComplexityHint string `yaml:"complexity,omitempty"`

	BackendHint BackendHint `yaml:"backend,omitempty"`
}

// Operation returns the builder key, "namespace.name".
func (d *Descriptor) Operation() string {
	return d.Namespace + "." + d.Name
}

// FullName returns the human-readable identity, "namespace/name@version".
func (d *Descriptor) FullName() string {
	return d.Namespace + "/" + d.Name + "@" + d.Version
}

// Validate checks the descriptor's identity and declared shapes. It does not
// check compile-time parameters; those belong to the operation's builder.
func (d *Descriptor) Validate() error {
	if d.Namespace == "" {
		return fmt.Errorf("descriptor: namespace is required")
	}
	if d.Name == "" {
		return fmt.Errorf("descriptor: name is required")
	}
	if d.Version == "" {
		return fmt.Errorf("descriptor: version is required")
	}
	for name, kind := range d.Schema {
		if name == "" {
			return fmt.Errorf("descriptor %s: schema entry with empty name", d.FullName())
		}
		if !kind.Valid() {
			return fmt.Errorf("descriptor %s: schema parameter %q has unknown kind %q",
				d.FullName(), name, kind)
		}
	}
	if !d.BackendHint.Valid() {
		return fmt.Errorf("descriptor %s: unknown backend hint %q", d.FullName(), d.BackendHint)
	}
	if hint := strings.TrimSpace(d.ComplexityHint); hint != "" && !strings.EqualFold(hint, "auto") {
		if _, ok := ParseTier(hint); !ok {
			return fmt.Errorf("descriptor %s: unknown complexity hint %q", d.FullName(), d.ComplexityHint)
		}
	}
	return nil
}
