package blocks

import (
	"slices"
	"strings"
)

// ModuleID identifies a built-in module. The set is closed.
type ModuleID uint8

const (
	ModuleUnknown ModuleID = iota
	// ModuleCSS behaves like a [[css]] block: its body goes to the page styles.
	ModuleCSS
	// ModuleRate renders the page rating box.
	ModuleRate
	// ModuleTags renders the page tag list.
	ModuleTags
)

// ModuleSpec describes a built-in module.
type ModuleSpec struct {
	ID   ModuleID
	Name string
	Body Body
}

var modules = map[string]ModuleSpec{
	"css":  {ID: ModuleCSS, Name: "CSS", Body: BodyRaw},
	"rate": {ID: ModuleRate, Name: "Rate", Body: BodyNone},
	"tags": {ID: ModuleTags, Name: "Tags", Body: BodyNone},
}

// LookupModule finds a built-in module by name (case-insensitive).
func LookupModule(name string) (ModuleSpec, bool) {
	spec, ok := modules[strings.ToLower(name)]
	return spec, ok
}

// Modules returns the built-in modules sorted by name.
func Modules() []ModuleSpec {
	out := make([]ModuleSpec, 0, len(modules))
	for _, spec := range modules {
		out = append(out, spec)
	}
	slices.SortFunc(out, func(a, b ModuleSpec) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// ModuleName extracts the module name from the arguments of a [[module]] marker:
// the first whitespace separated word.
func ModuleName(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (id ModuleID) String() string {
	for _, spec := range modules {
		if spec.ID == id {
			return spec.Name
		}
	}
	return "unknown"
}
