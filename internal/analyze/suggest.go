package analyze

import (
	"go/types"
	"sort"
	"strings"

	"go.uber.org/zap"

	"accessor-check/internal/naming"
	"accessor-check/mapping"
)

// Suggest builds a mapping skeleton for the fields whose accessors the naming
// rules cannot resolve. Each missing accessor is replaced by the closest
// exported method with the same role prefix. Fields with no plausible
// replacement are listed under ignore so the skeleton checks cleanly; review
// them before committing the file.
func Suggest(graph *TypeGraph, logger *zap.Logger) *mapping.File {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := &mapping.File{Version: "1"}

	for _, id := range graph.SortedIDs() {
		info := graph.Structs[id]
		if info.Describer {
			continue
		}

		entry := mapping.TypeEntry{Type: id.Short()}

		for i := range info.Fields {
			f := &info.Fields[i]
			if f.Embedded || f.Name == "_" || f.Name == serialVersionField {
				continue
			}

			names, ok := suggestField(info, f)
			if !ok {
				logger.Debug("no accessor candidates, ignoring field",
					zap.String("type", id.String()),
					zap.String("field", f.Name))
				entry.Ignore = append(entry.Ignore, f.Name)

				continue
			}

			if names.IsEmpty() {
				continue
			}

			if entry.Fields == nil {
				entry.Fields = make(map[string]mapping.Names)
			}

			entry.Fields[f.Name] = names
		}

		if len(entry.Fields) > 0 || !entry.Ignore.IsEmpty() {
			out.Types = append(out.Types, entry)
		}
	}

	return out
}

// suggestField returns the names that differ from the convention. ok is
// false when a required accessor has no candidate at all.
func suggestField(info *StructInfo, f *FieldInfo) (mapping.Names, bool) {
	var names mapping.Names
	acc := Resolve(info, f, mapping.Names{})

	// pick keeps the conventional name when it exists, otherwise the closest
	// method with a role prefix whose signature fits.
	pick := func(expected string, fits func(*types.Signature) bool, prefixes ...string) (string, bool) {
		if _, ok := info.Methods[expected]; ok {
			return "", true
		}

		best := naming.Closest(expected, candidates(info, fits, prefixes...), 1)
		if len(best) == 0 {
			return "", false
		}

		return best[0], true
	}

	getter := func(sig *types.Signature) bool { return returns(sig, f.Type) }
	setter := func(sig *types.Signature) bool { return takesOne(sig, f.Type) }
	unary := func(sig *types.Signature) bool { return sig.Params().Len() == 1 }

	var ok bool
	if !f.IsCollection() {
		prefixes := []string{"Get"}
		if f.IsBool() {
			prefixes = append(prefixes, "Is")
		}

		if names.Getter, ok = pick(acc.Getter, getter, prefixes...); !ok {
			return names, false
		}

		names.Setter, ok = pick(acc.Setter, setter, "Set")

		return names, ok
	}

	if names.Getter, ok = pick(acc.Getter, func(sig *types.Signature) bool {
		return sig.Params().Len() == 0 && sig.Results().Len() > 0 && hasLen(sig.Results().At(0).Type())
	}, "Get"); !ok {
		return names, false
	}

	// An empty resolved name means zero or several rule hits. Several hits
	// are settled alphabetically, none by the closest unary method.
	if acc.Adder == "" {
		if names.Adder, ok = pickCollection(info, naming.AdderNames(f.Name), unary, "Add"); !ok {
			return names, false
		}
	}

	if acc.Remover == "" {
		if names.Remover, ok = pickCollection(info, naming.RemoverNames(f.Name), unary, "Remove"); !ok {
			return names, false
		}
	}

	return names, true
}

func pickCollection(info *StructInfo, rules []string, fits func(*types.Signature) bool, prefix string) (string, bool) {
	if found := matching(info, rules); len(found) > 0 {
		sort.Strings(found)
		return found[0], true
	}

	best := naming.Closest(rules[0], candidates(info, fits, prefix), 1)
	if len(best) == 0 {
		return "", false
	}

	return best[0], true
}

// candidates lists the methods of info that start with one of prefixes and
// whose signature fits.
func candidates(info *StructInfo, fits func(*types.Signature) bool, prefixes ...string) []string {
	var out []string
	for _, name := range info.MethodNames() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(name, prefix) && fits(info.Methods[name]) {
				out = append(out, name)
				break
			}
		}
	}

	return out
}
