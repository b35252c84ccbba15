package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"accessor-check/internal/analyze"
	"accessor-check/mapping"
)

func (a *app) newAnalyzeCmd() *cobra.Command {
	var (
		mappingPath string
		dump        bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [packages...]",
		Short: "List struct fields and the accessors resolved for them",
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *mapping.File
			if mappingPath != "" {
				var err error
				if m, err = mapping.LoadFile(mappingPath); err != nil {
					return err
				}
			}

			graph, err := a.load(args)
			if err != nil {
				return err
			}

			if dump {
				return dumpGraph(cmd.OutOrStdout(), graph)
			}

			return printGraph(cmd.OutOrStdout(), graph, m)
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "YAML accessor table")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the raw type graph")

	return cmd
}

func printGraph(out io.Writer, graph *analyze.TypeGraph, m *mapping.File) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for _, id := range graph.SortedIDs() {
		info := graph.Structs[id]
		entry := m.Lookup(id.PkgPath, id.Name)

		suffix := ""
		if info.Describer {
			suffix = " (describer)"
		}

		fmt.Fprintf(w, "%s%s\n", id.Short(), suffix)

		for i := range info.Fields {
			f := &info.Fields[i]

			var acc string
			switch {
			case f.Embedded:
				acc = "embedded"
			case entry != nil && entry.Ignore.Contains(f.Name):
				acc = "ignored"
			default:
				var names mapping.Names
				if entry != nil {
					names = entry.Fields[f.Name]
				}
				acc = formatAccessors(analyze.Resolve(info, f, names))
			}

			fmt.Fprintf(w, "\t%s\t%s\t%s\n", f.Name, f.TypeString(), acc)
		}
	}

	return w.Flush()
}

func formatAccessors(acc analyze.Accessors) string {
	parts := []string{acc.Getter}
	if acc.Setter != "" {
		parts = append(parts, acc.Setter)
	} else {
		parts = append(parts, orUnresolved(acc.Adder), orUnresolved(acc.Remover))
	}

	return strings.Join(parts, " ")
}

func orUnresolved(s string) string {
	if s == "" {
		return "?"
	}

	return s
}

// dumpGraph spews each struct without the go/types internals, which would
// drown the output.
func dumpGraph(out io.Writer, graph *analyze.TypeGraph) error {
	type field struct {
		Name     string
		Type     string
		Exported bool
		Embedded bool
	}

	type structDump struct {
		Type      string
		Describer bool
		Fields    []field
		Methods   []string
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

	for _, id := range graph.SortedIDs() {
		info := graph.Structs[id]
		d := structDump{Type: id.String(), Describer: info.Describer, Methods: info.MethodNames()}
		for i := range info.Fields {
			f := &info.Fields[i]
			d.Fields = append(d.Fields, field{Name: f.Name, Type: f.TypeString(), Exported: f.Exported, Embedded: f.Embedded})
		}

		cfg.Fdump(out, d)
	}

	return nil
}
