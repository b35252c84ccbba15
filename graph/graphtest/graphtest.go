// Package graphtest provides an accessor verifier preconfigured for the
// graph model.
package graphtest

import (
	_ "embed"
	"fmt"

	"accessor-check/accessor"
	"accessor-check/graph"
	"accessor-check/mapping"
)

//go:embed accessors.yaml
var accessorsYAML []byte

// Mapping returns the accessor table of the graph model.
func Mapping() (*mapping.File, error) {
	f, err := mapping.Parse(accessorsYAML)
	if err != nil {
		return nil, fmt.Errorf("graphtest: embedded accessor table: %w", err)
	}

	return f, nil
}

// NewVerifier returns a verifier that knows example values for the graph
// reference types and applies the graph accessor table. Extra options are
// applied last.
func NewVerifier(opts ...accessor.Option) *accessor.Verifier {
	f, err := Mapping()
	if err != nil {
		panic(err)
	}

	base := []accessor.Option{
		accessor.WithExample(graph.NamedType{}),
		accessor.WithExample(graph.Message{}),
		accessor.WithExample(graph.Comment{}),
		accessor.WithExample(graph.Property{}),
		accessor.WithExample(graph.Category{}),
		accessor.WithMapping(f),
	}

	return accessor.New(append(base, opts...)...)
}
