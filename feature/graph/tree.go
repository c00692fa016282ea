package graph

import (
	"fmt"
	"io"
	"strings"

	"recipe-graph/core/recipegraph"
)

// RenderTree writes exp as an indented text tree: each item lists its recipes, each
// recipe its ingredients with amounts. Items already expanded are marked instead of
// repeated.
func RenderTree(w io.Writer, exp *recipegraph.Export) error {
	recipesOf := make(map[string][]recipegraph.Edge)
	ingredientsOf := make(map[string][]recipegraph.Edge)
	for _, e := range exp.Edges {
		switch e.Kind {
		case recipegraph.EdgeResult:
			recipesOf[e.Source] = append(recipesOf[e.Source], e)
		case recipegraph.EdgeIngredient:
			ingredientsOf[e.Source] = append(ingredientsOf[e.Source], e)
		}
	}

	tw := &treeWriter{w: w, seen: make(map[string]bool)}
	tw.item(exp.Root, 1, 0, recipesOf, ingredientsOf)
	return tw.err
}

type treeWriter struct {
	w    io.Writer
	seen map[string]bool
	err  error
}

func (t *treeWriter) line(depth int, format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (t *treeWriter) item(name string, amount, depth int, recipesOf, ingredientsOf map[string][]recipegraph.Edge) {
	recipes := recipesOf[name]
	switch {
	case len(recipes) == 0:
		t.line(depth, "%dx %s (atomic)", amount, name)
		return
	case t.seen[name]:
		t.line(depth, "%dx %s (see above)", amount, name)
		return
	}
	t.seen[name] = true
	t.line(depth, "%dx %s", amount, name)

	for _, r := range recipes {
		t.line(depth+1, "[%s] makes %d", r.Target, r.Amount)
		for _, in := range ingredientsOf[r.Target] {
			t.item(in.Target, in.Amount, depth+2, recipesOf, ingredientsOf)
		}
	}
}
