package recipegraph

import "fmt"

// NodeKind distinguishes item nodes from recipe nodes.
type NodeKind string

const (
	NodeItem   NodeKind = "item"
	NodeRecipe NodeKind = "recipe"
)

// EdgeKind is the relation an edge represents.
type EdgeKind string

const (
	// EdgeIngredient points from a recipe to an item it consumes.
	EdgeIngredient EdgeKind = "ingredient"
	// EdgeResult points from an item to a recipe producing it.
	EdgeResult EdgeKind = "result"
	// EdgeAlternative points from an earlier recipe of an item to a later one.
	EdgeAlternative EdgeKind = "alternative"
)

// Node is a vertex of the exported graph.
type Node struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Parent string   `json:"parent,omitempty"`
	Kind   NodeKind `json:"kind"`
}

// Edge is a directed edge of the exported graph. Amount is zero for alternative edges.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
	Amount int      `json:"amount,omitempty"`
}

// Export is the flattened graph reachable from Root.
type Export struct {
	Root  string `json:"root"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ItemNotCachedError is returned when exporting an item the session has not seen.
type ItemNotCachedError struct {
	Name string
}

func (e *ItemNotCachedError) Error() string {
	return fmt.Sprintf("item %s is not in the graph", e.Name)
}

// Export walks the ingredient edges outward from root, depth-first, visiting each item
// once. Per item it emits the item node, one node per crafted recipe, a result edge
// per recipe result and an ingredient edge per ingredient. When an item has several
// recipes they are grouped under the item as parent and every earlier recipe gets an
// alternative edge to each later one.
func (g *Graph) Export(root string) (*Export, error) {
	name, err := CanonicalName(root)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.items[name]; !ok {
		return nil, &ItemNotCachedError{Name: name}
	}

	exp := &Export{Root: name, Nodes: []Node{}, Edges: []Edge{}}
	visited := make(map[string]struct{})
	stack := []string{name}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}

		exp.Nodes = append(exp.Nodes, Node{ID: cur, Label: cur, Kind: NodeItem})

		item, ok := g.items[cur]
		if !ok {
			continue
		}

		recipes := item.recipesLocked()
		grouped := len(recipes) > 1
		var next []string
		for i, r := range recipes {
			node := Node{ID: r.id, Label: r.id, Kind: NodeRecipe}
			if grouped {
				node.Parent = cur
			}
			exp.Nodes = append(exp.Nodes, node)

			for j := 0; j < i; j++ {
				exp.Edges = append(exp.Edges, Edge{Source: recipes[j].id, Target: r.id, Kind: EdgeAlternative})
			}
			for _, s := range r.results {
				exp.Edges = append(exp.Edges, Edge{Source: s.Item, Target: r.id, Kind: EdgeResult, Amount: s.Amount})
			}
			for _, s := range r.ingredients {
				exp.Edges = append(exp.Edges, Edge{Source: r.id, Target: s.Item, Kind: EdgeIngredient, Amount: s.Amount})
				next = append(next, s.Item)
			}
		}

		for i := len(next) - 1; i >= 0; i-- {
			if _, ok := visited[next[i]]; !ok {
				stack = append(stack, next[i])
			}
		}
	}
	return exp, nil
}
