package recipegraph

// CraftKind is the kind of transformation a recipe represents.
type CraftKind string

const (
	KindShaped    CraftKind = "shaped"
	KindShapeless CraftKind = "shapeless"
	KindFurnace   CraftKind = "furnace"
	KindOredict   CraftKind = "oredict"
	KindAtomic    CraftKind = "atomic"
)

// Stack is a quantified reference to an item by name.
type Stack struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// Item is a node of the graph. Its identity is its name. Items are owned by the
// Graph that created them; accessors take the graph's read lock.
type Item struct {
	g        *Graph
	name     string
	resolved bool
	recipes  []string
	atomic   *Recipe
}

// Name returns the canonical item name.
func (i *Item) Name() string {
	return i.name
}

// Resolved reports whether the item's producing recipes have been looked up.
func (i *Item) Resolved() bool {
	i.g.mu.RLock()
	defer i.g.mu.RUnlock()
	return i.resolved
}

// Recipes returns the crafted recipes producing the item, in record store order.
func (i *Item) Recipes() []*Recipe {
	i.g.mu.RLock()
	defer i.g.mu.RUnlock()
	return i.recipesLocked()
}

func (i *Item) recipesLocked() []*Recipe {
	out := make([]*Recipe, 0, len(i.recipes))
	for _, id := range i.recipes {
		if r, ok := i.g.recipes[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// AtomicRecipe returns the synthetic ingredient-free recipe producing the item.
func (i *Item) AtomicRecipe() *Recipe {
	return i.atomic
}

// RecipesFull returns the crafted recipes followed by the atomic recipe.
func (i *Item) RecipesFull() []*Recipe {
	return append(i.Recipes(), i.atomic)
}

func (i *Item) String() string {
	return "<Item name=" + i.name + ">"
}

// Recipe is an edge set of the graph: a named transformation of ingredients into
// results. Ingredients never contain the same item twice.
type Recipe struct {
	g           *Graph
	id          string
	kind        CraftKind
	results     []Stack
	ingredients []Stack
}

// ID returns the recipe id.
func (r *Recipe) ID() string {
	return r.id
}

// Kind returns the craft kind.
func (r *Recipe) Kind() CraftKind {
	return r.kind
}

// Results returns a copy of the result stacks.
func (r *Recipe) Results() []Stack {
	r.g.mu.RLock()
	defer r.g.mu.RUnlock()
	return append([]Stack(nil), r.results...)
}

// Ingredients returns a copy of the ingredient stacks.
func (r *Recipe) Ingredients() []Stack {
	r.g.mu.RLock()
	defer r.g.mu.RUnlock()
	return append([]Stack(nil), r.ingredients...)
}

func (r *Recipe) String() string {
	return "<Recipe name=" + r.id + ">"
}

// mergeStacks sums the amounts of stacks naming the same item, keeping the order of
// first appearance.
func mergeStacks(stacks []Stack) []Stack {
	out := make([]Stack, 0, len(stacks))
	index := make(map[string]int, len(stacks))
	for _, s := range stacks {
		if i, ok := index[s.Item]; ok {
			out[i].Amount += s.Amount
			continue
		}
		index[s.Item] = len(out)
		out = append(out, s)
	}
	return out
}
