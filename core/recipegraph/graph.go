package recipegraph

import (
	"sort"
	"strings"
	"sync"

	"recipe-graph/core/records"

	"golang.org/x/sync/singleflight"
)

// RecordStore is the read-only view of the record store the graph resolves against.
type RecordStore interface {
	// Record returns the record with the given id.
	Record(id string) (records.Record, bool)
	// ByResult returns every record producing item, in stored order.
	ByResult(item string) []records.Record
}

// Graph is a resolution session: it owns the item and recipe caches built from one
// record store. All methods are safe for concurrent use.
type Graph struct {
	store       RecordStore
	forceAtomic map[string]struct{}

	mu      sync.RWMutex
	items   map[string]*Item
	recipes map[string]*Recipe

	sf singleflight.Group
}

// New creates an empty session over store. Items named in forceAtomic resolve to no
// crafted recipes even when the store has records for them.
func New(store RecordStore, forceAtomic []string) *Graph {
	fa := make(map[string]struct{}, len(forceAtomic))
	for _, raw := range forceAtomic {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if name, err := CanonicalName(raw); err == nil {
			raw = name
		}
		fa[raw] = struct{}{}
	}
	return &Graph{
		store:       store,
		forceAtomic: fa,
		items:       make(map[string]*Item),
		recipes:     make(map[string]*Recipe),
	}
}

// GetItem returns the cached item for raw, creating it and resolving the recipes that
// produce it on first reference. Ingredient items are interned but not resolved.
func (g *Graph) GetItem(raw string) (*Item, error) {
	name, err := CanonicalName(raw)
	if err != nil {
		return nil, err
	}
	item := g.intern(name)
	if err := g.resolveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Lookup returns the cached item with the given canonical name without resolving it.
func (g *Graph) Lookup(name string) (*Item, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	item, ok := g.items[name]
	return item, ok
}

// Resolve is GetItem followed by a recursive ResolveRecipes: it builds the whole
// dependency tree of raw.
func (g *Graph) Resolve(raw string) (*Item, error) {
	item, err := g.GetItem(raw)
	if err != nil {
		return nil, err
	}
	if _, err := g.ResolveRecipes(item, true); err != nil {
		return nil, err
	}
	return item, nil
}

// ResolveRecipes resolves the recipes producing item and returns them. With recursive
// set, every ingredient reachable from item is resolved too, depth-first. Items are
// resolved once per session, so crafting loops terminate.
func (g *Graph) ResolveRecipes(item *Item, recursive bool) ([]*Recipe, error) {
	if err := g.resolveItem(item); err != nil {
		return nil, err
	}
	if recursive {
		if err := g.expand(item); err != nil {
			return nil, err
		}
	}
	return item.Recipes(), nil
}

// ResolveUsages would list the recipes consuming item. It is not supported.
func (g *Graph) ResolveUsages(item *Item) ([]*Recipe, error) {
	return nil, &UnsupportedOperationError{Op: "resolve usages"}
}

// GetRecipe returns the recipe with the given id, building it from the record store on
// first reference. Ids starting with "atomic:" name the atomic recipe of an item.
func (g *Graph) GetRecipe(id string) (*Recipe, error) {
	g.mu.RLock()
	r, ok := g.recipes[id]
	g.mu.RUnlock()
	if ok {
		return r, nil
	}

	if strings.HasPrefix(id, atomicPrefix) {
		name := "<" + strings.TrimPrefix(id, atomicPrefix) + ">"
		if canonical, err := CanonicalName(name); err != nil || canonical != name {
			return nil, &RecipeNotFoundError{ID: id}
		}
		return g.intern(name).atomic, nil
	}

	rec, ok := g.store.Record(id)
	if !ok {
		return nil, &RecipeNotFoundError{ID: id}
	}
	built, err := g.buildRecipe(rec)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registerLocked(built), nil
}

// Items returns every cached item sorted by name.
func (g *Graph) Items() []*Item {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Item, 0, len(g.items))
	for _, item := range g.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Stats returns the number of cached items and recipes.
func (g *Graph) Stats() (items, recipes int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items), len(g.recipes)
}

func (g *Graph) isForceAtomic(name string) bool {
	_, ok := g.forceAtomic[name]
	return ok
}

func (g *Graph) intern(name string) *Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.internLocked(name)
}

// internLocked must be called with g.mu held for writing.
func (g *Graph) internLocked(name string) *Item {
	if item, ok := g.items[name]; ok {
		return item
	}
	item := &Item{g: g, name: name}
	item.atomic = g.atomicRecipeLocked(name)
	g.items[name] = item
	return item
}

func (g *Graph) atomicRecipeLocked(name string) *Recipe {
	id := AtomicRecipeID(name)
	if r, ok := g.recipes[id]; ok {
		return r
	}
	r := &Recipe{
		g:       g,
		id:      id,
		kind:    KindAtomic,
		results: []Stack{{Item: name, Amount: 1}},
	}
	g.recipes[id] = r
	return r
}

// registerLocked stores r unless a recipe with the same id is already cached, in which
// case the cached one is returned. Every item r mentions is interned.
func (g *Graph) registerLocked(r *Recipe) *Recipe {
	if existing, ok := g.recipes[r.id]; ok {
		return existing
	}
	for _, s := range r.results {
		g.internLocked(s.Item)
	}
	for _, s := range r.ingredients {
		g.internLocked(s.Item)
	}
	g.recipes[r.id] = r
	return r
}

// buildRecipe parses rec without touching the caches.
func (g *Graph) buildRecipe(rec records.Record) (*Recipe, error) {
	result, err := CanonicalName(rec.ResItem)
	if err != nil {
		return nil, err
	}
	ingredients, err := ParseIngredients(rec.CraftRaw)
	if err != nil {
		return nil, err
	}
	return &Recipe{
		g:           g,
		id:          rec.ID,
		kind:        CraftKind(rec.CraftType),
		results:     []Stack{{Item: result, Amount: rec.ResultAmount()}},
		ingredients: ingredients,
	}, nil
}

func (g *Graph) resolveItem(item *Item) error {
	if item.Resolved() {
		return nil
	}
	_, err, _ := g.sf.Do(item.name, func() (interface{}, error) {
		return nil, g.resolveItemOnce(item)
	})
	if err != nil {
		return err
	}
	// A shared call may have resolved an older item of the same name that a collapse
	// removed in the meantime.
	if !item.Resolved() {
		return g.resolveItemOnce(item)
	}
	return nil
}

// resolveItemOnce reads the store without holding the lock, then commits every
// discovered recipe and the resolved flag in a single critical section.
func (g *Graph) resolveItemOnce(item *Item) error {
	if item.Resolved() {
		return nil
	}

	var built []*Recipe
	if !g.isForceAtomic(item.name) {
		for _, rec := range g.store.ByResult(item.name) {
			r, err := g.buildRecipe(rec)
			if err != nil {
				return err
			}
			built = append(built, r)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if item.resolved {
		return nil
	}
	for _, r := range built {
		r = g.registerLocked(r)
		item.recipes = append(item.recipes, r.id)
	}
	item.resolved = true
	return nil
}

// expand resolves everything reachable from root with an explicit stack.
func (g *Graph) expand(root *Item) error {
	seen := map[string]struct{}{root.name: {}}
	stack := []*Item{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := g.resolveItem(cur); err != nil {
			return err
		}

		next := g.ingredientNames(cur)
		for i := len(next) - 1; i >= 0; i-- {
			if _, ok := seen[next[i]]; ok {
				continue
			}
			seen[next[i]] = struct{}{}
			stack = append(stack, g.intern(next[i]))
		}
	}
	return nil
}

func (g *Graph) ingredientNames(item *Item) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var names []string
	for _, r := range item.recipesLocked() {
		for _, s := range r.ingredients {
			names = append(names, s.Item)
		}
	}
	return names
}
