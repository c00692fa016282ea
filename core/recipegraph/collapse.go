package recipegraph

import "sort"

// CollapseResult describes one collapse pass.
type CollapseResult struct {
	// Aliases maps every removed alias to the item its edges now point at.
	Aliases map[string]string `json:"aliases"`
	// Retained lists aliases whose edges were rewritten but which stay cached because
	// another collapsed alias now points at them. A further pass removes them.
	Retained []string `json:"retained,omitempty"`
	// Rewritten counts the ingredient entries that were re-pointed.
	Rewritten int `json:"rewritten"`
}

// Collapse removes ore-dictionary aliases that have exactly one recipe. Every
// ingredient pointing at such an alias is re-pointed to the alias's sole ingredient,
// keeping its amount, and the alias leaves the item cache. The pass works on a single
// snapshot of the cache and does not follow alias chains; calling it again finishes
// what a chain left behind. The session lock is held for the whole pass.
func (g *Graph) Collapse() CollapseResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := CollapseResult{Aliases: make(map[string]string)}

	for name, item := range g.items {
		if !IsOredict(name) || !item.resolved || len(item.recipes) != 1 {
			continue
		}
		r, ok := g.recipes[item.recipes[0]]
		if !ok || len(r.ingredients) == 0 || r.ingredients[0].Item == name {
			continue
		}
		res.Aliases[name] = r.ingredients[0].Item
	}
	if len(res.Aliases) == 0 {
		return res
	}

	for _, r := range g.recipes {
		changed := false
		for i, s := range r.ingredients {
			if sub, ok := res.Aliases[s.Item]; ok {
				r.ingredients[i].Item = sub
				changed = true
				res.Rewritten++
			}
		}
		if changed {
			r.ingredients = mergeStacks(r.ingredients)
		}
	}

	// An alias that is the substitute of another alias is referenced again after the
	// rewrite, so it has to stay.
	retained := make(map[string]struct{})
	for _, sub := range res.Aliases {
		if _, chained := res.Aliases[sub]; chained {
			retained[sub] = struct{}{}
		}
	}
	for keep := range retained {
		delete(res.Aliases, keep)
		res.Retained = append(res.Retained, keep)
	}
	sort.Strings(res.Retained)

	for alias := range res.Aliases {
		delete(g.items, alias)
	}
	return res
}
