package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"recipe-graph/core/recipegraph"
	"recipe-graph/core/records"
	"recipe-graph/core/storage"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// maxCollapsePasses bounds the repeated collapse passes needed for alias chains.
const maxCollapsePasses = 16

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// RecipeView is the JSON shape of a recipe.
type RecipeView struct {
	ID          string                `json:"id"`
	Kind        recipegraph.CraftKind `json:"kind"`
	Results     []recipegraph.Stack   `json:"results"`
	Ingredients []recipegraph.Stack   `json:"ingredients"`
}

// ItemView is the JSON shape of an item with its producing recipes.
type ItemView struct {
	Name    string       `json:"name"`
	Recipes []RecipeView `json:"recipes"`
	Atomic  RecipeView   `json:"atomic"`
}

// PublishResult describes an uploaded export.
type PublishResult struct {
	Object string `json:"object"`
	Size   int    `json:"size"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// session pairs the graphs built from one record snapshot. The raw graph is never
// collapsed so requests that opt out of collapsing see the ore dictionary as stored.
type session struct {
	snap      *records.Snapshot
	raw       *recipegraph.Graph
	collapsed *recipegraph.Graph
	// gate keeps resolutions (read) out of a collapse pass (write).
	gate sync.RWMutex
}

// Service answers graph queries against the current record snapshot.
type Service struct {
	source records.Source
	cache  *records.Cache
	client storage.Client
	bucket string
	cfg    recipegraph.Config
	logger *zap.Logger

	mu      sync.Mutex
	current *session
}

// NewService creates a new graph service. client may be nil when publishing is not used.
func NewService(source records.Source, cache *records.Cache, client storage.Client, bucket string, logger *zap.Logger, cfg recipegraph.Config) *Service {
	return &Service{
		source: source,
		cache:  cache,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// DefaultCollapse reports whether queries collapse unless told otherwise.
func (s *Service) DefaultCollapse() bool {
	return s.cfg.Collapse
}

// Invalidate drops the cached snapshot; the next query reloads records and starts a
// new session.
func (s *Service) Invalidate() {
	s.cache.Invalidate(s.source)
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.logger.Info("Graph session invalidated")
}

func (s *Service) session(ctx context.Context) (*session, error) {
	snap, err := s.cache.Get(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.snap == snap {
		return s.current, nil
	}
	s.current = &session{
		snap:      snap,
		raw:       recipegraph.New(snap.Store, s.cfg.ForceAtomic),
		collapsed: recipegraph.New(snap.Store, s.cfg.ForceAtomic),
	}
	s.logger.Info("Started graph session",
		zap.Int("records", snap.Store.Len()),
		zap.Time("built", snap.Built))
	return s.current, nil
}

func (s *Service) itemName(item string) string {
	if strings.TrimSpace(item) == "" {
		return s.cfg.DefaultItem
	}
	return item
}

// GraphData resolves item down to atomic items and exports the graph reachable from
// it. With collapse set, ore-dictionary aliases are collapsed first; the export root
// then differs from the request when the item itself was a collapsed alias.
func (s *Service) GraphData(ctx context.Context, item string, collapse bool) (*recipegraph.Export, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	raw := s.itemName(item)

	if !collapse {
		root, err := sess.raw.Resolve(raw)
		if err != nil {
			return nil, err
		}
		return sess.raw.Export(root.Name())
	}

	sess.gate.RLock()
	root, err := sess.collapsed.Resolve(raw)
	sess.gate.RUnlock()
	if err != nil {
		return nil, err
	}

	sess.gate.Lock()
	defer sess.gate.Unlock()
	aliases := s.collapseAll(sess.collapsed)
	name := root.Name()
	for i := 0; i < maxCollapsePasses; i++ {
		sub, ok := aliases[name]
		if !ok {
			break
		}
		name = sub
	}
	return sess.collapsed.Export(name)
}

// collapseAll repeats the collapse pass until no single-recipe alias is left. The
// caller holds the session gate for writing.
func (s *Service) collapseAll(g *recipegraph.Graph) map[string]string {
	aliases := make(map[string]string)
	for pass := 0; pass < maxCollapsePasses; pass++ {
		res := g.Collapse()
		if len(res.Aliases) == 0 && len(res.Retained) == 0 {
			break
		}
		for alias, sub := range res.Aliases {
			aliases[alias] = sub
		}
		s.logger.Debug("Collapsed ore dictionary aliases",
			zap.Int("pass", pass),
			zap.Int("aliases", len(res.Aliases)),
			zap.Int("rewritten", res.Rewritten),
			zap.Strings("retained", res.Retained))
	}
	return aliases
}

// Recipes resolves item one level and returns its producing recipes.
func (s *Service) Recipes(ctx context.Context, item string) (*ItemView, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	it, err := sess.raw.GetItem(s.itemName(item))
	if err != nil {
		return nil, err
	}
	view := &ItemView{
		Name:    it.Name(),
		Recipes: []RecipeView{},
		Atomic:  recipeView(it.AtomicRecipe()),
	}
	for _, r := range it.Recipes() {
		view.Recipes = append(view.Recipes, recipeView(r))
	}
	return view, nil
}

// Recipe returns the recipe with the given id.
func (s *Service) Recipe(ctx context.Context, id string) (*RecipeView, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	r, err := sess.raw.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	view := recipeView(r)
	return &view, nil
}

// Suggest returns up to n known result items closest to query by edit distance.
func (s *Service) Suggest(ctx context.Context, query string, n int) ([]string, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return suggest(sess.snap.Store.ResultItems(), query, n), nil
}

// Publish exports the graph of item and uploads it as JSON under the export prefix.
func (s *Service) Publish(ctx context.Context, item string, collapse bool) (*PublishResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	exp, err := s.GraphData(ctx, item, collapse)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(exp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	object := ExportObject(s.cfg.ExportPrefix, exp.Root)
	if _, err := storage.PutBytes(ctx, s.client, s.bucket, object, data, "application/json"); err != nil {
		return nil, err
	}
	s.logger.Info("Published graph export",
		zap.String("item", exp.Root),
		zap.String("object", object),
		zap.Int("nodes", len(exp.Nodes)))

	return &PublishResult{Object: object, Size: len(data), Nodes: len(exp.Nodes), Edges: len(exp.Edges)}, nil
}

// ExportObject returns the bucket key an export of item is published under.
// "<minecraft:coal:1>" becomes "<prefix>/minecraft_coal_1.json".
func ExportObject(prefix, item string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(item, "<"), ">")
	name = strings.Trim(unsafeKeyChars.ReplaceAllString(name, "_"), "_")
	if name == "" {
		name = "item"
	}
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name + ".json"
	}
	return prefix + "/" + name + ".json"
}

func recipeView(r *recipegraph.Recipe) RecipeView {
	return RecipeView{
		ID:          r.ID(),
		Kind:        r.Kind(),
		Results:     r.Results(),
		Ingredients: append([]recipegraph.Stack{}, r.Ingredients()...),
	}
}

type candidate struct {
	name     string
	contains bool
	distance int
}

// suggest ranks names by edit distance to query, ignoring case and brackets. Names
// containing the query rank first.
func suggest(names []string, query string, n int) []string {
	q := normalize(query)
	if q == "" || n <= 0 {
		return []string{}
	}

	cands := make([]candidate, 0, len(names))
	for _, name := range names {
		norm := normalize(name)
		cands = append(cands, candidate{
			name:     name,
			contains: strings.Contains(norm, q),
			distance: levenshtein.ComputeDistance(q, norm),
		})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].contains != cands[j].contains {
			return cands[i].contains
		}
		if cands[i].distance != cands[j].distance {
			return cands[i].distance < cands[j].distance
		}
		return cands[i].name < cands[j].name
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(name), "<>"))
}
