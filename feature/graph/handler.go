package graph

import (
	"errors"

	"recipe-graph/core/logger"
	"recipe-graph/core/recipegraph"
	"recipe-graph/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultSuggestions = 5
	maxSuggestions     = 50
)

// Handler handles HTTP requests for recipe graphs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the graph routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/graph")
	group.Get("/", h.HandleGraph)
	group.Get("/recipes", h.HandleRecipes)
	group.Get("/recipe", h.HandleRecipe)
	group.Get("/suggest", h.HandleSuggest)
	group.Post("/publish", h.HandlePublish)
}

// HandleGraph resolves an item and returns its graph.
// @Summary Get Recipe Graph
// @Description Resolves the item recursively down to atomic items and returns the node and edge lists. Ore dictionary aliases with a single accepted item are collapsed unless collapse=false.
// @Tags graph
// @Produce json
// @Param item query string false "Item reference, e.g. <minecraft:chest> (defaults to the configured item)"
// @Param collapse query boolean false "Collapse single-item ore dictionary aliases"
// @Success 200 {object} recipegraph.Export "Graph"
// @Failure 400 {object} map[string]interface{} "Malformed item reference"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph [get]
func (h *Handler) HandleGraph(c *fiber.Ctx) error {
	item := c.Query("item")
	collapse := utils.FlagOrDefault(c.Query("collapse"), h.service.DefaultCollapse())

	exp, err := h.service.GraphData(c.Context(), item, collapse)
	if err != nil {
		return h.fail(c, err, item)
	}
	return c.JSON(exp)
}

// HandleRecipes lists the recipes producing an item.
// @Summary List Item Recipes
// @Description Returns the crafted recipes producing the item in record order, plus its atomic recipe.
// @Tags graph
// @Produce json
// @Param item query string false "Item reference"
// @Success 200 {object} graph.ItemView "Item"
// @Failure 400 {object} map[string]interface{} "Malformed item reference"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph/recipes [get]
func (h *Handler) HandleRecipes(c *fiber.Ctx) error {
	item := c.Query("item")
	view, err := h.service.Recipes(c.Context(), item)
	if err != nil {
		return h.fail(c, err, item)
	}
	return c.JSON(view)
}

// HandleRecipe returns a single recipe.
// @Summary Get Recipe
// @Description Returns a recipe by id. Ids starting with atomic: name the atomic recipe of an item.
// @Tags graph
// @Produce json
// @Param id query string true "Recipe id"
// @Success 200 {object} graph.RecipeView "Recipe"
// @Failure 404 {object} map[string]string "Recipe not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph/recipe [get]
func (h *Handler) HandleRecipe(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}
	view, err := h.service.Recipe(c.Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(view)
}

// HandleSuggest returns item names close to a query.
// @Summary Suggest Items
// @Description Returns known result items ranked by similarity to the query.
// @Tags graph
// @Produce json
// @Param q query string true "Partial item name"
// @Param limit query int false "Maximum number of suggestions"
// @Success 200 {object} map[string][]string "Suggestions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph/suggest [get]
func (h *Handler) HandleSuggest(c *fiber.Ctx) error {
	limit := utils.ToInt(c.Query("limit"))
	if limit <= 0 {
		limit = defaultSuggestions
	}
	if limit > maxSuggestions {
		limit = maxSuggestions
	}

	names, err := h.service.Suggest(c.Context(), c.Query("q"), limit)
	if err != nil {
		return h.fail(c, err, "")
	}
	return c.JSON(fiber.Map{"suggestions": names})
}

// HandlePublish uploads the graph of an item to the bucket.
// @Summary Publish Recipe Graph
// @Description Resolves the item and uploads the exported graph as JSON under the export prefix.
// @Tags graph
// @Produce json
// @Param item query string false "Item reference"
// @Param collapse query boolean false "Collapse single-item ore dictionary aliases"
// @Success 200 {object} graph.PublishResult "Published object"
// @Failure 400 {object} map[string]interface{} "Malformed item reference"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /graph/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	item := c.Query("item")
	collapse := utils.FlagOrDefault(c.Query("collapse"), h.service.DefaultCollapse())

	res, err := h.service.Publish(c.Context(), item, collapse)
	if err != nil {
		return h.fail(c, err, item)
	}
	return c.JSON(res)
}

// fail maps engine errors to HTTP statuses. Malformed references come back with the
// closest known item names.
func (h *Handler) fail(c *fiber.Ctx, err error, item string) error {
	l := logger.WithRayID(h.service.logger, c)

	var (
		malformed   *recipegraph.MalformedReferenceError
		notFound    *recipegraph.RecipeNotFoundError
		notCached   *recipegraph.ItemNotCachedError
		unsupported *recipegraph.UnsupportedOperationError
	)
	switch {
	case errors.As(err, &malformed):
		l.Info("Malformed item reference", zap.String("ref", malformed.Ref))
		body := fiber.Map{"error": err.Error()}
		if item != "" {
			if names, serr := h.service.Suggest(c.Context(), item, defaultSuggestions); serr == nil {
				body["suggestions"] = names
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.As(err, &notFound), errors.As(err, &notCached):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &unsupported):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Graph request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
