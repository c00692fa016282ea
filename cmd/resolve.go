package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"recipe-graph/core/recipegraph"
	"recipe-graph/feature/graph"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [item]",
	Short: "Resolve an item down to raw resources",
	Long: `Resolves every recipe of the item recursively and prints the result as a tree.
The item defaults to graph.default_item. Use --json to save the node and edge export
and --publish to upload it under the export prefix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonPath, _ := cmd.Flags().GetString("json")
		noCollapse, _ := cmd.Flags().GetBool("no-collapse")
		publish, _ := cmd.Flags().GetBool("publish")

		var item string
		if len(args) == 1 {
			item = args[0]
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		source, cache, err := rt.records()
		if err != nil {
			return err
		}
		svc := graph.NewService(source, cache, rt.store, rt.cfg.Storage.Bucket, logg, rt.cfg.Graph)
		collapse := svc.DefaultCollapse() && !noCollapse

		exp, err := svc.GraphData(ctx, item, collapse)
		if err != nil {
			var malformed *recipegraph.MalformedReferenceError
			if errors.As(err, &malformed) {
				if names, sErr := svc.Suggest(ctx, item, 5); sErr == nil && len(names) > 0 {
					return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(names, ", "))
				}
			}
			return err
		}

		if err := graph.RenderTree(os.Stdout, exp); err != nil {
			return err
		}

		if jsonPath != "" {
			data, err := json.MarshalIndent(exp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(jsonPath, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Graph JSON saved", zap.String("file", jsonPath),
				zap.Int("nodes", len(exp.Nodes)), zap.Int("edges", len(exp.Edges)))
		}

		if publish {
			res, err := svc.Publish(ctx, exp.Root, collapse)
			if err != nil {
				return err
			}
			logg.Info("Graph published", zap.String("object", res.Object), zap.Int("size", res.Size))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("json", "", "Save the node and edge export to this file")
	resolveCmd.Flags().Bool("no-collapse", false, "Keep single-item ore dictionary aliases")
	resolveCmd.Flags().Bool("publish", false, "Upload the export to the bucket")
}
