package cmd

import (
	"fmt"

	"recipe-graph/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [logfile]",
	Short: "Parse a crafttweaker log into recipe records",
	Long: `Parses a crafttweaker.log dump (a local file, or the dump object in the bucket when
no file is given) into recipe and mod rows, and writes them to recipes.csv and mods.csv.
Use --db to upsert the rows into the database and --upload to put the recipes CSV into the bucket.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		outDir, _ := cmd.Flags().GetString("out")
		toDB, _ := cmd.Flags().GetBool("db")
		upload, _ := cmd.Flags().GetBool("upload")
		object, _ := cmd.Flags().GetString("object")

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		svc := ingest.NewService(rt.store, rt.cfg.Storage.Bucket, logg, rt.db, rt.cfg.Records)

		var res *ingest.Result
		if len(args) == 1 {
			logg.Info("Parsing log file", zap.String("file", args[0]))
			res, err = svc.ParseFile(args[0])
		} else {
			logg.Info("Parsing log object", zap.String("bucket", rt.cfg.Storage.Bucket), zap.String("object", object))
			res, err = svc.ParseObject(ctx, object)
		}
		if err != nil {
			return err
		}

		summary, err := svc.Store(ctx, res, ingest.Sinks{Dir: outDir, DB: toDB, Upload: upload})
		if err != nil {
			return err
		}

		fmt.Println("\n=== Parse Summary ===")
		fmt.Printf("Blocks: %d\n", res.Blocks)
		fmt.Printf("Records: %d\n", len(res.Records))
		fmt.Printf("Mods: %d\n", len(res.Mods))
		fmt.Printf("Duplicates: %d\n", res.Duplicates)
		fmt.Printf("Skipped Lines: %d\n", res.Skipped)
		for _, w := range summary.Written {
			fmt.Printf("Written: %s\n", w)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("out", ".", "Directory for recipes.csv and mods.csv (empty disables)")
	parseCmd.Flags().Bool("db", false, "Upsert rows into the database")
	parseCmd.Flags().Bool("upload", false, "Upload the recipes CSV to the bucket")
	parseCmd.Flags().String("object", "", "Log object in the bucket when no file is given (defaults to records.dump_object)")
}
