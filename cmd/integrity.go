package cmd

import (
	"context"

	"recipe-graph/core/reconcile"
	"recipe-graph/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool
var limitFlag int
var sinkOpts reconcile.ReconcileOptions

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, database and records",
	Long:  `Checks the bucket folder structure, the record tables and the validity of every loaded record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// sinksCmd represents the integrity sinks command
var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "Reconcile the record rows of the bucket object, the CSV file and the database",
	Long: `Compares every reachable record sink against the bucket object. With --purge and
--sync the recipes table is repaired from the reference; nothing is written without --confirm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSinksCheck(cmd.Context())
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the record tables against their models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// recordsCmd represents the integrity records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Validate every record of the configured source",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, recordsCmd, sinksCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
	recordsCmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of issues listed")
	sinksCmd.Flags().BoolVar(&sinkOpts.DoPurge, "purge", false, "Delete database rows missing in the reference")
	sinksCmd.Flags().BoolVar(&sinkOpts.DoSync, "sync", false, "Upsert reference rows missing or different in the database")
	sinksCmd.Flags().BoolVar(&sinkOpts.DryRun, "dry-run", false, "Plan only, even with --confirm")
	sinksCmd.Flags().BoolVar(&sinkOpts.Confirmed, "confirm", false, "Apply the planned actions")
}

func runSinksCheck(ctx context.Context) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	source, cache, _ := rt.records()
	svc := integrity.NewService(rt.store, rt.cfg.Storage, logg, rt.db, source, cache, rt.folders(), rt.sinks())

	logg.Info("Reconciling record sinks...")
	plan, executed, err := svc.ReconcileSinks(ctx, sinkOpts)
	if err != nil {
		return err
	}

	for _, r := range plan.Results {
		logg.Warn("Inconsistent record",
			zap.String("id", r.ID),
			zap.Any("present", r.Present),
			zap.Strings("mismatch", r.Mismatch))
	}
	logg.Info("Sinks reconciled",
		zap.String("reference", plan.Reference),
		zap.Int("total", plan.Summary.TotalItems),
		zap.Any("missing", plan.Summary.Missing),
		zap.Int("mismatches", plan.Summary.Mismatches),
		zap.Int("purge_actions", plan.Summary.PurgeActions),
		zap.Int("sync_actions", plan.Summary.SyncActions),
		zap.Int("executed", executed))

	if len(plan.Actions) > 0 && executed == 0 {
		logg.Info("Run with --confirm to apply the planned actions.")
	}
	return nil
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema, runRecords bool) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	source, cache, err := rt.records()
	if err != nil && runRecords {
		logg.Warn("Record source unavailable", zap.Error(err))
	}

	svc := integrity.NewService(rt.store, rt.cfg.Storage, logg, rt.db, source, cache, rt.folders(), nil)
	onlyStructure := runStructure && !runSchema && !runRecords

	if runStructure {
		logg.Info("Checking folder structure...")
		report, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		if report.OK() {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing structure detected",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing))

			if onlyStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, report.Missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Database schema matches expected definition.", zap.String("dialect", report.Dialect))
		} else {
			logg.Warn("Database schema mismatches found", zap.String("dialect", report.Dialect))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runRecords {
		logg.Info("Checking records...")
		report, err := svc.CheckRecords(ctx, limitFlag)
		if err != nil {
			logg.Error("Records check failed", zap.Error(err))
		} else if report.Invalid == 0 {
			logg.Info("All records are valid.", zap.Int("total", report.Total))
		} else {
			for _, issue := range report.Issues {
				logg.Warn("Invalid record",
					zap.String("id", issue.ID),
					zap.String("problem", issue.Problem),
					zap.String("detail", issue.Detail))
			}
			logg.Warn("Records check completed",
				zap.Int("total", report.Total),
				zap.Int("invalid", report.Invalid),
				zap.Any("by_problem", report.ByProblem))
		}
	}

	return nil
}
