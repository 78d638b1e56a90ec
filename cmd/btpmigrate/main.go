package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haroldcampos/biztalk-migrator/pkg/pipeline/parser"
	"github.com/haroldcampos/biztalk-migrator/pkg/registry"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow/drawer"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow/report"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow/serializer"
)

// Version is overridden at build time.
var Version = "dev"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "btpmigrate",
		Short:         "Translate BizTalk pipeline documents into Logic Apps workflows",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCmd(), newMappingsCmd())

	return cmd
}

type migrateOptions struct {
	mappings    string
	name        string
	outDir      string
	diagram     bool
	report      bool
	concurrency int
	verbose     bool
}

func newMigrateCmd() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate <pipeline.btp> [pipeline.btp...]",
		Short: "Map one or more .btp pipeline documents to workflow definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mappings, "mappings", "", "component mappings file (default: embedded table)")
	cmd.Flags().StringVar(&opts.name, "name", "", "workflow name override (single input only)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", ".", "directory for produced workflow definitions")
	cmd.Flags().BoolVar(&opts.diagram, "diagram", false, "also write a Graphviz DOT diagram per workflow")
	cmd.Flags().BoolVar(&opts.report, "report", false, "print a migration summary after the batch")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "maximum pipelines migrated in parallel")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runMigrate(cmd *cobra.Command, args []string, opts *migrateOptions) error {
	if opts.name != "" && len(args) > 1 {
		return fmt.Errorf("--name applies to a single input, got %d", len(args))
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	reg := registry.New(opts.mappings, logger)
	collector := report.NewDefault()
	mapper := workflow.New(reg,
		workflow.WithLogger(logger),
		workflow.WithCollector(collector),
	)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	errs := runBatch(cmd.Context(), args, opts.concurrency, func(path string) error {
		return migrateFile(mapper, path, opts, logger)
	})

	for _, err := range errs {
		logger.Error("migration failed", "error", err)
	}

	if opts.report {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := collector.Summary().Render(cmd.OutOrStdout(), reg); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d pipelines failed to migrate", len(errs), len(args))
	}

	return nil
}

func migrateFile(mapper *workflow.Mapper, path string, opts *migrateOptions, logger *slog.Logger) error {
	doc, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	wf, err := mapper.MapToWorkflow(doc, opts.name)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(opts.outDir, stem+".workflow.json")
	if err := serializer.WriteFile(outPath, wf); err != nil {
		return err
	}

	if opts.diagram {
		dotPath := filepath.Join(opts.outDir, stem+".dot")
		if err := drawer.DrawWorkflow(drawer.NewDOTDrawer(dotPath), wf); err != nil {
			return err
		}
	}

	logger.Info("pipeline migrated",
		"pipeline", path,
		"workflow", outPath,
		"actions", wf.ActionCount(),
	)

	return nil
}

func newMappingsCmd() *cobra.Command {
	var mappings string

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "List the known component migration mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), false)
			reg := registry.New(mappings, logger)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "IDENTITY\tDISPLAY NAME\tACTION\tCOMPLEXITY\tCUSTOM CODE")
			for _, m := range reg.ResolveAll() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					m.Identity, m.DisplayName, m.Action.Type, m.Complexity, m.CustomCodeRequired)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&mappings, "mappings", "", "component mappings file (default: embedded table)")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
