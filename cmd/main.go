package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/brettbedarf/fsgraph/adapter"
	"github.com/brettbedarf/fsgraph/config"
	"github.com/brettbedarf/fsgraph/internal/util"
	"github.com/brettbedarf/fsgraph/internal/walk"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	configPath string
	verbose    int
	edges      []string
	props      []string
	where      []string
	limit      int
	format     string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "fsgraph [origin]",
		Short: "Query a directory tree as a graph",
		Long: `fsgraph exposes a directory tree as a graph of Directory and File vertices.

It starts at the origin directory, follows the given edges in order and prints
the requested properties of every vertex reached.

Edges:
  out_Directory_Subdirectory   Directory -> Directory (skips .git, .vscode, target)
  out_Directory_ContainsFile   Directory -> File

Example:
  fsgraph . -e out_Directory_Subdirectory -e out_Directory_ContainsFile -p path -w extension=go`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	flags.StringArrayVarP(&opts.edges, "edge", "e", nil, "Edge to follow; repeat to follow a path")
	flags.StringArrayVarP(&opts.props, "prop", "p", nil, "Property to print; repeat for more (default all)")
	flags.StringArrayVarP(&opts.where, "where", "w", nil, "Keep rows where property=value; repeatable")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of rows (0 for no limit)")
	flags.StringVarP(&opts.format, "format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(opts.configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	override := &config.ConfigOverride{}
	if len(args) == 1 {
		override.Origin = &args[0]
	}
	if cmd.Flags().Changed("verbose") {
		override.LogLvl = &opts.verbose
	}
	cfg.Merge(override)

	util.InitializeLoggerTo(cmd.ErrOrStderr(), cfg.LogLvl)
	logger := util.GetLogger("main")

	query := walk.Query{Edges: opts.edges, Properties: opts.props, Limit: opts.limit}
	for _, w := range opts.where {
		f, err := walk.ParseFilter(w)
		if err != nil {
			return err
		}
		query.Filters = append(query.Filters, f)
	}

	// scans treat an unreadable origin as fatal, so reject it up front
	if info, err := os.Stat(cfg.Origin); err != nil {
		return fmt.Errorf("cannot read origin: %w", err)
	} else if !info.IsDir() {
		return fmt.Errorf("origin %s is not a directory", cfg.Origin)
	}

	a, err := adapter.New(cfg)
	if err != nil {
		return err
	}
	logger.Debug().Str("origin", cfg.Origin).Strs("edges", query.Edges).Msg("Running query")

	results, err := walk.Run(a, query)
	if err != nil {
		return err
	}
	logger.Debug().Int("rows", len(results)).Msg("Query finished")
	return write(cmd.OutOrStdout(), opts.format, results)
}

func write(out io.Writer, format string, results []walk.Result) error {
	if results == nil {
		results = []walk.Result{}
	}
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := util.GetLogger("main")
		logger.Error().Err(err).Msg("fsgraph failed")
		os.Exit(1)
	}
}
