package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spachava753/plugingroups/internal/catalog"
	"github.com/spachava753/plugingroups/internal/compat"
	"github.com/spachava753/plugingroups/internal/config"
	"github.com/spachava753/plugingroups/internal/group"
	"github.com/spachava753/plugingroups/internal/models"
	"github.com/spachava753/plugingroups/internal/output"
)

// Options tunes a single run.
type Options struct {
	Stdout  io.Writer   // missing report and summary; defaults to os.Stdout
	Clock   group.Clock // defaults to group.SystemClock
	Summary bool        // print a repository table after writing the document
}

// Result describes what a run produced.
type Result struct {
	Group        models.PluginGroup
	Missing      []string
	Incompatible []compat.Incompatibility
	OutputFile   string
}

// Run reads the plugin list, resolves it against the catalog and writes the
// group document. Missing plugins are reported but do not fail the run.
func Run(ctx context.Context, cfg config.Config, opts Options) (*Result, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ids, err := config.ReadPluginIDs(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	if ids.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.InputFile, models.ErrNoPlugins)
	}
	slog.Info("read plugin list", "path", cfg.InputFile, "plugins", ids.Len())

	fetchCtx := ctx
	if timeout := cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	snapshot, err := catalog.Load(fetchCtx, cfg.CatalogURL, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("loaded catalog", "plugins", len(snapshot.Plugins))

	lookup := catalog.NewUpdateCenterLookup(snapshot)
	lookup.Strict = cfg.StrictSCM

	resolver := group.NewResolver(lookup, opts.Clock)
	resolution := resolver.Create(models.PluginGroupSpec{
		Name:        cfg.Group.Name,
		PluginIDs:   ids,
		Description: cfg.Group.Description,
	})

	res := &Result{
		Group:      resolution.PluginGroup,
		Missing:    resolution.MissingIDs(),
		OutputFile: cfg.OutputFile,
	}

	output.PrintMissing(opts.Stdout, res.Missing)

	if cfg.CoreVersion != "" {
		resolved := models.NewIDSet()
		for id := range ids {
			if _, ok := resolution.Missing[id]; !ok {
				resolved.Add(id)
			}
		}
		res.Incompatible, err = compat.Check(snapshot, resolved, cfg.CoreVersion)
		if err != nil {
			return nil, err
		}
		compat.Report(res.Incompatible, cfg.CoreVersion)
	}

	if err := output.WriteGroup(cfg.OutputFile, res.Group); err != nil {
		return nil, err
	}
	slog.Info("wrote plugin group",
		"path", cfg.OutputFile,
		"group", res.Group.Name,
		"repositories", res.Group.Count(),
		"missing", len(res.Missing))

	if opts.Summary {
		output.PrintSummary(opts.Stdout, res.Group)
	}

	return res, nil
}
