package group

import (
	"fmt"
	"log/slog"

	"github.com/spachava753/plugingroups/internal/catalog"
	"github.com/spachava753/plugingroups/internal/models"
)

// Resolver builds plugin groups by resolving each requested plugin through a
// catalog lookup.
type Resolver struct {
	lookup catalog.Lookup
	clock  Clock
}

// NewResolver creates a new Resolver. A nil clock falls back to SystemClock.
func NewResolver(lookup catalog.Lookup, clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{
		lookup: lookup,
		clock:  clock,
	}
}

// Create resolves every plugin in spec and assembles the group. Repositories
// are deduplicated by their ID, so distinct plugins hosted in the same
// repository and branch produce a single entry. Unresolvable plugins are
// returned in Missing rather than as an error.
func (r *Resolver) Create(spec models.PluginGroupSpec) models.GroupResolutionResult {
	repos := make(map[string]models.RepositoryDescriptor)
	missing := make(map[string]models.Missing)

	for id := range spec.PluginIDs {
		switch o := r.lookup.Resolve(id).(type) {
		case models.Resolved:
			repos[o.Repository.ID()] = o.Repository
		case models.Missing:
			missing[o.ID] = o
		default:
			panic(fmt.Sprintf("unexpected outcome %T for plugin %q", o, id))
		}
	}

	list := make([]models.RepositoryDescriptor, 0, len(repos))
	for _, repo := range repos {
		list = append(list, repo)
	}

	group := models.NewPluginGroup(spec.Name, spec.Description, list, r.clock.Now())

	slog.Debug("resolved plugin group",
		"group", spec.Name,
		"requested", spec.PluginIDs.Len(),
		"repositories", group.Count(),
		"missing", len(missing))

	return models.GroupResolutionResult{
		PluginGroup: group,
		Missing:     missing,
	}
}
