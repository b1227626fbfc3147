package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spachava753/plugingroups/internal/models"
)

// DefaultURL is the Jenkins update center document holding every published plugin.
const DefaultURL = "https://updates.jenkins.io/current/update-center.actual.json"

// LoadFromPath loads an update center document from a local filesystem path.
func LoadFromPath(path string) (*models.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.CatalogError{Op: "read", Source: path, Err: err}
	}
	defer f.Close()

	c, err := decode(f)
	if err != nil {
		return nil, &models.CatalogError{Op: "parse", Source: path, Err: err}
	}

	slog.Debug("loaded catalog from file", "path", path, "plugins", len(c.Plugins))
	return c, nil
}

// LoadFromURL fetches an update center document from a remote URL.
func LoadFromURL(ctx context.Context, url string) (*models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.CatalogError{Op: "fetch", Source: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("fetching catalog", "url", url)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &models.CatalogError{Op: "fetch", Source: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.CatalogError{Op: "fetch", Source: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	c, err := decode(resp.Body)
	if err != nil {
		return nil, &models.CatalogError{Op: "parse", Source: url, Err: err}
	}

	slog.Debug("fetched catalog", "url", url, "plugins", len(c.Plugins))
	return c, nil
}

// Load reads the catalog from path when set, otherwise fetches it from url.
func Load(ctx context.Context, url, path string) (*models.Catalog, error) {
	switch {
	case path != "":
		return LoadFromPath(path)
	case url != "":
		return LoadFromURL(ctx, url)
	default:
		return nil, models.ErrNoCatalog
	}
}

func decode(r io.Reader) (*models.Catalog, error) {
	var c models.Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding update center JSON: %w", err)
	}
	if c.Plugins == nil {
		c.Plugins = map[string]models.CatalogEntry{}
	}
	return &c, nil
}
