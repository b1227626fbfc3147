package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spachava753/plugingroups/internal/models"
)

// ReadPluginIDs reads a file listing one plugin id per line.
func ReadPluginIDs(path string) (models.IDSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading plugin list: %w", err)
	}
	defer f.Close()

	ids, err := ParsePluginIDs(f)
	if err != nil {
		return nil, fmt.Errorf("reading plugin list %s: %w", path, err)
	}
	return ids, nil
}

// ParsePluginIDs trims each line and skips blank ones. Duplicates collapse.
func ParsePluginIDs(r io.Reader) (models.IDSet, error) {
	ids := models.NewIDSet()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
