package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/leg100/timeago/internal/tui"
	"gopkg.in/yaml.v3"
)

var errNoEntries = errors.New("no timestamps: pass them as arguments or list them in a file with --file")

// loadEntries loads entries from the config's file, if any, followed by any
// timestamps passed as arguments.
func loadEntries(cfg config) ([]tui.Entry, error) {
	var entries []tui.Entry
	if cfg.File != "" {
		b, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("reading entries file: %w", err)
		}
		if err := yaml.Unmarshal(b, &entries); err != nil {
			return nil, fmt.Errorf("parsing entries file %s: %w", cfg.File, err)
		}
	}
	for _, ts := range cfg.Timestamps {
		entries = append(entries, tui.Entry{Timestamp: ts})
	}
	for i := range entries {
		if entries[i].Name == "" {
			entries[i].Name = entries[i].Timestamp
		}
	}
	if len(entries) == 0 {
		return nil, errNoEntries
	}
	return entries, nil
}
