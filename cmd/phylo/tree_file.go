package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/golang/glog"

	"github.com/kurosakiaduma/phylo-sub002/pkg/genealogy"
)

// loadTree reads and validates the tree at path, or — if path does not
// yet exist — constructs an empty tree from the CLI's config defaults
// under a newly generated id.
func loadTree(path string) (genealogy.Core, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Infof("phylo: %s not found, starting a new tree", path)
		return genealogy.New(genealogy.Tree{
			ID:       newTreeID(),
			Name:     "untitled",
			Settings: cfg.Settings(),
		}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var payload genealogy.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	core, err := genealogy.FromSerialized(payload)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return core, nil
}

// saveTree serializes core and writes it to path.
func saveTree(path string, core genealogy.Core) error {
	payload := core.Serialize()
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
