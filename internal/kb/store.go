package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mcskb/internal/logging"
)

// Store holds the five knowledge-base collections. It is populated once by
// Load and never mutated afterwards, so handlers may read it concurrently
// without locking.
type Store struct {
	BestPractices   []BestPractice
	Snippets        []Snippet
	Troubleshooting []Guide
	Tips            []Tip
	Governance      []GovernanceFeature
}

// Load reads the five collection files from dir. A missing file is logged
// as a warning and leaves that collection empty; a file that exists but
// fails to parse is a startup error.
func Load(dir string, logger *logging.AppLogger) (*Store, error) {
	store := &Store{}

	var err error
	if store.BestPractices, err = loadJSON[BestPractice](dir, "best_practices.json", logger); err != nil {
		return nil, err
	}
	if store.Snippets, err = loadJSON[Snippet](dir, "snippets.json", logger); err != nil {
		return nil, err
	}
	if store.Troubleshooting, err = loadJSON[Guide](dir, "troubleshooting.json", logger); err != nil {
		return nil, err
	}
	if store.Tips, err = loadJSON[Tip](dir, "tips.json", logger); err != nil {
		return nil, err
	}
	if store.Governance, err = loadJSON[GovernanceFeature](dir, "governance.json", logger); err != nil {
		return nil, err
	}

	logger.Info("Knowledge base loaded",
		"bestPractices", len(store.BestPractices),
		"snippets", len(store.Snippets),
		"troubleshooting", len(store.Troubleshooting),
		"tips", len(store.Tips),
		"governance", len(store.Governance),
	)
	return store, nil
}

// Loaded reports whether any collection holds records.
func (s *Store) Loaded() bool {
	return len(s.BestPractices) > 0 ||
		len(s.Snippets) > 0 ||
		len(s.Troubleshooting) > 0 ||
		len(s.Tips) > 0 ||
		len(s.Governance) > 0
}

func loadJSON[T any](dir, name string, logger *logging.AppLogger) ([]T, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Data file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return items, nil
}
