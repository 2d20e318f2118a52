// Package seed loads the provisioning dataset: the goal catalog and the
// tutor profiles with their initial availability maps. The dataset is
// applied once at provisioning time; after that the catalog is
// read-mostly and only availability cells change.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

// Dataset is the external seed document.
type Dataset struct {
	Goals    map[string]string `json:"goals"`
	Teachers []models.Teacher  `json:"teachers"`
}

// Load reads and validates a seed dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	ds := &Dataset{}
	if err := json.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Validate checks referential integrity of the dataset before any
// backend writes happen.
func (ds *Dataset) Validate() error {
	if len(ds.Goals) == 0 {
		return fmt.Errorf("seed dataset defines no goals")
	}
	for _, teacher := range ds.Teachers {
		if teacher.Name == "" {
			return fmt.Errorf("seed teacher %d has no name", teacher.ID)
		}
		for _, slug := range teacher.Goals {
			if _, ok := ds.Goals[slug]; !ok {
				return fmt.Errorf("seed teacher %q references unknown goal %q", teacher.Name, slug)
			}
		}
	}
	return nil
}

// GoalList returns the goals as models sorted by slug, with IDs assigned
// in that order for backends that need them up front.
func (ds *Dataset) GoalList() []models.Goal {
	slugs := make([]string, 0, len(ds.Goals))
	for slug := range ds.Goals {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	goals := make([]models.Goal, 0, len(slugs))
	for i, slug := range slugs {
		goals = append(goals, models.Goal{ID: int64(i + 1), Slug: slug, Name: ds.Goals[slug]})
	}
	return goals
}
