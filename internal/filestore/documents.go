package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tutorhub/tutorhub-api/internal/models"
)

// Document file names inside the data directory.
const (
	catalogFile  = "teachers.json"
	bookingsFile = "bookings.json"
	requestsFile = "requests.json"
)

// catalogDocument is the combined goals + teachers document. Teachers
// are keyed by their integer id rendered as a string.
type catalogDocument struct {
	Goals    map[string]string         `json:"goals"`
	Teachers map[string]models.Teacher `json:"teachers"`
}

func newCatalogDocument() *catalogDocument {
	return &catalogDocument{
		Goals:    make(map[string]string),
		Teachers: make(map[string]models.Teacher),
	}
}

// loadDocument reads a JSON document, returning ok=false when the file
// does not exist yet.
func loadDocument(dir, name string, dest interface{}) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read document %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("parse document %s: %w", name, err)
	}
	return true, nil
}

// writeDocument rewrites a whole JSON document atomically: the payload
// goes to a temp file in the same directory first and is renamed over
// the old document, so readers never observe a partial write.
func writeDocument(dir, name string, doc interface{}) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp document for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp document for %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp document for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document %s: %w", name, err)
	}
	return nil
}
