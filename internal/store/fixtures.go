package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Fixtures holds seed documents: collection path -> document id -> data.
type Fixtures map[string]map[string]map[string]any

// ReadFixtures decodes a fixtures file. Each top-level key is a collection
// path whose value is either an object keyed by document id or an array of
// documents. Array documents use their "id" field, or a random UUID when
// they have none.
func ReadFixtures(r io.Reader) (Fixtures, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	fx := make(Fixtures, len(raw))
	for collection, body := range raw {
		docs, err := decodeCollection(body)
		if err != nil {
			return nil, fmt.Errorf("collection %q: %w", collection, err)
		}
		fx[collection] = docs
	}
	return fx, nil
}

func decodeCollection(body json.RawMessage) (map[string]map[string]any, error) {
	var byID map[string]map[string]any
	if err := json.Unmarshal(body, &byID); err == nil {
		if byID == nil {
			byID = make(map[string]map[string]any)
		}
		return byID, nil
	}

	var list []map[string]any
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("expected an object keyed by id or an array of documents")
	}
	docs := make(map[string]map[string]any, len(list))
	for _, doc := range list {
		id, _ := doc["id"].(string)
		if id == "" {
			id = uuid.NewString()
		}
		docs[id] = doc
	}
	return docs, nil
}

// LoadFixturesFile reads fixtures from path.
func LoadFixturesFile(path string) (Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFixtures(f)
}

// Count returns the total number of documents.
func (fx Fixtures) Count() int {
	n := 0
	for _, docs := range fx {
		n += len(docs)
	}
	return n
}
