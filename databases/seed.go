package databases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrSeedMissingID is returned for a seed document without a string id
var ErrSeedMissingID = errors.New("seed document has no id")

// SeedData maps a collection name to the documents to store in it
type SeedData map[string][]map[string]interface{}

// ReadSeedData decodes a {"collection": [docs...]} JSON document
func ReadSeedData(r io.Reader) (SeedData, error) {
	var data SeedData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return data, nil
}

// Seed upserts every document by its id, merging fields into any existing document.
// Ids that look like ObjectIDs are stored as ObjectIDs. It returns the number of documents written.
func Seed(ctx context.Context, db DatabaseHelper, data SeedData) (int, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	written := 0
	for _, name := range names {
		docs := data[name]
		zap.S().Infow("seeding collection", "collection", name, "documents", len(docs))
		coll := db.Collection(name)
		for i, doc := range docs {
			id, payload, err := splitSeedID(doc)
			if err != nil {
				return written, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			_, err = coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": payload}, options.Update().SetUpsert(true))
			if err != nil {
				return written, fmt.Errorf("failed to seed %s/%v: %w", name, id, err)
			}
			written++
		}
	}
	return written, nil
}

func splitSeedID(doc map[string]interface{}) (interface{}, bson.M, error) {
	raw, ok := doc["id"].(string)
	if !ok || raw == "" {
		return nil, nil, ErrSeedMissingID
	}
	payload := make(bson.M, len(doc))
	for k, v := range doc {
		if k != "id" {
			payload[k] = v
		}
	}
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return oid, payload, nil
	}
	return raw, payload, nil
}
