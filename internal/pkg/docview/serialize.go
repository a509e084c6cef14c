// Package docview is the serialization boundary between raw stored records
// and their API-facing representation. Everything the HTTP layer returns for
// a read operation passes through Serialize; internal code on the far side of
// this boundary never hands untyped records to consumers directly.
package docview

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"mystical-api/internal/repository"
)

// Serialize converts a raw stored record into its API-facing shape:
//
//  1. The store-internal "_id" field is removed and re-inserted as "id" in
//     opaque string form.
//  2. Every temporal value is replaced by its RFC 3339 textual form.
//  3. All other fields pass through unchanged.
//
// Serialize is pure and total over any record shape. Bookkeeping timestamps
// may be absent on legacy or seed records; their absence is not an error.
func Serialize(doc repository.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = normalize(v)
	}

	if raw, ok := doc["_id"]; ok {
		out["id"] = stringifyID(raw)
	}

	return out
}

// SerializeAll serializes a result set, always returning a non-nil slice so
// empty results encode as [] rather than null.
func SerializeAll(docs []repository.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Serialize(doc))
	}
	return out
}

// normalize converts temporal values to canonical ISO-8601 text.
// The driver may decode stored dates either as time.Time or bson.DateTime
// depending on how the record was read.
func normalize(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bson.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// stringifyID renders the store identifier as an opaque string.
func stringifyID(raw any) string {
	switch id := raw.(type) {
	case bson.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		// Records written by other tools may carry unexpected id types;
		// serialization must not fail on them.
		return fmt.Sprintf("%v", raw)
	}
}
