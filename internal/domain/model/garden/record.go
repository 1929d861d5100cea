package garden

import (
	"encoding/json"
	"fmt"
	"time"
)

// FieldCreatedAt is the key stamped onto every appended record
const FieldCreatedAt = "created_at"

// TimestampLayout is the ISO-8601 layout used for created_at
const TimestampLayout = time.RFC3339Nano

// Record is a single garden log entry.
// Values are whatever the JSON codec produces: string, float64, bool, []interface{}
// or map[string]interface{}.
type Record map[string]interface{}

// CreatedAt returns the insertion timestamp, or "" when missing
func (r Record) CreatedAt() string {
	v, _ := r[FieldCreatedAt].(string)
	return v
}

// String returns the string value stored under key, or ""
func (r Record) String(key string) string {
	v, _ := r[key].(string)
	return v
}

// Has reports whether key is present
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Stamp returns a normalized deep copy of fields with created_at set to now.
// A created_at supplied by the caller is kept.
func Stamp(fields map[string]interface{}, now time.Time) (Record, error) {
	stamped := make(map[string]interface{}, len(fields)+1)
	stamped[FieldCreatedAt] = now.Format(TimestampLayout)
	for k, v := range fields {
		stamped[k] = v
	}
	return Normalize(stamped)
}

// Normalize deep-copies fields through the JSON codec so the in-memory value
// is identical to what a later load produces.
func Normalize(fields map[string]interface{}) (Record, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if r == nil {
		r = Record{}
	}
	return r, nil
}
