package quiz

import (
	"encoding/json"
	"fmt"
)

// DecodeRecords parses a JSON array of question records and validates
// each against the structural invariants. External JSON (cache entries,
// generation responses) must pass through here before being served.
func DecodeRecords(raw json.RawMessage) ([]QuestionRecord, error) {
	var records []QuestionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse question records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty question record list")
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}

// EncodeRecords serializes records for cache storage.
func EncodeRecords(records []QuestionRecord) (json.RawMessage, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode question records: %w", err)
	}
	return b, nil
}
