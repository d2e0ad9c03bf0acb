package gateway

import (
	"encoding/json"
	"fmt"
)

// envelope is the response wrapper of the content API. Data is a list for collections and
// an object for single types.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// flattenEntry lifts the attributes of a {id, attributes:{...}} entry to the top level next
// to the id. Entries without attributes are already flat and are returned as is.
func flattenEntry(raw json.RawMessage) (json.RawMessage, error) {
	var entry map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}

	attributes, ok := entry["attributes"]
	if !ok || isNull(attributes) {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(attributes, &fields); err != nil {
		return nil, fmt.Errorf("decode attributes: %w", err)
	}

	if id, ok := entry["id"]; ok {
		fields["id"] = id
	}

	flat, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode entry: %w", err)
	}

	return flat, nil
}

func decodeList[R any](body []byte) ([]R, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if isNull(env.Data) {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	records := make([]R, 0, len(entries))

	for _, raw := range entries {
		flat, err := flattenEntry(raw)
		if err != nil {
			return nil, err
		}

		var record R
		if err := json.Unmarshal(flat, &record); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

func decodeSingle[R any](body []byte) (record R, found bool, err error) {
	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		return record, false, fmt.Errorf("decode envelope: %w", err)
	}

	if isNull(env.Data) {
		return record, false, nil
	}

	flat, err := flattenEntry(env.Data)
	if err != nil {
		return record, false, err
	}

	if err = json.Unmarshal(flat, &record); err != nil {
		return record, false, fmt.Errorf("decode record: %w", err)
	}

	return record, true, nil
}
