package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	gojsonq "github.com/thedevsaddam/gojsonq/v2"
)

var numericFields = map[string]bool{"mode": true, "size": true}

// Query keeps the entries matching a "field op value" condition, for
// example "kind = d", "octal = 100644" or "symbolic endsWith rwx".
// Operators are those understood by gojsonq.
func Query(entries []Entry, where string) ([]Entry, error) {
	if strings.TrimSpace(where) == "" {
		return entries, nil
	}
	key, op, val, err := parseWhere(where)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	jq := gojsonq.New().FromString(string(data)).Where(key, op, val)
	result := jq.Get()
	if jq.Error() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, jq.Error())
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var out []Entry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseWhere(cond string) (string, string, interface{}, error) {
	parts := strings.Fields(cond)
	if len(parts) < 3 {
		return "", "", nil, fmt.Errorf("%w: %q (expected 'field op value')", ErrInvalidQuery, cond)
	}
	key, op := parts[0], parts[1]
	valStr := strings.Trim(strings.Join(parts[2:], " "), "\"'")
	if op == "==" {
		op = "="
	}
	if numericFields[key] {
		f, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return "", "", nil, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidQuery, key, valStr)
		}
		return key, op, f, nil
	}
	return key, op, valStr, nil
}
