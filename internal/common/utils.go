package common

import (
	"encoding/json"
	"strings"
)

// FilterResultFields keeps only the comma separated JSON field names of
// result. An empty list keeps every field.
func FilterResultFields(result interface{}, fieldsStr string) map[string]interface{} {
	fullMap := structToMap(result)
	if strings.TrimSpace(fieldsStr) == "" {
		return fullMap
	}

	includeFields := make(map[string]bool)
	for _, field := range SplitList(fieldsStr, ",") {
		includeFields[field] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range fullMap {
		if includeFields[key] {
			filtered[key] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// SplitList splits a flag value on sep, trimming items and dropping empty ones.
func SplitList(value, sep string) []string {
	if sep == "" {
		sep = ","
	}
	var out []string
	for _, item := range strings.Split(value, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
