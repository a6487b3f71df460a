package conf

import (
	"fmt"
	"sort"
	"strings"
)

// String2Set splits a comma separated list into its set of tokens.
// Tokens are trimmed and empty tokens are dropped. Names are not checked
// against the field catalogue.
func String2Set(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// parseFields translates a field list into an OutputFields. The list
// replaces the defaults: fields it does not name are off.
func parseFields(list string) (OutputFields, error) {
	var fields OutputFields
	var unknown []string

	for name := range String2Set(list) {
		if name == AllFields {
			fields.SetAll(true)
			continue
		}
		if err := fields.Set(name, true); err != nil {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fields, fmt.Errorf("%w: %s", ErrUnknownFieldName, strings.Join(unknown, ", "))
	}

	return fields, nil
}

// newResultConfig builds a ResultConfig from the raw values every loader
// extracts from its source. Surrounding whitespace is dropped from the file
// so every source yields the same value.
func newResultConfig(file, fieldList string) (ResultConfig, error) {
	fields, err := parseFields(fieldList)
	if err != nil {
		return ResultConfig{}, err
	}
	return ResultConfig{File: strings.TrimSpace(file), Fields: fields}, nil
}
