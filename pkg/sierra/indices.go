package sierra

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/cairo1-compile/pkg/schema"
)

// indexKeys hold u64 identifiers or statement indices wherever they appear.
var indexKeys = map[string]bool{
	"id":          true,
	"entry_point": true,
	"Statement":   true,
}

// opaqueKeys hold values whose numbers are not indices (generic values, user type hashes).
var opaqueKeys = map[string]bool{
	"Value":              true,
	"UserType":           true,
	"declared_type_info": true,
}

// checkIndices rejects index numbers that are not plain unsigned 64-bit
// integers, such as 0.0, 1e0 or 18446744073709551616. The schema alone
// accepts them because it compares numbers as float64.
func checkIndices(value any) error {
	var errs []error
	walkIndices(value, nil, &errs)
	if len(errs) == 0 {
		return nil
	}
	return &schema.AggregateError{Errors: errs}
}

func walkIndices(value any, path []string, errs *[]error) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if opaqueKeys[k] {
				continue
			}
			child := append(path[:len(path):len(path)], k)
			if n, ok := v[k].(json.Number); ok && indexKeys[k] {
				if _, err := strconv.ParseUint(n.String(), 10, 64); err != nil {
					*errs = append(*errs, &schema.ValidationError{
						Key:    pointer(child),
						Reason: "must be an unsigned 64-bit integer, got " + n.String(),
					})
				}
				continue
			}
			walkIndices(v[k], child, errs)
		}
	case []any:
		for i, item := range v {
			walkIndices(item, append(path[:len(path):len(path)], strconv.Itoa(i)), errs)
		}
	}
}

func pointer(path []string) string {
	escaped := make([]string, len(path))
	for i, p := range path {
		escaped[i] = strings.NewReplacer("~", "~0", "/", "~1").Replace(p)
	}
	return "/" + strings.Join(escaped, "/")
}
