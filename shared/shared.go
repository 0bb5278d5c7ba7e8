package shared

import (
	"fmt"
	"strings"
	"todoapp/shared/dto"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the key parts with ':'. Empty parts are skipped.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

func BuildCacheKeyWithID(prefix string, id int64) string {
	return BuildCacheKey(prefix, fmt.Sprintf("%d", id))
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
