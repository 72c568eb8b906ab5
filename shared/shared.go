package shared

import (
	"maps"
	"math"
	"time"
	"visitorpass/shared/constant"
	"visitorpass/shared/dto"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Changes copies fields into an update set stamped with the audit columns.
func Changes(fields map[string]any, user string, at time.Time) map[string]any {
	changes := make(map[string]any, len(fields)+2)
	maps.Copy(changes, fields)

	changes[constant.FieldModifiedAt] = at
	changes[constant.FieldModifiedBy] = user

	return changes
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
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
