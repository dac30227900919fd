package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" struct tags of T, in declaration order,
// optionally prefixed (for qualified selects). Panics on a missing tag, which
// surfaces at package init through the SelectXxxColumn variables.
func ColumnList[T any](prefixes ...string) []string {
	var dbModel T
	modelType := reflect.TypeOf(dbModel)

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("db")
		if !ok {
			panic(fmt.Sprintf("missing db tag on field %s of %T", field.Name, dbModel))
		}
		column := tag
		for _, prefix := range prefixes {
			column = fmt.Sprintf("%s.%s", prefix, tag)
		}
		columns = append(columns, column)
	}
	return columns
}
