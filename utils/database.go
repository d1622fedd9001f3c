package utils

import (
	"reflect"
	"strings"
)

// ColumnList returns the `db` tags of T, in field order.
func ColumnList[T any](prefixes ...string) []string {
	prefix := ""
	if len(prefixes) > 0 {
		prefix = prefixes[0] + "."
	}

	var t T
	rt := reflect.TypeOf(t)
	columns := make([]string, 0, rt.NumField())
	for i := range rt.NumField() {
		tag := rt.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, prefix+strings.Split(tag, ",")[0])
	}
	return columns
}
