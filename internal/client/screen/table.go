package screen

// Column is one field descriptor in a screen's fixed column list.
type Column struct {
	Name  string
	Label string
}

// Accessor derives one cell value from an entity.
type Accessor[T any] func(T) string

// Rows maps the visible result set through the per-column accessors, in
// column order. Columns without an accessor render empty.
func Rows[T any](items []T, columns []Column, accessors map[string]Accessor[T]) []map[string]string {
	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		row := make(map[string]string, len(columns))
		for _, col := range columns {
			if acc, ok := accessors[col.Name]; ok {
				row[col.Name] = acc(item)
			} else {
				row[col.Name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
