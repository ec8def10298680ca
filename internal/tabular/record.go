package tabular

// Record is one parsed CSV row: a mapping from lower-cased column name to a
// loosely-typed Value. Columns present in the header but missing from the row
// hold Null.
type Record map[string]Value

// Has reports whether the column exists and is non-null.
func (r Record) Has(col string) bool {
	v, ok := r[col]
	return ok && !v.IsNull()
}

// Value returns the raw Value for a column, Null when absent.
func (r Record) Value(col string) Value {
	if v, ok := r[col]; ok {
		return v
	}
	return Null()
}

// Str returns the column as a string, or def when absent or null.
func (r Record) Str(col, def string) string {
	v := r.Value(col)
	if v.IsNull() {
		return def
	}
	return v.String()
}

// Int returns the column as an int, or def when absent or null.
func (r Record) Int(col string, def int) int {
	v := r.Value(col)
	if v.IsNull() {
		return def
	}
	return int(v.Int())
}

// Float returns the column as a float64, or def when absent or null.
func (r Record) Float(col string, def float64) float64 {
	v := r.Value(col)
	if v.IsNull() {
		return def
	}
	return v.Float()
}

// Bool returns the column as a bool, or def when absent or null.
func (r Record) Bool(col string, def bool) bool {
	v := r.Value(col)
	if v.IsNull() {
		return def
	}
	return v.Bool()
}

// List returns the column as a string slice, nil when absent or null.
func (r Record) List(col string) []string {
	return r.Value(col).List()
}
