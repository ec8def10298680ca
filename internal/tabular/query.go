package tabular

import "strings"

// Query helpers over parsed record slices. All scans are linear; data sets
// are design-time CSV files, not runtime stores.

// FilterEq returns the records whose column renders equal to want.
func FilterEq(records []Record, col, want string) []Record {
	var out []Record
	for _, r := range records {
		if r.Value(col).String() == want {
			out = append(out, r)
		}
	}
	return out
}

// FilterRange returns the records whose column, coerced to float, falls in
// [min, max] inclusive. Null columns never match.
func FilterRange(records []Record, col string, min, max float64) []Record {
	var out []Record
	for _, r := range records {
		v := r.Value(col)
		if v.IsNull() {
			continue
		}
		f := v.Float()
		if f >= min && f <= max {
			out = append(out, r)
		}
	}
	return out
}

// FilterContains returns the records whose column contains substr,
// case-insensitive.
func FilterContains(records []Record, col, substr string) []Record {
	needle := strings.ToLower(substr)
	var out []Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Value(col).String()), needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterIn returns the records whose column renders to any member of set.
func FilterIn(records []Record, col string, set []string) []Record {
	allowed := make(map[string]bool, len(set))
	for _, s := range set {
		allowed[s] = true
	}
	var out []Record
	for _, r := range records {
		if allowed[r.Value(col).String()] {
			out = append(out, r)
		}
	}
	return out
}

// FindFirst returns the first record whose column renders equal to id.
func FindFirst(records []Record, col, id string) (Record, bool) {
	for _, r := range records {
		if r.Value(col).String() == id {
			return r, true
		}
	}
	return nil, false
}

// DistinctValues returns the distinct rendered values of a column, in first
// appearance order, skipping nulls.
func DistinctValues(records []Record, col string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := r.Value(col)
		if v.IsNull() {
			continue
		}
		s := v.String()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
