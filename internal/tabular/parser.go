package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Boolean cell tokens accepted by type inference, case-insensitive.
var (
	trueTokens  = map[string]bool{"true": true, "yes": true, "1": true}
	falseTokens = map[string]bool{"false": true, "no": true, "0": true}
)

// Parse reads CSV rows into Records. The first non-blank line defines the
// headers (trimmed, lower-cased); subsequent non-blank lines parse
// positionally against them. Rows longer than the header are truncated; rows
// shorter leave the trailing columns null.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var headers []string
	var records []Record

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return records, fmt.Errorf("read csv row: %w", err)
		}
		if blankRow(row) {
			continue
		}

		if headers == nil {
			headers = make([]string, len(row))
			for i, h := range row {
				headers[i] = strings.ToLower(strings.TrimSpace(h))
			}
			continue
		}

		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = inferValue(row[i])
			} else {
				rec[h] = Null()
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// blankRow reports whether every field is empty after trimming.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// inferValue coerces one raw cell. Order matters: boolean tokens win over
// integers, integers over floats, and a bracketed cell splits into a list.
func inferValue(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Null()
	}

	lower := strings.ToLower(s)
	if trueTokens[lower] {
		return Bool(true)
	}
	if falseTokens[lower] {
		return Bool(false)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return List(nil)
		}
		parts := strings.Split(inner, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			list = append(list, strings.TrimSpace(p))
		}
		return List(list)
	}

	return String(s)
}
