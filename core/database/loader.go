package database

import (
	"fmt"

	"data-integrity/core/frame"

	"gorm.io/gorm"
)

// LoadTable reads a whole table into a Frame. Cell values keep the driver's
// scalar types except []byte, which is converted to string; SQL NULL becomes
// a missing (nil) cell.
func LoadTable(db *gorm.DB, table string) (*frame.Frame, error) {
	rows, err := db.Raw(fmt.Sprintf("SELECT * FROM `%s`", table)).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	values := make([][]any, len(names))
	for rows.Next() {
		cells := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		for i, v := range cells {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			values[i] = append(values[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading %s: %w", table, err)
	}

	cols := make([]frame.Column, len(names))
	for i, name := range names {
		cols[i] = frame.Column{Name: name, Values: values[i]}
	}
	return frame.New(cols...)
}
