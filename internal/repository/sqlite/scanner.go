package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanItem scans a single key/value row. The timestamp column is stored as text.
func ScanItem(scanner Scanner) (*Item, error) {
	item := &Item{}
	var updatedAt string

	if err := scanner.Scan(&item.Key, &item.Value, &updatedAt); err != nil {
		return nil, err
	}

	if updatedAt != "" {
		ts, err := ParseTimeFromDB(updatedAt)
		if err != nil {
			return nil, err
		}
		item.UpdatedAt = ts
	}

	return item, nil
}

// ScanItems scans every row of a key/value query
func ScanItems(rows Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		item, err := ScanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
