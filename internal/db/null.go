package db

import "database/sql"

// NullInt treats zero as "no value", for optional filter parameters.
func NullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

// NullString treats the empty string as "no value".
func NullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
