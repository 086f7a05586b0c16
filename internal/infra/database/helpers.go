package database

import "strconv"

// placeholder returns the $N parameter marker. Both lib/pq and go-sqlite3
// understand this form, so queries stay dialect-free.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
