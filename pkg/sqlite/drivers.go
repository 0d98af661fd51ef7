// Package sqlite registers the two SQLite drivers the application can run on
// and hides the differences in their connection strings.
package sqlite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverCGO is github.com/mattn/go-sqlite3.
	DriverCGO = "sqlite3"
	// DriverPure is modernc.org/sqlite.
	DriverPure = "sqlite"
)

const busyTimeoutMillis = 5000

// DSN builds a connection string for path with busy timeout and foreign keys
// enabled, in the syntax the selected driver understands.
func DSN(driver, path string) (string, error) {
	q := url.Values{}
	switch driver {
	case DriverCGO:
		q.Set("_busy_timeout", fmt.Sprint(busyTimeoutMillis))
		q.Set("_foreign_keys", "on")
	case DriverPure:
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
		q.Add("_pragma", "foreign_keys(1)")
	default:
		return "", fmt.Errorf("unsupported sqlite driver %q", driver)
	}
	return "file:" + path + "?" + q.Encode(), nil
}

// IsBusy reports whether err is a transient lock error worth retrying.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
