//go:build !modernc

package sqlite

import (
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// connectionParams are applied by the driver to every new connection.
var connectionParams = []pragma{
	{name: "_busy_timeout", value: "5000"},
	{name: "_journal_mode", value: "DELETE"},
}

type pragma struct {
	name  string
	value string
}

// buildDSN constructs a DSN for github.com/mattn/go-sqlite3,
// e.g. file:path?_busy_timeout=5000&_journal_mode=DELETE
func buildDSN(path string) string {
	var sb strings.Builder

	if path == memoryPath {
		sb.WriteString("file::memory:")
	} else {
		sb.WriteString("file:")
		sb.WriteString(path)
	}

	for i, p := range connectionParams {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		fmt.Fprintf(&sb, "%s=%s", p.name, p.value)
	}

	return sb.String()
}
