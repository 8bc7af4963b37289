//go:build modernc

package sqlite

import (
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// connectionParams are applied by the driver to every new connection.
var connectionParams = []pragma{
	{name: "busy_timeout", value: "5000"},
	{name: "journal_mode", value: "DELETE"},
}

type pragma struct {
	name  string
	value string
}

// buildDSN constructs a DSN for modernc.org/sqlite, which takes pragmas as
// file:path?_pragma=name(value)&_pragma=name2(value2)
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
		fmt.Fprintf(&sb, "_pragma=%s(%s)", p.name, p.value)
	}

	return sb.String()
}
