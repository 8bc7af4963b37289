package types

type Dialect string

const (
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "pgsql"
)

// Dialects is the fixed order in which connections are configured and processed.
var Dialects = []Dialect{MySQL, SQLite, Postgres}

func (d Dialect) String() string {
	return string(d)
}

type ColumnType int

const (
	Boolean ColumnType = iota
	SmallInteger
	Integer
	BigInteger
	Double
	Decimal
	String
	Text
	MediumText
	Timestamp
	DateTime
	Date
	Time
	Binary
	MediumBinary
)

var columnTypeNames = map[ColumnType]string{
	Boolean:      "boolean",
	SmallInteger: "smallInteger",
	Integer:      "integer",
	BigInteger:   "bigInteger",
	Double:       "double",
	Decimal:      "decimal",
	String:       "string",
	Text:         "text",
	MediumText:   "mediumText",
	Timestamp:    "timestamp",
	DateTime:     "dateTime",
	Date:         "date",
	Time:         "time",
	Binary:       "binary",
	MediumBinary: "mediumBinary",
}

func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t ColumnType) IsInteger() bool {
	return t == SmallInteger || t == Integer || t == BigInteger
}

// Expression is a default value rendered verbatim instead of as a literal.
type Expression string

const CurrentTimestamp Expression = "CURRENT_TIMESTAMP"

type ReferentialAction string

const (
	Cascade  ReferentialAction = "cascade"
	Restrict ReferentialAction = "restrict"
	SetNull  ReferentialAction = "set null"
	NoAction ReferentialAction = "no action"
)

type ColumnSpec struct {
	Name          string
	Type          ColumnType
	Length        int  // String only, 0 means 255
	Precision     *int // Decimal only, nil means arbitrary precision
	Scale         *int
	Unsigned      bool
	Nullable      bool
	Default       any // nil, bool, int, int64, string or Expression
	Unique        bool
	AutoIncrement bool
	Comment       string
}

// HasDefault reports whether the column declares a DEFAULT clause.
func (c ColumnSpec) HasDefault() bool {
	return c.Default != nil
}

type ForeignKeySpec struct {
	Columns    []string
	RefTable   string
	RefColumns []string
	OnUpdate   ReferentialAction
	OnDelete   ReferentialAction
}

type TableSpec struct {
	Name        string
	Columns     []ColumnSpec
	PrimaryKey  []string // composite key; empty means the auto-increment column
	ForeignKeys []ForeignKeySpec
	Comment     string
}

func (t TableSpec) Column(name string) (ColumnSpec, bool) {
	for _, column := range t.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return ColumnSpec{}, false
}

// AutoIncrementColumn returns the generated id column, if the table has one.
func (t TableSpec) AutoIncrementColumn() (ColumnSpec, bool) {
	if len(t.PrimaryKey) > 0 {
		return ColumnSpec{}, false
	}
	for _, column := range t.Columns {
		if column.AutoIncrement {
			return column, true
		}
	}
	return ColumnSpec{}, false
}

// Dependencies returns the distinct tables referenced by foreign keys, self references excluded.
func (t TableSpec) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, fk := range t.ForeignKeys {
		if fk.RefTable == t.Name || seen[fk.RefTable] {
			continue
		}
		seen[fk.RefTable] = true
		deps = append(deps, fk.RefTable)
	}
	return deps
}

// ForeignKeyFor returns the foreign key whose first column is the given column.
func (t TableSpec) ForeignKeyFor(column string) (ForeignKeySpec, bool) {
	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) > 0 && fk.Columns[0] == column {
			return fk, true
		}
	}
	return ForeignKeySpec{}, false
}

func IntPtr(v int) *int {
	return &v
}

// ID is the unsigned big integer auto-increment primary key column.
func ID() ColumnSpec {
	return ColumnSpec{Name: "id", Type: BigInteger, Unsigned: true, AutoIncrement: true}
}

// Timestamps returns the nullable created_at and updated_at columns.
func Timestamps() []ColumnSpec {
	return []ColumnSpec{
		{Name: "created_at", Type: Timestamp, Nullable: true},
		{Name: "updated_at", Type: Timestamp, Nullable: true},
	}
}

func SoftDeletes() ColumnSpec {
	return ColumnSpec{Name: "deleted_at", Type: Timestamp, Nullable: true}
}

// CascadeFK references refTable.id and cascades both updates and deletes.
func CascadeFK(column, refTable string) ForeignKeySpec {
	return ForeignKeySpec{
		Columns:    []string{column},
		RefTable:   refTable,
		RefColumns: []string{"id"},
		OnUpdate:   Cascade,
		OnDelete:   Cascade,
	}
}
