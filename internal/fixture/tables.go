package fixture

import "github.com/Rana718/dbfixture/internal/types"

func str(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.String}
}

func uniqueStr(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.String, Unique: true}
}

func note() types.ColumnSpec {
	return types.ColumnSpec{Name: "note", Type: types.String, Nullable: true}
}

func ubig(name string) types.ColumnSpec {
	return types.ColumnSpec{Name: name, Type: types.BigInteger, Unsigned: true}
}

func nullable(column types.ColumnSpec) types.ColumnSpec {
	column.Nullable = true
	return column
}

func withDefault(column types.ColumnSpec, value any) types.ColumnSpec {
	column.Default = value
	return column
}

func columns(groups ...[]types.ColumnSpec) []types.ColumnSpec {
	var all []types.ColumnSpec
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}

func cols(specs ...types.ColumnSpec) []types.ColumnSpec {
	return specs
}

// Tables returns the canonical schema, parents before children.
func Tables() []types.TableSpec {
	return []types.TableSpec{
		{
			Name: "users",
			Columns: columns(
				cols(types.ID(), uniqueStr("name"),
					types.ColumnSpec{Name: "is_banned", Type: types.Boolean, Default: false},
					note()),
				types.Timestamps(),
				cols(types.SoftDeletes()),
			),
		},
		{
			Name: "roles",
			Columns: cols(types.ID(), uniqueStr("name"),
				types.ColumnSpec{Name: "added_on", Type: types.BigInteger, Nullable: true,
					Comment: "To test Unix timestamps, u_dateFormat = 'U'"}),
		},
		{
			Name: "role_user",
			Columns: cols(ubig("role_id"), ubig("user_id"),
				types.ColumnSpec{Name: "active", Type: types.Boolean, Default: true}),
			PrimaryKey:  []string{"role_id", "user_id"},
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("role_id", "roles"), types.CascadeFK("user_id", "users")},
		},
		{
			Name:        "user_phones",
			Columns:     cols(types.ID(), ubig("user_id"), uniqueStr("number")),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("user_id", "users")},
		},
		{
			Name: "settings",
			Columns: columns(
				cols(withDefault(uniqueStr("name"), ""), withDefault(str("value"), "")),
				types.Timestamps(),
			),
		},
		{
			Name: "torrents",
			Columns: columns(
				cols(types.ID(), nullable(ubig("user_id")),
					types.ColumnSpec{Name: "name", Type: types.String, Unique: true, Comment: "Torrent name"},
					withDefault(ubig("size"), 0),
					types.ColumnSpec{Name: "progress", Type: types.SmallInteger, Unsigned: true, Default: 0},
					types.ColumnSpec{Name: "added_on", Type: types.DateTime, Default: types.CurrentTimestamp},
					types.ColumnSpec{Name: "hash", Type: types.String, Length: 40},
					note()),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("user_id", "users")},
		},
		{
			// torrent_id is nullable: one seeded peer has no torrent.
			Name: "torrent_peers",
			Columns: columns(
				cols(types.ID(), nullable(ubig("torrent_id")),
					types.ColumnSpec{Name: "seeds", Type: types.Integer, Nullable: true},
					types.ColumnSpec{Name: "total_seeds", Type: types.Integer, Nullable: true},
					types.ColumnSpec{Name: "leechers", Type: types.Integer},
					types.ColumnSpec{Name: "total_leechers", Type: types.Integer}),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("torrent_id", "torrents")},
		},
		{
			Name: "torrent_previewable_files",
			Columns: columns(
				cols(types.ID(), nullable(ubig("torrent_id")),
					types.ColumnSpec{Name: "file_index", Type: types.Integer},
					uniqueStr("filepath"),
					ubig("size"),
					types.ColumnSpec{Name: "progress", Type: types.SmallInteger, Unsigned: true},
					note()),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("torrent_id", "torrents")},
		},
		{
			Name: "torrent_previewable_file_properties",
			Columns: columns(
				cols(types.ID(), ubig("previewable_file_id"), uniqueStr("name"), ubig("size")),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("previewable_file_id", "torrent_previewable_files")},
		},
		{
			Name: "file_property_properties",
			Columns: columns(
				cols(types.ID(), ubig("file_property_id"), uniqueStr("name"), ubig("value")),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("file_property_id", "torrent_previewable_file_properties")},
			Comment:     "used in Builder::chunk() tests, must have exactly 8 rows",
		},
		{
			Name:    "torrent_tags",
			Columns: columns(cols(types.ID(), uniqueStr("name"), note()), types.Timestamps()),
		},
		{
			Name: "tag_torrent",
			Columns: columns(
				cols(ubig("torrent_id"), ubig("tag_id"),
					types.ColumnSpec{Name: "active", Type: types.Boolean, Default: true}),
				types.Timestamps(),
			),
			PrimaryKey:  []string{"torrent_id", "tag_id"},
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("torrent_id", "torrents"), types.CascadeFK("tag_id", "torrent_tags")},
		},
		{
			Name: "tag_properties",
			Columns: columns(
				cols(types.ID(), ubig("tag_id"), str("color"),
					types.ColumnSpec{Name: "position", Type: types.Integer, Unsigned: true, Unique: true}),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("tag_id", "torrent_tags")},
		},
		{
			Name:    "types",
			Columns: typesColumns(),
		},
		{
			Name:    "albums",
			Columns: columns(cols(types.ID(), uniqueStr("name"), note()), types.Timestamps()),
		},
		{
			// album_id references torrents, not albums; test suites depend on it.
			Name: "album_images",
			Columns: columns(
				cols(types.ID(), nullable(ubig("album_id")), uniqueStr("name"), str("ext"), ubig("size")),
				types.Timestamps(),
			),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("album_id", "torrents")},
		},
		{
			Name:    "torrent_states",
			Columns: cols(types.ID(), uniqueStr("name")),
		},
		{
			Name: "state_torrent",
			Columns: cols(ubig("torrent_id"), ubig("state_id"),
				types.ColumnSpec{Name: "active", Type: types.Boolean, Default: false}),
			PrimaryKey:  []string{"torrent_id", "state_id"},
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("torrent_id", "torrents"), types.CascadeFK("state_id", "torrent_states")},
		},
		{
			Name: "role_tag",
			Columns: cols(ubig("tag_id"), ubig("role_id"),
				types.ColumnSpec{Name: "active", Type: types.Boolean, Default: false}),
			PrimaryKey:  []string{"tag_id", "role_id"},
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("tag_id", "torrent_tags"), types.CascadeFK("role_id", "roles")},
		},
		{
			Name: "empty_with_default_values",
			Columns: cols(types.ID(), nullable(ubig("user_id")),
				withDefault(ubig("size"), 0),
				types.ColumnSpec{Name: "decimal", Type: types.Decimal, Precision: types.IntPtr(8), Scale: types.IntPtr(2), Nullable: true, Default: "100.12"},
				types.ColumnSpec{Name: "added_on", Type: types.DateTime, Default: types.CurrentTimestamp},
				note()),
			ForeignKeys: []types.ForeignKeySpec{types.CascadeFK("user_id", "users")},
		},
	}
}

// typesColumns covers every column type, all nullable, for type-mapping tests.
func typesColumns() []types.ColumnSpec {
	decimal := func(name string) types.ColumnSpec {
		return types.ColumnSpec{Name: name, Type: types.Decimal, Precision: types.IntPtr(8), Scale: types.IntPtr(2), Nullable: true}
	}

	return cols(
		types.ID(),
		types.ColumnSpec{Name: "bool_true", Type: types.Boolean, Nullable: true},
		types.ColumnSpec{Name: "bool_false", Type: types.Boolean, Nullable: true},
		types.ColumnSpec{Name: "smallint", Type: types.SmallInteger, Nullable: true},
		types.ColumnSpec{Name: "smallint_u", Type: types.SmallInteger, Unsigned: true, Nullable: true},
		types.ColumnSpec{Name: "int", Type: types.Integer, Nullable: true},
		types.ColumnSpec{Name: "int_u", Type: types.Integer, Unsigned: true, Nullable: true},
		types.ColumnSpec{Name: "bigint", Type: types.BigInteger, Nullable: true},
		types.ColumnSpec{Name: "bigint_u", Type: types.BigInteger, Unsigned: true, Nullable: true},
		types.ColumnSpec{Name: "double", Type: types.Double, Nullable: true},
		types.ColumnSpec{Name: "double_nan", Type: types.Double, Nullable: true},
		types.ColumnSpec{Name: "double_infinity", Type: types.Double, Nullable: true},
		decimal("decimal"),
		decimal("decimal_nan"),
		types.ColumnSpec{Name: "decimal_infinity", Type: types.Decimal, Nullable: true},
		decimal("decimal_down"),
		decimal("decimal_up"),
		types.ColumnSpec{Name: "string", Type: types.String, Nullable: true},
		types.ColumnSpec{Name: "text", Type: types.Text, Nullable: true},
		types.ColumnSpec{Name: "medium_text", Type: types.MediumText, Nullable: true},
		types.ColumnSpec{Name: "timestamp", Type: types.Timestamp, Nullable: true},
		types.ColumnSpec{Name: "datetime", Type: types.DateTime, Nullable: true},
		types.ColumnSpec{Name: "date", Type: types.Date, Nullable: true},
		types.ColumnSpec{Name: "time", Type: types.Time, Nullable: true},
		types.ColumnSpec{Name: "binary", Type: types.Binary, Nullable: true},
		types.ColumnSpec{Name: "medium_binary", Type: types.MediumBinary, Nullable: true},
	)
}
