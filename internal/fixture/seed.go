package fixture

import "github.com/Rana718/dbfixture/internal/seeder"

// Plan returns the seed data for every table that has rows, in insertion
// order. Ids are explicit so every dialect ends up with identical rows.
func Plan() []*seeder.Rows {
	return []*seeder.Rows{
		seeder.MustRows("users",
			[]string{"id", "name", "is_banned", "note", "created_at", "updated_at", "deleted_at"},
			[]any{1, "andrej", false, nil, "2022-01-01 14:51:23", "2022-01-01 17:46:31", nil},
			[]any{2, "silver", false, nil, "2022-01-02 14:51:23", "2022-01-02 17:46:31", nil},
			[]any{3, "peter", true, "no torrents no roles", "2022-01-03 14:51:23", "2022-01-03 17:46:31", nil},
			[]any{4, "jack", true, "test SoftDeletes", "2022-01-04 14:51:23", "2022-01-04 17:46:31", "2022-01-04 20:46:31"},
			[]any{5, "obiwan", true, "test SoftDeletes", "2022-01-05 14:51:23", "2022-01-05 17:46:31", "2022-01-05 20:46:31"},
		),

		seeder.MustRows("roles",
			[]string{"id", "name", "added_on"},
			[]any{1, "role one", 1659361016},
			[]any{2, "role two", 1659447416},
			[]any{3, "role three", nil},
		),

		seeder.MustRows("role_user",
			[]string{"role_id", "user_id", "active"},
			[]any{1, 1, true},
			[]any{2, 1, false},
			[]any{3, 1, true},
			[]any{2, 2, true},
		),

		seeder.MustRows("user_phones",
			[]string{"id", "user_id", "number"},
			[]any{1, 1, "914111000"},
			[]any{2, 2, "902555777"},
			[]any{3, 3, "905111999"},
		),

		seeder.MustRows("torrents",
			[]string{"id", "user_id", "name", "size", "progress", "added_on", "hash", "note", "created_at", "updated_at"},
			[]any{1, 1, "test1", 11, 100, "2020-08-01 20:11:10", "1579e3af2768cdf52ec84c1f320333f68401dc6e", nil, "2021-01-01 14:51:23", "2021-01-01 18:46:31"},
			[]any{2, 1, "test2", 12, 200, "2020-08-02 20:11:10", "2579e3af2768cdf52ec84c1f320333f68401dc6e", nil, "2021-01-02 14:51:23", "2021-01-02 18:46:31"},
			[]any{3, 1, "test3", 13, 300, "2020-08-03 20:11:10", "3579e3af2768cdf52ec84c1f320333f68401dc6e", nil, "2021-01-03 14:51:23", "2021-01-03 18:46:31"},
			[]any{4, 1, "test4", 14, 400, "2020-08-04 20:11:10", "4579e3af2768cdf52ec84c1f320333f68401dc6e", "after update revert updated_at", "2021-01-04 14:51:23", "2021-01-04 18:46:31"},
			[]any{5, 2, "test5", 15, 500, "2020-08-05 20:11:10", "5579e3af2768cdf52ec84c1f320333f68401dc6e", "no peers", "2021-01-05 14:51:23", "2021-01-05 18:46:31"},
			[]any{6, 2, "test6", 16, 600, "2020-08-06 20:11:10", "6579e3af2768cdf52ec84c1f320333f68401dc6e", "no files no peers", "2021-01-06 14:51:23", "2021-01-06 18:46:31"},
			[]any{7, 2, "test7", 17, 700, "2020-08-07 20:11:10", "7579e3af2768cdf52ec84c1f320333f68401dc6e", "for serialization", "2021-01-07 14:51:23", "2021-01-07 18:46:31"},
		),

		seeder.MustRows("torrent_peers",
			[]string{"id", "torrent_id", "seeds", "total_seeds", "leechers", "total_leechers", "created_at", "updated_at"},
			[]any{1, 1, 1, 1, 1, 1, "2021-01-01 14:51:23", "2021-01-01 17:46:31"},
			[]any{2, 2, 2, 2, 2, 2, "2021-01-02 14:51:23", "2021-01-02 17:46:31"},
			[]any{3, 3, 3, 3, 3, 3, "2021-01-03 14:51:23", "2021-01-03 17:46:31"},
			[]any{4, 4, nil, 4, 4, 4, "2021-01-04 14:51:23", "2021-01-04 17:46:31"},
			[]any{5, 7, nil, 7, 7, 7, "2021-01-07 14:51:23", "2021-01-07 17:46:31"},
			[]any{6, nil, nil, 6, 6, 6, "2021-01-06 14:51:23", "2021-01-06 17:46:31"},
		),

		seeder.MustRows("torrent_previewable_files",
			[]string{"id", "torrent_id", "file_index", "filepath", "size", "progress", "note", "created_at", "updated_at"},
			[]any{1, 1, 0, "test1_file1.mkv", 1024, 200, "no file properties", "2021-01-01 14:51:23", "2021-01-01 17:46:31"},
			[]any{2, 2, 0, "test2_file1.mkv", 2048, 870, nil, "2021-01-02 14:51:23", "2021-01-02 17:46:31"},
			[]any{3, 2, 1, "test2_file2.mkv", 3072, 1000, nil, "2021-01-02 14:51:23", "2021-01-02 17:46:31"},
			[]any{4, 3, 0, "test3_file1.mkv", 5568, 870, nil, "2021-01-03 14:51:23", "2021-01-03 17:46:31"},
			[]any{5, 4, 0, "test4_file1.mkv", 4096, 0, nil, "2021-01-04 14:51:23", "2021-01-04 17:46:31"},
			[]any{6, 5, 0, "test5_file1.mkv", 2048, 999, nil, "2021-01-05 14:51:23", "2021-01-05 17:46:31"},
			[]any{7, 5, 1, "test5_file2.mkv", 2560, 890, "for tst_BaseModel::remove()/destroy()", "2021-01-02 14:55:23", "2021-01-02 17:47:31"},
			[]any{8, 5, 2, "test5_file3.mkv", 2570, 896, "for tst_BaseModel::destroy()", "2021-01-02 14:56:23", "2021-01-02 17:48:31"},
			[]any{9, nil, 0, "test0_file0.mkv", 1440, 420, "no torrent parent model", "2021-01-06 14:57:23", "2021-01-06 17:49:31"},
			[]any{10, 7, 0, "test7_file1.mkv", 4562, 512, "for serialization", "2021-01-10 14:51:23", "2021-01-10 17:46:31"},
			[]any{11, 7, 1, "test7_file2.mkv", 2567, 256, "for serialization", "2021-01-11 14:51:23", "2021-01-11 17:46:31"},
			[]any{12, 7, 2, "test7_file3.mkv", 4279, 768, "for serialization", "2021-01-12 14:51:23", "2021-01-12 17:46:31"},
		),

		seeder.MustRows("torrent_previewable_file_properties",
			[]string{"id", "previewable_file_id", "name", "size"},
			[]any{1, 2, "test2_file1", 2},
			[]any{2, 3, "test2_file2", 2},
			[]any{3, 4, "test3_file1", 4},
			[]any{4, 5, "test4_file1", 5},
			[]any{5, 6, "test5_file1", 6},
		),

		seeder.MustRows("file_property_properties",
			[]string{"id", "file_property_id", "name", "value", "created_at", "updated_at"},
			[]any{1, 1, "test2_file1_property1", 1, "2021-01-01 14:51:23", "2021-01-01 17:46:31"},
			[]any{2, 2, "test2_file2_property1", 2, "2021-01-02 14:51:23", "2021-01-02 17:46:31"},
			[]any{3, 3, "test3_file1_property1", 3, "2021-01-03 14:51:23", "2021-01-03 17:46:31"},
			[]any{4, 3, "test3_file1_property2", 4, "2021-01-04 14:51:23", "2021-01-04 17:46:31"},
			[]any{5, 4, "test4_file1_property1", 5, "2021-01-05 14:51:23", "2021-01-05 17:46:31"},
			[]any{6, 5, "test5_file1_property1", 6, "2021-01-06 14:51:23", "2021-01-06 17:46:31"},
			[]any{7, 5, "test5_file1_property2", 7, "2021-01-07 14:51:23", "2021-01-07 17:46:31"},
			[]any{8, 5, "test5_file1_property3", 8, "2021-01-08 14:51:23", "2021-01-08 17:46:31"},
		),

		seeder.MustRows("torrent_tags",
			[]string{"id", "name", "note", "created_at", "updated_at"},
			[]any{1, "tag1", nil, "2021-01-11 11:51:28", "2021-01-11 23:47:11"},
			[]any{2, "tag2", nil, "2021-01-12 11:51:28", "2021-01-12 23:47:11"},
			[]any{3, "tag3", nil, "2021-01-13 11:51:28", "2021-01-13 23:47:11"},
			[]any{4, "tag4", nil, "2021-01-14 11:51:28", "2021-01-14 23:47:11"},
			[]any{5, "tag5", nil, "2021-01-15 11:51:28", "2021-01-15 23:47:11"},
		),

		seeder.MustRows("tag_torrent",
			[]string{"torrent_id", "tag_id", "active", "created_at", "updated_at"},
			[]any{2, 1, true, "2021-02-21 17:31:58", "2021-02-21 18:49:22"},
			[]any{2, 2, true, "2021-02-22 17:31:58", "2021-02-22 18:49:22"},
			[]any{2, 3, false, "2021-02-23 17:31:58", "2021-02-23 18:49:22"},
			[]any{2, 4, true, "2021-02-24 17:31:58", "2021-02-24 18:49:22"},
			[]any{3, 2, true, "2021-02-25 17:31:58", "2021-02-25 18:49:22"},
			[]any{3, 4, true, "2021-02-26 17:31:58", "2021-02-26 18:49:22"},
			[]any{4, 2, true, "2021-02-27 17:31:58", "2021-02-27 18:49:22"},
			[]any{7, 1, true, "2021-03-01 17:31:58", "2021-03-01 18:49:22"},
			[]any{7, 2, true, "2021-03-02 17:31:58", "2021-03-02 18:49:22"},
			[]any{7, 3, false, "2021-03-03 17:31:58", "2021-03-03 18:49:22"},
		),

		seeder.MustRows("tag_properties",
			[]string{"id", "tag_id", "color", "position", "created_at", "updated_at"},
			[]any{1, 1, "white", 0, "2021-02-11 12:41:28", "2021-02-11 22:17:11"},
			[]any{2, 2, "blue", 1, "2021-02-12 12:41:28", "2021-02-12 22:17:11"},
			[]any{3, 3, "red", 2, "2021-02-13 12:41:28", "2021-02-13 22:17:11"},
			[]any{4, 4, "orange", 3, "2021-02-14 12:41:28", "2021-02-14 22:17:11"},
		),

		seeder.MustRows("albums",
			[]string{"id", "name", "note", "created_at", "updated_at"},
			[]any{1, "album1", nil, "2023-01-01 12:12:14", "2023-02-01 16:54:28"},
			[]any{2, "album2", nil, "2023-01-02 12:12:14", "2023-02-02 16:54:28"},
			[]any{3, "album3", "album3 note", "2023-01-03 12:12:14", "2023-02-03 16:54:28"},
			[]any{4, "album4", "no images", "2023-01-04 12:12:14", "2023-02-04 16:54:28"},
		),

		seeder.MustRows("album_images",
			[]string{"id", "album_id", "name", "ext", "size", "created_at", "updated_at"},
			[]any{1, 1, "album1_image1", "png", 726, "2023-03-01 15:24:37", "2023-04-01 14:35:47"},
			[]any{2, 2, "album2_image1", "png", 424, "2023-03-02 15:24:37", "2023-04-02 14:35:47"},
			[]any{3, 2, "album2_image2", "jpg", 512, "2023-03-03 15:24:37", "2023-04-03 14:35:47"},
			[]any{4, 2, "album2_image3", "jpg", 324, "2023-03-04 15:24:37", "2023-04-04 14:35:47"},
			[]any{5, 2, "album2_image4", "png", 654, "2023-03-05 15:24:37", "2023-04-05 14:35:47"},
			[]any{6, 2, "album2_image5", "gif", 294, "2023-03-06 15:24:37", "2023-04-06 14:35:47"},
			[]any{7, 3, "album3_image1", "jpg", 718, "2023-03-07 15:24:37", "2023-04-07 14:35:47"},
			[]any{8, nil, "image1", "jpg", 498, "2023-03-08 15:24:37", "2023-04-08 14:35:47"},
			[]any{9, nil, "image2", "jpg", 568, "2023-03-09 15:24:37", "2023-04-09 14:35:47"},
		),

		seeder.MustRows("torrent_states",
			[]string{"id", "name"},
			[]any{1, "Active"},
			[]any{2, "Stalled"},
			[]any{3, "Inactive"},
			[]any{4, "Downloading"},
			[]any{5, "Resumed"},
		),

		seeder.MustRows("state_torrent",
			[]string{"torrent_id", "state_id", "active"},
			[]any{7, 1, true},
			[]any{7, 4, false},
		),

		seeder.MustRows("role_tag",
			[]string{"tag_id", "role_id", "active"},
			[]any{2, 1, true},
			[]any{2, 3, false},
		),
	}
}

// ExpectedCounts is the row count of every table after a successful run.
func ExpectedCounts() map[string]int {
	counts := make(map[string]int, len(Tables()))
	for _, table := range Tables() {
		counts[table.Name] = 0
	}
	for _, rows := range Plan() {
		counts[rows.Table] = rows.Len()
	}
	return counts
}

// TableNames returns the fixture tables in creation order.
func TableNames() []string {
	tables := Tables()
	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
	}
	return names
}
