package migration

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStems(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "migrations")

	stems, err := ListStems(dir)
	require.NoError(t, err)

	// Down files, non-sql files and directories are ignored.
	assert.Equal(t, []string{
		"0001_create_collections",
		"0002_create_items",
		"0010_add_item_mime_type",
	}, stems)
}

func TestListStems_EmptyDir(t *testing.T) {
	stems, err := ListStems(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, stems)
	assert.Empty(t, stems)
}

func TestListStems_SortedAscending(t *testing.T) {
	dir := t.TempDir()
	createTestMigration(t, dir, "0003_c.up.sql")
	createTestMigration(t, dir, "0001_a.up.sql")
	createTestMigration(t, dir, "0002_b.up.sql")

	stems, err := ListStems(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a", "0002_b", "0003_c"}, stems)
}

func TestListStems_NonExistentDir(t *testing.T) {
	_, err := ListStems("/nonexistent/path")
	require.Error(t, err)

	var dirErr *DirectoryAccessError
	require.True(t, errors.As(err, &dirErr))
	assert.Equal(t, "/nonexistent/path", dirErr.Dir)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		stem    string
		want    int
		wantErr bool
	}{
		{stem: "0001_add_users", want: 1},
		{stem: "0007_foo", want: 7},
		{stem: "0010_with_many_underscores", want: 10},
		{stem: "12345_wide", want: 12345},
		{stem: "0005", want: 5},
		{stem: "0005_", want: 5},
		{stem: "abcd_x", wantErr: true},
		{stem: "_leading", wantErr: true},
		{stem: "", wantErr: true},
		{stem: "-1_negative", wantErr: true},
		{stem: "+1_signed", wantErr: true},
		{stem: "12a_mixed", wantErr: true},
		{stem: "99999999999999999999999_huge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			got, err := ParseIndex(tt.stem)
			if tt.wantErr {
				var stemErr *MalformedStemError
				require.True(t, errors.As(err, &stemErr))
				assert.Equal(t, tt.stem, stemErr.Stem)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name  string
		stems []string
		want  int
	}{
		{name: "empty", stems: nil, want: 1},
		{name: "single", stems: []string{"0007_foo"}, want: 8},
		{name: "gap", stems: []string{"0001_a", "0003_c"}, want: 4},
		{name: "unsorted input", stems: []string{"0005_e", "0002_b"}, want: 6},
		{name: "beyond four digits", stems: []string{"9999_a", "10000_b"}, want: 10001},
		{name: "numeric not lexicographic", stems: []string{"0009_a", "10_b"}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextIndex(tt.stems)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextIndex_MalformedStem(t *testing.T) {
	_, err := NextIndex([]string{"0001_ok", "abcd_x"})
	require.Error(t, err)

	var stemErr *MalformedStemError
	require.True(t, errors.As(err, &stemErr))
	assert.Equal(t, "abcd_x", stemErr.Stem)
}

func TestGetNextIndex(t *testing.T) {
	dir := t.TempDir()

	// Empty dir
	v, err := GetNextIndex(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Down files alone do not count
	createTestMigration(t, dir, "0009_only_down.down.sql")
	v, err = GetNextIndex(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	createTestMigration(t, dir, "0001_first.up.sql")
	createTestMigration(t, dir, "0003_third.up.sql")

	v, err = GetNextIndex(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestGetNextIndex_NonExistentDir(t *testing.T) {
	_, err := GetNextIndex(filepath.Join(t.TempDir(), "missing"))

	var dirErr *DirectoryAccessError
	assert.True(t, errors.As(err, &dirErr))
}

func createTestMigration(t *testing.T, dir, filename string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(Placeholder), 0644))
}
