// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/data/migrations"
)

/*
TestToPgx5DSN checks the scheme rewrite for golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/modhub", "pgx5://u:p@db:5432/modhub"},
		{"postgresql://u:p@db/modhub?sslmode=disable", "pgx5://u:p@db/modhub?sslmode=disable"},
		{"pgx5://u:p@db/modhub", "pgx5://u:p@db/modhub"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toPgx5DSN(tt.in), tt.in)
	}
}

/*
TestSource_Embedded walks the embedded schema in version order.
*/
func TestSource_Embedded(t *testing.T) {
	driver, err := Source(migrations.FS)
	require.NoError(t, err)
	defer driver.Close()

	first, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := driver.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	for _, version := range []uint{first, next} {
		up, identifier, err := driver.ReadUp(version)
		require.NoError(t, err, "version %d", version)
		assert.NotEmpty(t, identifier)
		require.NoError(t, up.Close())
	}
}

/*
TestSource_Empty has no first version when the directory holds no migrations.
*/
func TestSource_Empty(t *testing.T) {
	driver, err := Source(fstest.MapFS{"README.md": {Data: []byte("nothing here")}})
	require.NoError(t, err)

	_, err = driver.First()
	assert.Error(t, err)
}
