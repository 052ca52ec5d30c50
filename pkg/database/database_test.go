package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(Options{User: "root", Password: "pw", Host: "127.0.0.1", Port: 3306, Name: "links"})
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/links?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", dsn)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(Options{User: "u", Password: "p", Host: "db", Port: 5432, Name: "links"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=links sslmode=disable TimeZone=UTC", dsn)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(Options{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db"), MaxOpenConns: 1})
	require.NoError(t, err)
	defer Close(db)

	assert.NoError(t, Ping(db))
}
