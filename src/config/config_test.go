package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDSNDefaults(t *testing.T) {
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "gigbook")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_NAME", "gigbook")
	t.Setenv("DATABASE_PORT", "")
	t.Setenv("DATABASE_SSLMODE", "")
	t.Setenv("DATABASE_TIMEZONE", "")

	dsn := GetDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "TimeZone=UTC")
}

func TestGetDSNOverrides(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_USER", "gigbook")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_NAME", "gigbook")
	t.Setenv("DATABASE_PORT", "6432")
	t.Setenv("DATABASE_SSLMODE", "require")
	t.Setenv("DATABASE_TIMEZONE", "America/New_York")

	dsn := GetDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=6432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "TimeZone=America/New_York")
}
