package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NLT_JWT_SECRET", "test-secret")

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", conf.Server.Addr)
	assert.Equal(t, "nlt.db", conf.Server.DatabasePath)
	assert.Equal(t, "0000", conf.Server.BootstrapPin)
	assert.Equal(t, "fs", conf.Backup.Backend)
	assert.Equal(t, "backups", conf.Backup.Dir)
	assert.Equal(t, "nlt-backup-", conf.Backup.Prefix)
	assert.Equal(t, "@daily", conf.Backup.Schedule)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NLT_JWT_SECRET", "test-secret")
	t.Setenv("NLT_ADDR", ":9090")
	t.Setenv("NLT_BACKUP_BACKEND", "s3")
	t.Setenv("NLT_S3_BUCKET", "nlt-backups")
	t.Setenv("NLT_S3_ENDPOINT", "http://minio:9000")

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.Server.Addr)
	assert.Equal(t, "s3", conf.Backup.Backend)
	assert.Equal(t, "nlt-backups", conf.S3.Bucket)
	assert.Equal(t, "http://minio:9000", conf.S3.Endpoint)
	assert.Equal(t, "eu-west-1", conf.S3.Region)
}

func TestLoadValidation(t *testing.T) {
	// Missing JWT secret.
	t.Setenv("NLT_JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)

	// Unknown backend.
	t.Setenv("NLT_JWT_SECRET", "test-secret")
	t.Setenv("NLT_BACKUP_BACKEND", "ftp")
	_, err = Load()
	assert.Error(t, err)

	// S3 backend without a bucket.
	t.Setenv("NLT_BACKUP_BACKEND", "s3")
	t.Setenv("NLT_S3_BUCKET", "")
	_, err = Load()
	assert.Error(t, err)

	// Empty prefix.
	t.Setenv("NLT_BACKUP_BACKEND", "fs")
	t.Setenv("NLT_BACKUP_PREFIX", "")
	_, err = Load()
	assert.Error(t, err)
}
