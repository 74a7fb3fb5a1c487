package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, DefaultMongoURI, cfg.MongoURI)
	assert.Equal(t, DefaultDBName, cfg.DBName)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "compass_test")
	t.Setenv("PORT", "8081")

	cfg := Load()

	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "compass_test", cfg.DBName)
	assert.Equal(t, "8081", cfg.Port)
}
