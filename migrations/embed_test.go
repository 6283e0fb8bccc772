package migrations

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreCollected(t *testing.T) {
	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	migrations, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, int64(2), migrations[1].Version)
}
