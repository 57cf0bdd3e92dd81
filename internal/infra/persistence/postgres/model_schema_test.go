package postgres

import (
	"sync"
	"testing"

	"masjidcast/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseModel(t *testing.T, dest any) *schema.Schema {
	t.Helper()

	s, err := schema.Parse(dest, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	return s
}

func TestBroadcastModel_OneBroadcastPerPrayerAndDay(t *testing.T) {
	s := parseModel(t, &model.BroadcastModel{})

	idx := s.LookIndex("idx_broadcasts_masjid_prayer_day")
	require.NotNil(t, idx)

	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "status <> 'failed' AND prayer_name IS NOT NULL", idx.Where)

	columns := make([]string, 0, len(idx.Fields))
	for _, field := range idx.Fields {
		columns = append(columns, field.DBName)
	}
	assert.Equal(t, []string{"masjid_id", "prayer_name", "broadcast_day"}, columns)

	// Lookups by masjid keep their own index.
	assert.NotNil(t, s.LookIndex("idx_broadcasts_masjid_id"))
}

func TestModels_ParseWithoutErrors(t *testing.T) {
	tables := map[string]bool{}
	for _, m := range Models() {
		s := parseModel(t, m)
		s.ParseIndexes()
		tables[s.Table] = true
	}

	assert.True(t, tables["broadcasts"])
	assert.Len(t, tables, len(Models()))
}
