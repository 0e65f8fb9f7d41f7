package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartDB(t *testing.T) {
	db, err := NewPartDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	series := ResistorSeriesByName("ERJ-2RK")
	require.NotNil(t, series)
	parts, err := series.Expand()
	require.NoError(t, err)

	require.NoError(t, db.Import(parts))

	count, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, len(parts), count)

	part, err := db.Get("ERJ-2RKF10R0X")
	require.NoError(t, err)
	require.Equal(t, "10 Ω", part.Value)
	require.Equal(t, "Panasonic", part.Manufacturer)

	_, err = db.Get("ERJ-0000")
	require.Error(t, err)

	found, err := db.Find("smd")
	require.NoError(t, err)
	require.NotEmpty(t, found)

	all, err := db.All()
	require.NoError(t, err)
	require.Equal(t, len(parts), len(all))
}

func TestPartDBReimport(t *testing.T) {
	db, err := NewPartDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	series := CapacitorSeriesByName("GCM216")
	require.NotNil(t, series)
	parts, err := series.Expand()
	require.NoError(t, err)

	require.NoError(t, db.Import(parts))
	require.NoError(t, db.Import(parts))

	count, err := db.Count()
	require.NoError(t, err)
	require.Equal(t, len(parts), count, "reimport must not duplicate entries")
}
