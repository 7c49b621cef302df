package stations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirectoryResolve(t *testing.T) {
	directory := DefaultDirectory()

	t.Run("known stations keep their configured order", func(t *testing.T) {
		a, b, err := directory.Resolve("KENDALL/MIT")
		require.NoError(t, err)
		assert.Equal(t, "70072", a)
		assert.Equal(t, "70071", b)

		a, b, err = directory.Resolve("CENTRAL SQUARE")
		require.NoError(t, err)
		assert.Equal(t, "70070", a)
		assert.Equal(t, "70069", b)
	})

	t.Run("lookups are exact and case sensitive", func(t *testing.T) {
		for _, name := range []string{"kendall/mit", "Kendall/MIT", "KENDALL/MIT ", "KENDALL MIT", "UNKNOWN STATION", ""} {
			_, _, err := directory.Resolve(name)
			assert.ErrorIs(t, err, ErrUnknownStation, name)
		}
	})

	t.Run("repeated lookups are stable", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			a, b, err := directory.Resolve("KENDALL/MIT")
			require.NoError(t, err)
			assert.Equal(t, [2]string{"70072", "70071"}, [2]string{a, b})
		}
	})
}

func TestNewDirectory(t *testing.T) {
	t.Run("copies the input map", func(t *testing.T) {
		entries := map[string]StopPair{"PORTER": {A: "70066", B: "70065"}}
		directory, err := NewDirectory(entries)
		require.NoError(t, err)

		entries["PORTER"] = StopPair{A: "x", B: "y"}
		entries["DAVIS"] = StopPair{A: "70064", B: "70063"}

		a, b, err := directory.Resolve("PORTER")
		require.NoError(t, err)
		assert.Equal(t, "70066", a)
		assert.Equal(t, "70065", b)
		assert.Equal(t, 1, directory.Len())
	})

	t.Run("rejects incomplete pairs", func(t *testing.T) {
		_, err := NewDirectory(map[string]StopPair{"PORTER": {A: "70066"}})
		assert.ErrorContains(t, err, "two stop identifiers")

		_, err = NewDirectory(map[string]StopPair{"": {A: "1", B: "2"}})
		assert.Error(t, err)
	})
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"CENTRAL SQUARE", "KENDALL/MIT"}, DefaultDirectory().Names())
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "stations.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stations:\n  HARVARD:\n    a: \"70068\"\n    b: \"70067\"\n"), 0o600))

		directory, err := LoadDirectory(path)
		require.NoError(t, err)

		a, b, err := directory.Resolve("HARVARD")
		require.NoError(t, err)
		assert.Equal(t, "70068", a)
		assert.Equal(t, "70067", b)
	})

	t.Run("yaml with unknown fields", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("stops:\n  HARVARD: {}\n"), 0o600))

		_, err := LoadDirectory(path)
		assert.ErrorContains(t, err, "decode station directory")
	})

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(dir, "stations.csv")
		require.NoError(t, os.WriteFile(path, []byte("name,stop_a,stop_b\nKENDALL/MIT,70072,70071\nPARK STREET,70076,70075\n"), 0o600))

		directory, err := LoadDirectory(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"KENDALL/MIT", "PARK STREET"}, directory.Names())

		a, b, err := directory.Resolve("PARK STREET")
		require.NoError(t, err)
		assert.Equal(t, "70076", a)
		assert.Equal(t, "70075", b)
	})

	t.Run("csv duplicates", func(t *testing.T) {
		_, err := ParseCSV([]byte("name,stop_a,stop_b\nA,1,2\nA,3,4\n"))
		assert.ErrorContains(t, err, "listed twice")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "stations.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		_, err := LoadDirectory(path)
		assert.ErrorContains(t, err, "unsupported")
	})
}

func TestRedLineLookups(t *testing.T) {
	assert.Equal(t, "NorthBound", DirectionName(1))
	assert.Equal(t, "SouthBound", DirectionName(0))
	assert.Equal(t, "Unknown", DirectionName(7))

	assert.Equal(t, "Kendall/MIT", RedLineStationName(50))
	assert.Equal(t, "Braintree", RedLineStationName(210))
	assert.Equal(t, "UNKNOWN", RedLineStationName(55))
}
