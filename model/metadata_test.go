package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataWikipediaURL(t *testing.T) {
	m := Metadata{MetadataKeyWikipediaURL: "https://en.wikipedia.org/wiki/Rome"}
	assert.Equal(t, "https://en.wikipedia.org/wiki/Rome", m.WikipediaURL())

	empty := Metadata{}
	assert.Empty(t, empty.WikipediaURL())
}

func TestMetadataValueScan(t *testing.T) {
	t.Run("Round-trip through Value and Scan", func(t *testing.T) {
		m := Metadata{
			MetadataKeyWikipediaURL: "https://en.wikipedia.org/wiki/Bach",
			MetadataKeyMID:          "/m/0bach",
		}

		value, err := m.Value()
		require.NoError(t, err)

		var scanned Metadata
		err = scanned.Scan(value)
		require.NoError(t, err)
		assert.Equal(t, m, scanned)
	})

	t.Run("Scan nil yields empty metadata", func(t *testing.T) {
		var m Metadata
		err := m.Scan(nil)
		require.NoError(t, err)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("Scan rejects non-byte values", func(t *testing.T) {
		var m Metadata
		err := m.Scan(42)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "type assertion to []byte failed")
	})

	t.Run("Scan accepts Metadata values", func(t *testing.T) {
		source := Metadata{"key": "value"}
		var m Metadata
		err := m.Scan(source)
		require.NoError(t, err)
		assert.Equal(t, source, m)
	})
}

func TestStoredResultValueScan(t *testing.T) {
	t.Run("Round-trip through Value and Scan", func(t *testing.T) {
		stored := StoredResult{AnalysisResult: AnalysisResult{
			Entities:      []EnrichedEntity{},
			Language:      "it",
			TotalEntities: 0,
			EntityTypes:   map[EntityType]EntityTypeStats{},
		}}

		value, err := stored.Value()
		require.NoError(t, err)

		var scanned StoredResult
		err = scanned.Scan(value)
		require.NoError(t, err)
		assert.Equal(t, "it", scanned.Language)
		assert.NotNil(t, scanned.Entities)
	})

	t.Run("Scan nil yields zero result", func(t *testing.T) {
		var stored StoredResult
		err := stored.Scan(nil)
		require.NoError(t, err)
		assert.Empty(t, stored.Language)
	})

	t.Run("Scan rejects non-byte values", func(t *testing.T) {
		var stored StoredResult
		err := stored.Scan("not bytes")
		assert.Error(t, err)
	})
}
