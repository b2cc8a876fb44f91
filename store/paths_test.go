package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathSchemaRoundtrip(t *testing.T) {
	datasetID := uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002")

	path := IndexPath(datasetID, "exons")
	assert.Equal(t, "v1/datasets/a3bb189e-8bf9-3888-9912-ace4e6543002/exons.iix", path)

	gotID, err := DatasetFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, datasetID, gotID)

	name, err := IndexNameFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "exons", name)

	sealPath := SealPath(datasetID, "exons")
	assert.Equal(t, "v1/datasets/a3bb189e-8bf9-3888-9912-ace4e6543002/exons.seal", sealPath)
	_, err = IndexNameFromPath(sealPath)
	assert.ErrorIs(t, err, ErrNotIndexPath, "a seal path is not an index path")
}

func TestDatasetFromPathRejections(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"wrong prefix", "v2/datasets/a3bb189e-8bf9-3888-9912-ace4e6543002/x.iix"},
		{"no payload segment", "v1/datasets/a3bb189e-8bf9-3888-9912-ace4e6543002"},
		{"empty payload segment", "v1/datasets/a3bb189e-8bf9-3888-9912-ace4e6543002/"},
		{"unparseable uuid", "v1/datasets/not-a-uuid/x.iix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DatasetFromPath(tt.path)
			assert.ErrorIs(t, err, ErrNotIndexPath)
		})
	}
}
