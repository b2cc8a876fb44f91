package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Storage path schema. An annotation dataset is identified by UUID and may
// carry any number of named index payloads, each with an optional seal
// alongside:
//
//	v1/datasets/<uuid>/<name>.iix
//	v1/datasets/<uuid>/<name>.seal
const (
	V1DatasetPrefix = "v1/datasets/"
	IndexBlobExt    = ".iix"
	SealBlobExt     = ".seal"
)

func DatasetPrefix(datasetID uuid.UUID) string {
	return fmt.Sprintf("%s%s/", V1DatasetPrefix, datasetID.String())
}

func IndexPath(datasetID uuid.UUID, name string) string {
	return DatasetPrefix(datasetID) + name + IndexBlobExt
}

func SealPath(datasetID uuid.UUID, name string) string {
	return DatasetPrefix(datasetID) + name + SealBlobExt
}

// DatasetFromPath recovers the dataset identity from any path under the V1
// schema.
func DatasetFromPath(storagePath string) (uuid.UUID, error) {
	rest, ok := strings.CutPrefix(storagePath, V1DatasetPrefix)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("%w: %s", ErrNotIndexPath, storagePath)
	}
	id, rest, ok := strings.Cut(rest, "/")
	if !ok || rest == "" {
		return uuid.UUID{}, fmt.Errorf("%w: %s", ErrNotIndexPath, storagePath)
	}
	datasetID, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: %s: %v", ErrNotIndexPath, storagePath, err)
	}
	return datasetID, nil
}

// IndexNameFromPath recovers the payload name from an index path.
func IndexNameFromPath(storagePath string) (string, error) {
	if _, err := DatasetFromPath(storagePath); err != nil {
		return "", err
	}
	base := storagePath[strings.LastIndex(storagePath, "/")+1:]
	name, ok := strings.CutSuffix(base, IndexBlobExt)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %s", ErrNotIndexPath, storagePath)
	}
	return name, nil
}
