package store

import (
	"cmp"
	"context"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/go-intervalforest/codec"
	"github.com/forestrie/go-intervalforest/itree"
)

// Retriever fetches index payloads back out of an object store.
type Retriever struct {
	log   logger.Logger
	store ObjectReader
}

func NewRetriever(log logger.Logger, store ObjectReader) *Retriever {
	return &Retriever{log: log, store: store}
}

// Fetch reads the payload for (datasetID, name) and reconstitutes the
// index, revalidating it in full.
func Fetch[K cmp.Ordered](
	ctx context.Context, r *Retriever,
	datasetID uuid.UUID, name string, kc codec.KeyCodec[K],
) (*itree.Index[K], error) {
	frame, err := r.FetchFrame(ctx, datasetID, name)
	if err != nil {
		return nil, err
	}
	x, err := codec.Unmarshal(frame, kc)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("fetched %s: %d intervals", IndexPath(datasetID, name), x.Size())
	return x, nil
}

// FetchFrame reads the raw payload bytes, for callers that verify a seal
// over the exact published bytes before decoding.
func (r *Retriever) FetchFrame(ctx context.Context, datasetID uuid.UUID, name string) ([]byte, error) {
	return r.store.Get(ctx, IndexPath(datasetID, name))
}

// FetchSeal reads the seal message alongside a payload.
func (r *Retriever) FetchSeal(ctx context.Context, datasetID uuid.UUID, name string) ([]byte, error) {
	return r.store.Get(ctx, SealPath(datasetID, name))
}

// ListIndexes returns the payload names published under a dataset.
func (r *Retriever) ListIndexes(ctx context.Context, datasetID uuid.UUID) ([]string, error) {
	paths, err := r.store.List(ctx, DatasetPrefix(datasetID))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, p := range paths {
		name, err := IndexNameFromPath(p)
		if err != nil {
			continue // seals and other companions
		}
		names = append(names, name)
	}
	return names, nil
}
