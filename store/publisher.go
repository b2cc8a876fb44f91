package store

import (
	"cmp"
	"context"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/go-intervalforest/codec"
	"github.com/forestrie/go-intervalforest/itree"
)

// Publisher writes index payloads into an object store. Payloads are
// written fail-if-exists: a published (dataset, name) pair is immutable, a
// new build gets a new name.
type Publisher struct {
	log   logger.Logger
	store ObjectWriter
}

func NewPublisher(log logger.Logger, store ObjectWriter) *Publisher {
	return &Publisher{log: log, store: store}
}

// Publish serializes the index and writes it at the payload path for
// (datasetID, name), returning the storage path written.
func Publish[K cmp.Ordered](
	ctx context.Context, p *Publisher,
	datasetID uuid.UUID, name string, x *itree.Index[K], kc codec.KeyCodec[K],
) (string, error) {
	frame, err := codec.Marshal(x, kc)
	if err != nil {
		return "", err
	}
	path := IndexPath(datasetID, name)
	if err = p.store.Put(ctx, path, frame, true); err != nil {
		return "", err
	}
	p.log.Infof("published %s: %d intervals, %d bytes", path, x.Size(), len(frame))
	return path, nil
}

// PublishSeal writes a seal message alongside a published payload.
func (p *Publisher) PublishSeal(
	ctx context.Context, datasetID uuid.UUID, name string, msg []byte,
) (string, error) {
	path := SealPath(datasetID, name)
	if err := p.store.Put(ctx, path, msg, true); err != nil {
		return "", err
	}
	p.log.Infof("published seal %s: %d bytes", path, len(msg))
	return path, nil
}
