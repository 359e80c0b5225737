package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepwise/ent"
	"github.com/abhisek/prepwise/ent/materialentry"
)

// materialRepo implements MaterialRepo using the ent client.
type materialRepo struct {
	client *ent.Client
}

func (r *materialRepo) Put(ctx context.Context, topic, kind, payload string) error {
	existing, err := r.client.MaterialEntry.Query().
		Where(
			materialentry.Topic(topic),
			materialentry.Kind(kind),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query material entry: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetPayload(payload).
			SetFetchedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update material entry: %w", err)
		}
		return nil
	}

	_, err = r.client.MaterialEntry.Create().
		SetTopic(topic).
		SetKind(kind).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save material entry: %w", err)
	}
	return nil
}

func (r *materialRepo) Get(ctx context.Context, topic, kind string) (*MaterialRecord, error) {
	e, err := r.client.MaterialEntry.Query().
		Where(
			materialentry.Topic(topic),
			materialentry.Kind(kind),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query material entry: %w", err)
	}
	return &MaterialRecord{
		Topic:     e.Topic,
		Kind:      e.Kind,
		Payload:   e.Payload,
		FetchedAt: e.FetchedAt,
	}, nil
}
