package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepwise/ent"
	"github.com/abhisek/prepwise/ent/doubtmessage"
)

// doubtRepo implements DoubtRepo using the ent client.
type doubtRepo struct {
	client *ent.Client
}

func (r *doubtRepo) Append(ctx context.Context, data DoubtMessageData) error {
	_, err := r.client.DoubtMessage.Create().
		SetPlanID(data.PlanID).
		SetTopic(data.Topic).
		SetSender(data.Sender).
		SetContent(data.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append doubt message: %w", err)
	}
	return nil
}

func (r *doubtRepo) Thread(ctx context.Context, planID, topic string) ([]DoubtMessageRecord, error) {
	msgs, err := r.client.DoubtMessage.Query().
		Where(
			doubtmessage.PlanID(planID),
			doubtmessage.Topic(topic),
		).
		Order(ent.Asc(doubtmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query doubt thread: %w", err)
	}

	records := make([]DoubtMessageRecord, len(msgs))
	for i, m := range msgs {
		records[i] = DoubtMessageRecord{
			PlanID:    m.PlanID,
			Topic:     m.Topic,
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return records, nil
}

func (r *doubtRepo) Topics(ctx context.Context, planID string) ([]string, error) {
	topics, err := r.client.DoubtMessage.Query().
		Where(doubtmessage.PlanID(planID)).
		Order(ent.Asc(doubtmessage.FieldTopic)).
		Unique(true).
		Select(doubtmessage.FieldTopic).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query doubt topics: %w", err)
	}
	return topics, nil
}
