package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepwise/ent"
	"github.com/abhisek/prepwise/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetPlanID(data.PlanID).
		SetDay(data.Day).
		SetTopics(data.Topics).
		SetScore(data.Score).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetAutoSubmitted(data.AutoSubmitted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	records := make([]QuizEventRecord, len(events))
	for i, e := range events {
		records[i] = QuizEventRecord{
			QuizEventData: QuizEventData{
				QuizID:        e.QuizID,
				PlanID:        e.PlanID,
				Day:           e.Day,
				Topics:        e.Topics,
				Score:         e.Score,
				Correct:       e.Correct,
				Total:         e.Total,
				Passed:        e.Passed,
				AutoSubmitted: e.AutoSubmitted,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
