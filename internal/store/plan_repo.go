package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepwise/ent"
	"github.com/abhisek/prepwise/ent/schema"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, rec *PlanRecord) error {
	_, err := r.client.StudyPlan.Create().
		SetPlanID(rec.PlanID).
		SetExamName(rec.ExamName).
		SetTotalDays(rec.TotalDays).
		SetPerQuestionSeconds(rec.PerQuestionSeconds).
		SetQuestionsPerQuiz(rec.QuestionsPerQuiz).
		SetDays(daysToSummaries(rec.Days)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, planID string) (*PlanRecord, error) {
	p, err := r.client.StudyPlan.Query().
		Where(studyplan.PlanID(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return entPlanToRecord(p), nil
}

func (r *planRepo) Latest(ctx context.Context) (*PlanRecord, error) {
	p, err := r.client.StudyPlan.Query().
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	return entPlanToRecord(p), nil
}

func (r *planRepo) List(ctx context.Context) ([]PlanRecord, error) {
	plans, err := r.client.StudyPlan.Query().
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	records := make([]PlanRecord, len(plans))
	for i, p := range plans {
		records[i] = *entPlanToRecord(p)
	}
	return records, nil
}

func (r *planRepo) UpdateDays(ctx context.Context, planID string, days []PlanDay) error {
	n, err := r.client.StudyPlan.Update().
		Where(studyplan.PlanID(planID)).
		SetDays(daysToSummaries(days)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update plan days: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update plan days: plan %s not found", planID)
	}
	return nil
}

func daysToSummaries(days []PlanDay) []schema.DaySummary {
	out := make([]schema.DaySummary, len(days))
	for i, d := range days {
		out[i] = schema.DaySummary{
			Day:    d.Day,
			Topics: d.Topics,
			Status: d.Status,
		}
	}
	return out
}

func entPlanToRecord(p *ent.StudyPlan) *PlanRecord {
	days := make([]PlanDay, len(p.Days))
	for i, d := range p.Days {
		days[i] = PlanDay{
			Day:    d.Day,
			Topics: d.Topics,
			Status: d.Status,
		}
	}
	return &PlanRecord{
		PlanID:             p.PlanID,
		ExamName:           p.ExamName,
		TotalDays:          p.TotalDays,
		PerQuestionSeconds: p.PerQuestionSeconds,
		QuestionsPerQuiz:   p.QuestionsPerQuiz,
		Days:               days,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
