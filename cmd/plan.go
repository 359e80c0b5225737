package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/plan"
	"github.com/abhisek/prepwise/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and inspect study plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new study plan for an exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		days, _ := cmd.Flags().GetInt("days")
		perQ, _ := cmd.Flags().GetInt("seconds-per-question")
		nQ, _ := cmd.Flags().GetInt("questions-per-quiz")

		if exam == "" {
			return fmt.Errorf("--exam is required")
		}
		if days <= 0 {
			return fmt.Errorf("--days must be positive")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gen := plan.NewGenerator(provider, plan.DefaultGeneratorConfig())
		p, err := gen.Generate(ctx, plan.GenerateInput{
			ExamName:           exam,
			TotalDays:          days,
			PerQuestionSeconds: perQ,
			QuestionsPerQuiz:   nQ,
		})
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		if err := st.PlanRepo().Save(ctx, planToRecord(p)); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		fmt.Printf("Created plan %s: %s over %d days\n", p.ID, p.ExamName, p.TotalDays)
		printPlanDays(p)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved study plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.PlanRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list plans: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No plans yet. Create one with: prepwise plan create --exam <name> --days <n>")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-5s  %-10s  %s\n", "ID", "Exam", "Days", "Progress", "Created")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range records {
			completed := 0
			for _, d := range r.Days {
				if d.Status == string(plan.StatusCompleted) {
					completed++
				}
			}
			fmt.Printf("%-36s  %-20s  %-5d  %d/%-8d  %s\n",
				r.PlanID, r.ExamName, r.TotalDays,
				completed, len(r.Days),
				r.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [plan-id]",
	Short: "Show a plan's days with their states",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var id string
		if len(args) > 0 {
			id = args[0]
		}
		p, err := loadPlan(cmd, st, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d days, quiz: %d questions, %ds each)\n",
			p.ExamName, p.TotalDays, p.QuestionsPerQuiz, p.PerQuestionSeconds)
		printPlanDays(p)
		return nil
	},
}

func init() {
	planCreateCmd.Flags().String("exam", "", "Exam to prepare for")
	planCreateCmd.Flags().Int("days", 0, "Number of days the plan should span")
	planCreateCmd.Flags().Int("seconds-per-question", plan.DefaultPerQuestionSeconds, "Quiz time allowance per question")
	planCreateCmd.Flags().Int("questions-per-quiz", plan.DefaultQuestionsPerQuiz, "Questions in each day's quiz")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
}

// loadPlan returns the plan with the given ID, or the latest plan when
// id is empty.
func loadPlan(cmd *cobra.Command, st *store.Store, id string) (*plan.StudyPlan, error) {
	ctx := cmd.Context()
	var (
		rec *store.PlanRecord
		err error
	)
	if id == "" {
		rec, err = st.PlanRepo().Latest(ctx)
	} else {
		rec, err = st.PlanRepo().Get(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("no plan found; create one with: prepwise plan create")
	}
	return recordToPlan(rec), nil
}

func printPlanDays(p *plan.StudyPlan) {
	states := plan.DayStates(p.Days)
	for i, d := range p.Days {
		marker := " "
		switch states[i] {
		case plan.StateCompleted:
			marker = "✓"
		case plan.StateActive:
			marker = "▶"
		case plan.StateLocked:
			marker = "🔒"
		}
		fmt.Printf("  %s Day %d: %s\n", marker, d.Day, d.Topics)
		if states[i] == plan.StateActive {
			for _, topic := range plan.ExtractTopics(d.Topics) {
				fmt.Printf("      • %s\n", topic)
			}
		}
	}
}

func planToRecord(p *plan.StudyPlan) *store.PlanRecord {
	days := make([]store.PlanDay, len(p.Days))
	for i, d := range p.Days {
		days[i] = store.PlanDay{
			Day:    d.Day,
			Topics: d.Topics,
			Status: string(d.Status),
		}
	}
	return &store.PlanRecord{
		PlanID:             p.ID,
		ExamName:           p.ExamName,
		TotalDays:          p.TotalDays,
		PerQuestionSeconds: p.PerQuestionSeconds,
		QuestionsPerQuiz:   p.QuestionsPerQuiz,
		Days:               days,
	}
}

func recordToPlan(r *store.PlanRecord) *plan.StudyPlan {
	days := make([]plan.DayTopic, len(r.Days))
	for i, d := range r.Days {
		days[i] = plan.DayTopic{
			Day:    d.Day,
			Topics: d.Topics,
			Status: plan.DayStatus(d.Status),
		}
	}
	return &plan.StudyPlan{
		ID:                 r.PlanID,
		ExamName:           r.ExamName,
		TotalDays:          r.TotalDays,
		PerQuestionSeconds: r.PerQuestionSeconds,
		QuestionsPerQuiz:   r.QuestionsPerQuiz,
		Days:               days,
	}
}
