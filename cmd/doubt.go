package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepwise/internal/doubts"
	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/materialgen"
	"github.com/spf13/cobra"
)

var doubtCmd = &cobra.Command{
	Use:   "doubt",
	Short: "Ask doubts and review past threads",
}

var doubtAskCmd = &cobra.Command{
	Use:   "ask <topic> <question>",
	Short: "Ask a doubt on a topic",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, _ := cmd.Flags().GetString("plan")
		topic := args[0]
		query := strings.Join(args[1:], " ")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlan(cmd, st, planID)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gen := materialgen.NewService(provider, materialgen.DefaultConfig())
		svc := doubts.NewService(gen, st.DoubtRepo(), p.ExamName, p.ID)
		if err := svc.Load(ctx); err != nil {
			return err
		}

		answer, err := svc.Ask(ctx, topic, query)
		if err != nil {
			return fmt.Errorf("ask doubt: %w", err)
		}

		fmt.Println(answer.SimpleAnswer)
		if answer.DetailedExplanation != "" {
			fmt.Println()
			fmt.Println(answer.DetailedExplanation)
		}
		return nil
	},
}

var doubtListCmd = &cobra.Command{
	Use:   "list [topic]",
	Short: "List doubt topics, or show a topic's thread",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, _ := cmd.Flags().GetString("plan")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlan(cmd, st, planID)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		repo := st.DoubtRepo()

		if len(args) == 0 {
			topics, err := repo.Topics(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list topics: %w", err)
			}
			if len(topics) == 0 {
				fmt.Println("No doubts yet. Ask one with: prepwise doubt ask <topic> <question>")
				return nil
			}
			for _, t := range topics {
				fmt.Println(t)
			}
			return nil
		}

		thread, err := repo.Thread(ctx, p.ID, args[0])
		if err != nil {
			return fmt.Errorf("load thread: %w", err)
		}
		if len(thread) == 0 {
			fmt.Printf("No doubts on %q yet.\n", args[0])
			return nil
		}
		for _, m := range thread {
			fmt.Printf("[%s] %s\n", m.Sender, m.Content)
		}
		return nil
	},
}

func init() {
	doubtAskCmd.Flags().String("plan", "", "Plan ID (defaults to the latest plan)")
	doubtListCmd.Flags().String("plan", "", "Plan ID (defaults to the latest plan)")

	doubtCmd.AddCommand(doubtAskCmd)
	doubtCmd.AddCommand(doubtListCmd)
}
