package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/prepwise/internal/content"
	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/materialgen"
	"github.com/abhisek/prepwise/internal/plan"
	"github.com/abhisek/prepwise/internal/store"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [topic]",
	Short: "Read study material for the active day",
	Long: `Fetches material for a topic of the active day and prints it one page
at a time. Material is cached per topic and kind; use --refresh to
force a fresh fetch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFlag, _ := cmd.Flags().GetString("kind")
		page, _ := cmd.Flags().GetInt("page")
		refresh, _ := cmd.Flags().GetBool("refresh")
		planID, _ := cmd.Flags().GetString("plan")

		kind, err := parseKind(kindFlag)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlan(cmd, st, planID)
		if err != nil {
			return err
		}

		active, ok := plan.ActiveIndex(p.Days)
		if !ok {
			fmt.Println("All days completed. Nothing left to study!")
			return nil
		}
		day := p.Days[active]
		topics := plan.ExtractTopics(day.Topics)
		if len(topics) == 0 {
			return fmt.Errorf("day %d has no topics", day.Day)
		}

		topic := topics[0]
		if len(args) > 0 {
			topic, err = matchTopic(topics, args[0])
			if err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := materialgen.NewService(provider, materialgen.DefaultConfig())

		cache := content.NewCache()
		key := content.Key(topic, kind)
		raw, err := cache.GetOrFetch(ctx, key, materialFetch(st.MaterialRepo(), svc, materialgen.Input{
			ExamName: p.ExamName,
			Topics:   []string{topic},
			PlanID:   p.ID,
			Day:      day.Day,
			Kind:     kind,
		}, refresh), refresh)
		if err != nil {
			return fmt.Errorf("fetch material: %w", err)
		}

		doc := materialgen.Decode(kind, raw).Render()
		pages := content.Paginate(doc)
		if page < 1 || page > len(pages) {
			return fmt.Errorf("page %d out of range (1-%d)", page, len(pages))
		}

		fmt.Printf("%s — %s (day %d)\n\n", topic, kind, day.Day)
		fmt.Println(pages[page-1])
		fmt.Printf("\n— page %d of %d —\n", page, len(pages))
		return nil
	},
}

func init() {
	studyCmd.Flags().String("kind", string(content.KindSummary), "Material kind: summary, revision_notes, full_chapter, practice_quiz")
	studyCmd.Flags().Int("page", 1, "Page to display")
	studyCmd.Flags().Bool("refresh", false, "Bypass the cache and fetch fresh material")
	studyCmd.Flags().String("plan", "", "Plan ID (defaults to the latest plan)")
}

func parseKind(s string) (content.Kind, error) {
	switch content.Kind(s) {
	case content.KindSummary, content.KindRevisionNotes, content.KindFullChapter, content.KindPracticeQuiz:
		return content.Kind(s), nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// matchTopic resolves a user-typed topic against the day's topic list,
// accepting an exact match or a 1-based index.
func matchTopic(topics []string, arg string) (string, error) {
	for _, t := range topics {
		if t == arg {
			return t, nil
		}
	}
	var idx int
	if _, err := fmt.Sscanf(arg, "%d", &idx); err == nil && idx >= 1 && idx <= len(topics) {
		return topics[idx-1], nil
	}
	return "", fmt.Errorf("topic %q not in the active day (have: %v)", arg, topics)
}

// materialFetch builds the cache fetch function: read through the
// durable material store, falling back to the collaborator, and write
// fresh payloads back so material survives restarts. A forced refresh
// skips the durable read but still writes through.
func materialFetch(repo store.MaterialRepo, svc *materialgen.Service, input materialgen.Input, force bool) content.FetchFunc {
	return func(ctx context.Context) (string, error) {
		topic := input.Topics[0]
		if !force {
			rec, err := repo.Get(ctx, topic, string(input.Kind))
			if err != nil {
				return "", err
			}
			if rec != nil {
				return rec.Payload, nil
			}
		}

		raw, err := svc.Fetch(ctx, input)
		if err != nil {
			return "", err
		}
		if err := repo.Put(ctx, topic, string(input.Kind), raw); err != nil {
			return "", err
		}
		return raw, nil
	}
}
