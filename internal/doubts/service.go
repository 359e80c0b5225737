package doubts

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/materialgen"
	"github.com/abhisek/prepwise/internal/store"
)

// Service answers student doubts and keeps the per-topic threads. The
// in-memory log is the working copy; repo (when non-nil) makes the
// threads durable across runs.
type Service struct {
	log      *Log
	gen      *materialgen.Service
	repo     store.DoubtRepo
	examName string
	planID   string
}

// NewService creates a doubt service for one plan. A nil repo disables
// persistence.
func NewService(gen *materialgen.Service, repo store.DoubtRepo, examName, planID string) *Service {
	return &Service{
		log:      NewLog(),
		gen:      gen,
		repo:     repo,
		examName: examName,
		planID:   planID,
	}
}

// Load hydrates the in-memory log from the store.
func (s *Service) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	topics, err := s.repo.Topics(ctx, s.planID)
	if err != nil {
		return fmt.Errorf("load doubt topics: %w", err)
	}
	for _, topic := range topics {
		msgs, err := s.repo.Thread(ctx, s.planID, topic)
		if err != nil {
			return fmt.Errorf("load doubt thread: %w", err)
		}
		for _, m := range msgs {
			s.log.Append(topic, Message{
				Sender:  Sender(m.Sender),
				Content: m.Content,
				At:      m.CreatedAt,
			})
		}
	}
	return nil
}

// Ask records the student's question on the topic's thread, gets an
// answer with the thread so far as context, and records the answer. The
// question stays on the thread even when answering fails, so a retry
// carries it as history.
func (s *Service) Ask(ctx context.Context, topic, query string) (materialgen.DoubtAnswer, error) {
	history := s.history(topic)

	if err := s.append(ctx, topic, Message{Sender: SenderUser, Content: query, At: time.Now()}); err != nil {
		return materialgen.DoubtAnswer{}, err
	}

	answer, err := s.gen.AskDoubt(ctx, s.examName, topic, query, history)
	if err != nil {
		return materialgen.DoubtAnswer{}, err
	}

	content := answer.SimpleAnswer
	if answer.DetailedExplanation != "" {
		content += "\n\n" + answer.DetailedExplanation
	}
	if err := s.append(ctx, topic, Message{Sender: SenderAssistant, Content: content, At: time.Now()}); err != nil {
		return materialgen.DoubtAnswer{}, err
	}

	return answer, nil
}

// Thread returns the topic's messages in append order.
func (s *Service) Thread(topic string) []Message {
	return s.log.Thread(topic)
}

// Topics returns the topics with at least one message, sorted.
func (s *Service) Topics() []string {
	return s.log.Topics()
}

func (s *Service) append(ctx context.Context, topic string, msg Message) error {
	s.log.Append(topic, msg)
	if s.repo == nil {
		return nil
	}
	err := s.repo.Append(ctx, store.DoubtMessageData{
		PlanID:  s.planID,
		Topic:   topic,
		Sender:  string(msg.Sender),
		Content: msg.Content,
	})
	if err != nil {
		return fmt.Errorf("persist doubt message: %w", err)
	}
	return nil
}

// history converts the thread so far into conversation messages for
// the collaborator.
func (s *Service) history(topic string) []llm.Message {
	thread := s.log.Thread(topic)
	msgs := make([]llm.Message, 0, len(thread))
	for _, m := range thread {
		role := llm.RoleUser
		if m.Sender == SenderAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	return msgs
}
