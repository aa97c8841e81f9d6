package service

import (
	"context"
	"fmt"
	"time"

	"eco-chat-be/internal/apperr"
	"eco-chat-be/internal/constant"
	"eco-chat-be/internal/dto"
	"eco-chat-be/internal/pkg/logger"
	"eco-chat-be/internal/repository/memory"
	"eco-chat-be/pkg/events"
	"eco-chat-be/pkg/llm"
	"eco-chat-be/pkg/normalizer"
	"eco-chat-be/pkg/prompt"
	"eco-chat-be/pkg/search"
	"eco-chat-be/pkg/store"
	"eco-chat-be/pkg/vision"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	Ask(ctx context.Context, identity, query string) (string, error)
	ClassifyTrash(ctx context.Context, identity, imagePath string) (*dto.AdvisoryOutcome, error)
	GenerateQuiz(ctx context.Context, identity string) (string, error)
}

// chatbotService glues the collaborators together: search and vision feed the
// prompt assembler, the chat model answers, and the per-identity conversation
// records the exchange once the model call has succeeded.
type chatbotService struct {
	llmProvider llm.LLMProvider
	searcher    search.Searcher
	classifier  vision.Classifier
	sessions    *memory.SessionRepository
	builder     *prompt.Builder
	usage       IUsageRecorder
	sysLog      logger.ILogger
}

func NewChatbotService(
	llmProvider llm.LLMProvider,
	searcher search.Searcher,
	classifier vision.Classifier,
	sessions *memory.SessionRepository,
	usage IUsageRecorder,
	sysLog logger.ILogger,
) IChatbotService {
	return &chatbotService{
		llmProvider: llmProvider,
		searcher:    searcher,
		classifier:  classifier,
		sessions:    sessions,
		builder:     prompt.NewBuilder(constant.SustainabilityPersonaV1),
		usage:       usage,
		sysLog:      sysLog,
	}
}

// Ask answers a user query with web-search context and the caller's prior
// conversation. The exchange is appended to the conversation only after the
// model call succeeds.
func (cs *chatbotService) Ask(ctx context.Context, identity, query string) (string, error) {
	started := time.Now()

	docs := cs.searcher.Search(ctx, query)

	conv := cs.sessions.GetOrCreate(identity)
	messages := cs.builder.Build(conv.History(), docs, query)

	answer, err := cs.llmProvider.Chat(ctx, messages, llm.WithTemperature(1.0))
	if err != nil || answer == "" {
		cs.sysLog.Error("chatbot", "Chat model produced no answer", map[string]interface{}{
			"identity": identity,
			"error":    errString(err),
		})
		cs.usage.Record(events.UsageAsk, identity, time.Since(started), false)
		return "", apperr.ErrGenerationFailure
	}

	conv.AppendExchange(
		llm.Message{Role: llm.RoleUser, Content: query},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)

	cs.usage.Record(events.UsageAsk, identity, time.Since(started), true)
	cs.sysLog.Debug("chatbot", "Answer generated", map[string]interface{}{
		"identity": identity,
		"history":  conv.Len(),
	})
	return answer, nil
}

// ClassifyTrash runs the two classifier calls in order, then asks the chat
// model for a structured advisory. A failed classifier call short-circuits:
// the second call and the model call are never issued.
func (cs *chatbotService) ClassifyTrash(ctx context.Context, identity, imagePath string) (*dto.AdvisoryOutcome, error) {
	started := time.Now()

	segregation, err := cs.classifier.DetectSegregation(ctx, imagePath)
	if err != nil {
		cs.usage.Record(events.UsageClassify, identity, time.Since(started), false)
		return &dto.AdvisoryOutcome{StageError: constant.TrashDetectionStageError}, nil
	}

	object, err := cs.classifier.IdentifyObject(ctx, imagePath)
	if err != nil {
		cs.usage.Record(events.UsageClassify, identity, time.Since(started), false)
		return &dto.AdvisoryOutcome{StageError: constant.ObjectIdentificationStageError}, nil
	}

	// Both raw results ride into the prompt as one context document.
	contextDoc := store.Document{
		Content: fmt.Sprintf("Trash segregation result: %v, Object identification result: %v", segregation, object),
	}

	conv := cs.sessions.GetOrCreate(identity)
	messages := cs.builder.Build(conv.History(), []store.Document{contextDoc}, constant.AdvisoryQueryV2)

	answer, err := cs.llmProvider.Chat(ctx, messages, llm.WithTemperature(1.0))
	if err != nil || answer == "" {
		cs.sysLog.Error("chatbot", "Chat model produced no advisory", map[string]interface{}{
			"identity": identity,
			"error":    errString(err),
		})
		answer = constant.NoResponseSentinel
	} else {
		conv.AppendExchange(
			llm.Message{Role: llm.RoleUser, Content: constant.AdvisoryQueryV2},
			llm.Message{Role: llm.RoleAssistant, Content: answer},
		)
	}

	result := normalizer.Normalize(answer)
	cs.usage.Record(events.UsageClassify, identity, time.Since(started), !result.Malformed)
	return &dto.AdvisoryOutcome{Advisory: result.Payload()}, nil
}

// GenerateQuiz asks the model for the fixed quiz and returns the text
// verbatim. The shape is deliberately not validated; clients tolerate it.
func (cs *chatbotService) GenerateQuiz(ctx context.Context, identity string) (string, error) {
	started := time.Now()

	answer, err := cs.llmProvider.Generate(ctx, constant.QuizPromptV1)
	if err != nil {
		cs.usage.Record(events.UsageQuiz, identity, time.Since(started), false)
		return "", fmt.Errorf("generate quiz: %w", err)
	}

	cs.usage.Record(events.UsageQuiz, identity, time.Since(started), true)
	return answer, nil
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}
