// Package chat answers questions about an indexed playlist, grounding every
// reply in retrieved transcript chunks and the playlist's latest digest.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "yt-digest/internal/app/errors"
	"yt-digest/internal/app/llm"
	"yt-digest/internal/app/model"
	"yt-digest/internal/app/repository"
	"yt-digest/internal/app/retrieval"
)

// Defaults for the answering call.
const (
	DefaultAnswerTemperature = 0.7
	DefaultHistoryWindow     = 5
)

// systemPromptTemplate scopes the assistant to the playlist content. The two
// %s slots take the digest summary and the retrieved context.
const systemPromptTemplate = `You are a specialized Knowledge Assistant dedicated strictly to the content of the provided video playlist.
Your knowledge base is exclusively the provided Context below.

### INSTRUCTIONS:
1. **Language Matching**: ALWAYS detect the language of the user's last message and respond in that EXACT same language. Do not default to English unless the user speaks English.
2. **Strict Scope**: You must ONLY answer questions that can be answered using the provided Context or Summary.
   - Do not answer general knowledge questions (e.g., "Who is the president?", "How to cook pasta?") unless strictly relevant to the video content.
   - Do not perform coding tasks or creative writing unrelated to the playlist.
3. **Refusal**: If a user asks about a topic not present in the context, politely refuse by saying (in the user's language) that you can only discuss the content of this playlist.
4. **Citations**: When using information from the context, strictly cite timestamps (e.g., "[05:23]").
5. **Tone**: Be professional, objective, and concise.

### PLAYLIST SUMMARY:
%s

### RETRIEVED CONTEXT (TRANSCRIPTS):
%s
`

const (
	noSummaryFallback = "No summary available."
	noContextFallback = "No specific context retrieved. Rely on the summary and chat history."
)

// Logger is the subset of logging the chat service needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

// Config tunes the chat service. Zero fields use the defaults.
type Config struct {
	AnswerTemperature float32
	HistoryWindow     int
}

// Request is one user turn. An empty ConversationID starts a new thread on
// the given playlist; otherwise PlaylistID is taken from the stored thread.
type Request struct {
	ConversationID string
	PlaylistID     string
	Question       string
}

// Response carries the answer plus the chunks it was grounded on.
type Response struct {
	ConversationID string
	Answer         string
	Sources        []model.SearchResult
}

// Service answers questions over an indexed playlist. Each turn rewrites the
// question against history, retrieves context, generates an answer grounded
// on that context, and persists both sides of the exchange.
type Service struct {
	retriever     *retrieval.Retriever
	chat          llm.ChatProvider
	conversations repository.ConversationRepository
	videos        repository.VideoRepository
	cfg           Config
	logger        Logger
}

// NewService wires a chat service. A nil logger disables logging.
func NewService(
	retriever *retrieval.Retriever,
	chat llm.ChatProvider,
	conversations repository.ConversationRepository,
	videos repository.VideoRepository,
	cfg Config,
	logger Logger,
) *Service {
	if cfg.AnswerTemperature <= 0 {
		cfg.AnswerTemperature = DefaultAnswerTemperature
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Service{
		retriever:     retriever,
		chat:          chat,
		conversations: conversations,
		videos:        videos,
		cfg:           cfg,
		logger:        logger,
	}
}

// Ask answers one question. Retrieval failures degrade to answering from the
// digest summary alone; persistence failures fail the turn.
func (s *Service) Ask(ctx context.Context, req Request) (Response, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.ErrEmptyQuery
	}

	conversation, history, err := s.resolveConversation(ctx, req)
	if err != nil {
		return Response{}, err
	}

	sources := s.retrieveSources(ctx, question, conversation.PlaylistID, history)

	answer, err := s.chat.GenerateText(ctx,
		s.buildMessages(ctx, conversation.PlaylistID, sources, history, question),
		llm.Options{Temperature: s.cfg.AnswerTemperature})
	if err != nil {
		return Response{}, apperrors.Wrap(err, "generate answer")
	}

	turns := []model.ChatMessage{
		{ConversationID: conversation.ID, Role: model.RoleUser, Content: question},
		{ConversationID: conversation.ID, Role: model.RoleAssistant, Content: answer},
	}
	for _, turn := range turns {
		if err := s.conversations.AppendMessage(ctx, turn); err != nil {
			return Response{}, apperrors.Wrap(err, "persist chat turn")
		}
	}

	return Response{
		ConversationID: conversation.ID,
		Answer:         answer,
		Sources:        sources,
	}, nil
}

// resolveConversation loads or creates the thread and returns its recent
// history. New threads start with empty history.
func (s *Service) resolveConversation(ctx context.Context, req Request) (model.Conversation, []model.ChatMessage, error) {
	if req.ConversationID == "" {
		if req.PlaylistID == "" {
			return model.Conversation{}, nil, apperrors.RequiredField("playlist id")
		}
		conversation := model.Conversation{
			ID:         uuid.NewString(),
			PlaylistID: req.PlaylistID,
		}
		if err := s.conversations.CreateConversation(ctx, conversation); err != nil {
			return model.Conversation{}, nil, apperrors.Wrap(err, "create conversation")
		}
		s.logger.Info("conversation started",
			"conversation_id", conversation.ID, "playlist_id", conversation.PlaylistID)
		return conversation, nil, nil
	}

	conversation, err := s.conversations.GetConversation(ctx, req.ConversationID)
	if err != nil {
		return model.Conversation{}, nil, err
	}
	history, err := s.conversations.RecentMessages(ctx, conversation.ID, s.cfg.HistoryWindow)
	if err != nil {
		return model.Conversation{}, nil, apperrors.Wrap(err, "load history")
	}
	return conversation, history, nil
}

// retrieveSources runs the rewrite+search step. Retrieval is best effort: on
// failure the answer falls back to the digest summary and history.
func (s *Service) retrieveSources(ctx context.Context, question, playlistID string, history []model.ChatMessage) []model.SearchResult {
	sources, err := s.retriever.RetrieveWithHistory(ctx, question, playlistID, history)
	if err != nil {
		s.logger.Warn("retrieval failed, answering from summary only",
			"playlist_id", playlistID, "error", err)
		return nil
	}
	return sources
}

// buildMessages assembles system prompt + history window + the new question.
func (s *Service) buildMessages(ctx context.Context, playlistID string, sources []model.SearchResult, history []model.ChatMessage, question string) []llm.Message {
	summary := noSummaryFallback
	if digest, err := s.videos.LatestDigest(ctx, playlistID); err == nil {
		summary = digest.Summary
	}

	contextText := retrieval.FormatContext(sources)
	if contextText == "" {
		contextText = noContextFallback
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate, summary, contextText),
	})
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == model.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	return append(messages, llm.Message{Role: llm.RoleUser, Content: question})
}
