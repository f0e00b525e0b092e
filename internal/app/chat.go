package service

import (
	"context"
	"strings"

	"github.com/okian/grandstand/internal/adapters/completion"
	"github.com/okian/grandstand/internal/domain/intent"
	"github.com/okian/grandstand/internal/domain/model"
	"github.com/okian/grandstand/internal/domain/rewards"
	"github.com/okian/grandstand/pkg/logger"
	"github.com/okian/grandstand/pkg/metrics"
)

// chatContextTurns is how many recent turns the completion backend sees.
const chatContextTurns = 5

// ChatReply is the assistant's answer to one message.
type ChatReply struct {
	Response   string `json:"response"`
	ToolUsed   string `json:"tool_used,omitempty"`
	ToolResult any    `json:"tool_result,omitempty"`
}

// ProcessMessage routes one chat message: tool-shaped messages invoke the
// matching tool, everything else gets a conversational answer. Both sides of
// the exchange are persisted.
func (s *Service) ProcessMessage(ctx context.Context, userID int64, message string) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, ErrEmptyMessage
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return ChatReply{}, err
	}
	history, err := s.store.ChatHistory(ctx, userID, historyLimit)
	if err != nil {
		s.logger.Warn(ctx, "chat history unavailable", logger.Error(err))
	}
	if _, err := s.store.SaveChatMessage(ctx, model.ChatMessage{
		UserID:  userID,
		Role:    model.RoleUser,
		Content: message,
	}); err != nil {
		return ChatReply{}, err
	}

	in := intent.Detect(message, user.FavoriteTeam)
	reply := s.dispatch(ctx, userID, in, message, user, history)

	if _, err := s.store.SaveChatMessage(ctx, model.ChatMessage{
		UserID:   userID,
		Role:     model.RoleAssistant,
		Content:  reply.Response,
		ToolUsed: reply.ToolUsed,
	}); err != nil {
		return ChatReply{}, err
	}

	tool := reply.ToolUsed
	if tool == "" {
		tool = "chat"
	}
	metrics.RecordChatMessage(tool)
	return reply, nil
}

func (s *Service) dispatch(ctx context.Context, userID int64, in intent.Intent, message string, user model.User, history []model.ChatMessage) ChatReply {
	switch in.Tool {
	case intent.ToolQuiz:
		q := s.GenerateQuiz(ctx, in.Quiz.Team, in.Quiz.Difficulty, in.Quiz.NumQuestions)
		return ChatReply{
			Response:   formatQuiz(q),
			ToolUsed:   string(in.Tool),
			ToolResult: q,
		}

	case intent.ToolPrediction:
		resp, err := s.Predict(ctx, in.Prediction.Team1, in.Prediction.Team2, in.Prediction.MatchType)
		if err != nil {
			return ChatReply{Response: "Sorry, I encountered an issue: " + err.Error(), ToolUsed: string(in.Tool)}
		}
		return ChatReply{
			Response:   formatPrediction(resp),
			ToolUsed:   string(in.Tool),
			ToolResult: resp,
		}

	case intent.ToolRewards:
		out := s.ledger.Apply(ctx, in.RewardAction, userID, s.rewardParams(in.RewardAction))
		if !out.Success {
			return ChatReply{Response: "Sorry, I encountered an issue: " + out.Error, ToolUsed: string(in.Tool)}
		}
		return ChatReply{
			Response:   formatRewardOutcome(out),
			ToolUsed:   string(in.Tool),
			ToolResult: out,
		}

	default:
		return ChatReply{Response: s.chatResponse(ctx, message, user, history)}
	}
}

func (s *Service) rewardParams(action rewards.Action) rewards.Params {
	if action == rewards.ActionGetLeaderboard {
		return rewards.Params{Limit: historyLimit}
	}
	return rewards.Params{}
}

// chatResponse answers a general message, through the completion backend
// when possible and canned responses otherwise.
func (s *Service) chatResponse(ctx context.Context, message string, user model.User, history []model.ChatMessage) string {
	if !s.completer.Enabled() {
		return fallbackChat(message, user)
	}

	msgs := make([]completion.Message, 0, chatContextTurns+1)
	start := len(history) - chatContextTurns
	if start < 0 {
		start = 0
	}
	for _, turn := range history[start:] {
		msgs = append(msgs, completion.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, completion.Message{Role: model.RoleUser, Content: message})

	content, err := s.completer.Complete(ctx, completion.Request{
		System:      completion.ChatSystemPrompt(user.Username, user.FavoriteTeam, user.Points),
		Messages:    msgs,
		Temperature: completion.ChatTemperature,
		MaxTokens:   completion.ChatMaxTokens,
	})
	if err != nil {
		metrics.RecordCompletionFallback()
		s.logger.Warn(ctx, "chat fell back to canned responses", logger.Error(err))
		return fallbackChat(message, user)
	}
	return content
}

// fallbackChat keeps the assistant useful without a completion backend.
func fallbackChat(message string, user model.User) string {
	lower := strings.ToLower(message)

	for _, g := range []string{"hi", "hello", "hey", "greetings"} {
		if strings.Contains(lower, g) {
			name := user.Username
			if name == "" {
				name = "fan"
			}
			return "Hey " + name + "! Welcome to the fan engagement hub! I can help you with:\n\n" +
				"- **Sports Quizzes**: Say 'quiz me about [team]'\n" +
				"- **Match Predictions**: Say 'predict [team1] vs [team2]'\n" +
				"- **Your Stats**: Say 'show my stats' or 'leaderboard'\n\n" +
				"What would you like to do?"
		}
	}

	for _, h := range []string{"help", "what can you do", "features", "options"} {
		if strings.Contains(lower, h) {
			return `Here's what I can help you with:

**Quiz Mode**: Test your knowledge about any sports team!
  - Try: "Quiz me about the Lakers"
  - Try: "Give me 5 hard questions about the Patriots"

**Predictions**: Get match predictions!
  - Try: "Predict Lakers vs Celtics"
  - Try: "Who will win Chiefs vs Cowboys"

**Rewards & Stats**: Track your progress!
  - Try: "Show my stats"
  - Try: "Leaderboard"
  - Try: "My badges"

What would you like to try?`
		}
	}

	return "I'm here to make sports more fun! You can:\n\n" +
		"1. Take a **quiz** - 'quiz me about [team]'\n" +
		"2. Get a **prediction** - 'predict [team1] vs [team2]'\n" +
		"3. Check your **stats** - 'show my stats'\n\n" +
		"What sounds good?"
}
