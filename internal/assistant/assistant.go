// Package assistant drives the tool-augmented dialogue loop: it renders
// the fan context into a system prompt, replays the stored conversation,
// lets the model call the grounded lookup tools and records the reply.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fanmateapp/fanmate/internal/fancontext"
	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// maxToolRounds bounds the tool loop; a model that keeps requesting tools
// past this is cut off with an error rather than looping forever.
const maxToolRounds = 5

// Assistant answers one fan's chat messages against the domain store.
type Assistant struct {
	store     *worldcup.Store
	agg       *fancontext.Aggregator
	completer Completer
	history   History
	logger    *slog.Logger
}

func New(store *worldcup.Store, agg *fancontext.Aggregator, completer Completer, history History, logger *slog.Logger) *Assistant {
	return &Assistant{
		store:     store,
		agg:       agg,
		completer: completer,
		history:   history,
		logger:    logger,
	}
}

// History exposes the transcript store for the chat-history handlers.
func (a *Assistant) History() History { return a.history }

// Welcome records and returns the canned greeting for a user.
func (a *Assistant) Welcome(ctx context.Context, userID int) (string, error) {
	if err := a.history.Append(ctx, userID, Message{Role: RoleAssistant, Content: WelcomeMessage}); err != nil {
		return "", err
	}
	return WelcomeMessage, nil
}

// Chat answers one message. The fan context is rebuilt from scratch every
// turn — the simulated date may have changed since the previous one.
func (a *Assistant) Chat(ctx context.Context, fan worldcup.Fan, message string) (string, error) {
	fc, err := a.agg.BuildContext(fan, a.store.Date())
	if err != nil {
		return "", fmt.Errorf("building fan context: %w", err)
	}

	if err := a.history.Append(ctx, fan.ID, Message{Role: RoleUser, Content: message}); err != nil {
		return "", err
	}
	transcript, err := a.history.Messages(ctx, fan.ID)
	if err != nil {
		return "", err
	}

	msgs := make([]ChatMessage, 0, len(transcript)+1)
	msgs = append(msgs, ChatMessage{Role: RoleSystem, Content: renderPrompt(fc.Vars())})
	for _, m := range transcript {
		msgs = append(msgs, ChatMessage{Role: m.Role, Content: m.Content})
	}

	tools := toolDefs()
	for round := 0; round < maxToolRounds; round++ {
		turn, err := a.completer.Complete(ctx, msgs, tools)
		if err != nil {
			return "", err
		}

		if len(turn.ToolCalls) == 0 {
			if err := a.history.Append(ctx, fan.ID, Message{Role: RoleAssistant, Content: turn.Content}); err != nil {
				return "", err
			}
			return turn.Content, nil
		}

		msgs = append(msgs, ChatMessage{
			Role:      RoleAssistant,
			Content:   turn.Content,
			ToolCalls: turn.ToolCalls,
		})
		for _, call := range turn.ToolCalls {
			result := a.executeTool(call)
			a.logger.Info("tool call", "tool", call.Name, "user_id", fan.ID)
			msgs = append(msgs, ChatMessage{
				Role:       RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("model requested tools for %d rounds without answering", maxToolRounds)
}

// executeTool runs one lookup tool. Failures become text results handed
// back to the model rather than request errors.
func (a *Assistant) executeTool(call ToolCall) string {
	var args struct {
		City          string `json:"city"`
		SimulatedDate string `json:"simulated_date"`
	}
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return fmt.Sprintf("error: invalid tool arguments: %v", err)
	}

	var result any
	switch call.Name {
	case "get_restaurants_by_city":
		result = a.store.RestaurantsByCity(args.City)
	case "get_attractions_by_city":
		result = a.store.AttractionsByCity(args.City)
	case "get_games_within_this_week":
		date := args.SimulatedDate
		if date == "" {
			date = a.store.Date()
		}
		games, err := a.store.GamesWithinWeek(date)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		result = games
	default:
		return fmt.Sprintf("error: unknown tool %q", call.Name)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("error: encoding tool result: %v", err)
	}
	return string(data)
}

func toolDefs() []ToolDef {
	return []ToolDef{
		{
			Name:        "get_restaurants_by_city",
			Description: "Get restaurants in a host city. Use for restaurant recommendations.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"city": {"type": "string", "description": "Host city name, e.g. Riyadh, Jeddah, Dammam, NEOM"}
				},
				"required": ["city"]
			}`),
		},
		{
			Name:        "get_attractions_by_city",
			Description: "Get tourist attractions in a host city. Use for activity recommendations.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"city": {"type": "string", "description": "Host city name, e.g. Riyadh, Jeddah, Dammam, NEOM"}
				},
				"required": ["city"]
			}`),
		},
		{
			Name:        "get_games_within_this_week",
			Description: "Get all games within a week before and after the simulated date.",
			Parameters: json.RawMessage(`{
				"type": "object",
				"properties": {
					"simulated_date": {"type": "string", "description": "Date in YYYY-MM-DD format; defaults to the current simulated date"}
				}
			}`),
		},
	}
}
