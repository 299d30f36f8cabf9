// Package mcptools exposes the grounded lookup tools over MCP, so
// external model clients can answer from the same data the built-in
// assistant uses. Each tool is a Definition/Handle pair on a small struct.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewServer creates the MCP server with the three lookup tools registered.
func NewServer(store *worldcup.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"fanmate",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	restaurants := &RestaurantsTool{store: store}
	s.AddTool(restaurants.Definition(), restaurants.Handle)

	attractions := &AttractionsTool{store: store}
	s.AddTool(attractions.Definition(), attractions.Handle)

	week := &WeekGamesTool{store: store}
	s.AddTool(week.Definition(), week.Handle)

	return s
}

// Handler wraps the MCP server in its streamable-HTTP transport for
// mounting on the main router.
func Handler(store *worldcup.Store) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(NewServer(store))
}

// RestaurantsTool handles the get_restaurants_by_city MCP tool.
type RestaurantsTool struct {
	store *worldcup.Store
}

func (t *RestaurantsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_restaurants_by_city",
		mcp.WithDescription(
			"Get restaurants in a World Cup 2034 host city. "+
				"The match is case-insensitive and exact on the city name.",
		),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("Host city name, e.g. Riyadh, Jeddah, Dammam, NEOM"),
		),
	)
}

func (t *RestaurantsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := req.GetString("city", "")
	if city == "" {
		return mcp.NewToolResultError("'city' is required"), nil
	}
	return jsonResult(t.store.RestaurantsByCity(city))
}

// AttractionsTool handles the get_attractions_by_city MCP tool.
type AttractionsTool struct {
	store *worldcup.Store
}

func (t *AttractionsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_attractions_by_city",
		mcp.WithDescription(
			"Get tourist attractions in a World Cup 2034 host city. "+
				"The match is case-insensitive and exact on the city name.",
		),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("Host city name, e.g. Riyadh, Jeddah, Dammam, NEOM"),
		),
	)
}

func (t *AttractionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := req.GetString("city", "")
	if city == "" {
		return mcp.NewToolResultError("'city' is required"), nil
	}
	return jsonResult(t.store.AttractionsByCity(city))
}

// WeekGamesTool handles the get_games_within_this_week MCP tool.
type WeekGamesTool struct {
	store *worldcup.Store
}

func (t *WeekGamesTool) Definition() mcp.Tool {
	return mcp.NewTool("get_games_within_this_week",
		mcp.WithDescription(
			"Get all games within a week before and after the simulated date. "+
				"Games are the redaction-applied view: undecided knockout matchups "+
				"show TBD and unplayed games carry no result.",
		),
		mcp.WithString("simulated_date",
			mcp.Description("Date in YYYY-MM-DD format (defaults to the current simulated date)"),
		),
	)
}

func (t *WeekGamesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("simulated_date", "")
	if date == "" {
		date = t.store.Date()
	}

	games, err := t.store.GamesWithinWeek(date)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(games)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
