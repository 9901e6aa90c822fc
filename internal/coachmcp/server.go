package coachmcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the coach MCP server with read-only member tools: nutrition summary
// and weekly workout schedule. Served over stdio by cmd/coach_mcp and mounted
// on the backend at /mcp.
func NewServer(nutrition nutritionSummaries, schedules weeklySchedules) *mcp.Server {
	h := NewHandler(nutrition, schedules)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymdesk-coach",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_summary",
		Description: "Returns a member's meals and macro totals (calories, protein, carbohydrates, fats) for a day or the daily average over the last 7, 15 or 30 days. Args: member_id; optional: date (YYYY-MM-DD), range (24h, 7d, 15d, 30d).",
	}, h.NutritionSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_schedule",
		Description: "Returns a member's workout plan for each day of the week, keyed 0 (Sunday) to 6 (Saturday), null for rest days. Each plan lists its exercises in order. Arg: member_id.",
	}, h.WeeklyScheduleTool())

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
