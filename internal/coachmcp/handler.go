package coachmcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/nutrition"
	"github.com/2beens/gymdesk/internal/workoutplans"
	"github.com/2beens/gymdesk/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type nutritionSummaries interface {
	GetNutritionSummary(ctx context.Context, memberID string, date *time.Time, rng string) (*nutrition.Summary, error)
}

type weeklySchedules interface {
	GetWeeklySchedule(ctx context.Context, memberID string) (workoutplans.WeeklySchedule, error)
}

// Handler turns MCP tool calls into service calls and formats the results as JSON text.
type Handler struct {
	nutrition nutritionSummaries
	schedules weeklySchedules
}

func NewHandler(nutrition nutritionSummaries, schedules weeklySchedules) *Handler {
	return &Handler{
		nutrition: nutrition,
		schedules: schedules,
	}
}

// NutritionSummaryInput is the input for get_nutrition_summary.
type NutritionSummaryInput struct {
	MemberID string `json:"member_id" jsonschema:"Id of the gym member"`
	Date     string `json:"date,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), used with range 24h"`
	Range    string `json:"range,omitempty" jsonschema:"One of 24h, 7d, 15d, 30d (default 24h)"`
}

func (h *Handler) NutritionSummaryTool() func(context.Context, *mcp.CallToolRequest, NutritionSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NutritionSummaryInput) (*mcp.CallToolResult, any, error) {
		memberID := strings.TrimSpace(in.MemberID)
		if memberID == "" {
			return errorResult("member_id is required"), nil, nil
		}
		date, err := pkg.ParseDate(in.Date)
		if err != nil {
			return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		summary, err := h.nutrition.GetNutritionSummary(ctx, memberID, date, in.Range)
		if err != nil {
			return errorResult("Error fetching nutrition summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

// WeeklyScheduleInput is the input for get_weekly_schedule.
type WeeklyScheduleInput struct {
	MemberID string `json:"member_id" jsonschema:"Id of the gym member"`
}

func (h *Handler) WeeklyScheduleTool() func(context.Context, *mcp.CallToolRequest, WeeklyScheduleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeeklyScheduleInput) (*mcp.CallToolResult, any, error) {
		memberID := strings.TrimSpace(in.MemberID)
		if memberID == "" {
			return errorResult("member_id is required"), nil, nil
		}

		schedule, err := h.schedules.GetWeeklySchedule(ctx, memberID)
		if err != nil {
			return errorResult("Error fetching weekly schedule: " + err.Error()), nil, nil
		}
		return jsonResult(schedule), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
