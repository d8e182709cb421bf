package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogMoodTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerClearNoteTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerSearchJournalTool(srv, svc)
	registerGetStatsTool(srv, svc)
	registerGetWeekTool(srv, svc)
	registerGetMonthTool(srv, svc)
}

// patchArgs are the optional entry fields shared by log_mood and
// update_entry.
type patchArgs struct {
	Rating     *int     `json:"rating"`
	Note       *string  `json:"note"`
	Energy     *int     `json:"energy"`
	Stress     *int     `json:"stress"`
	Emotions   []string `json:"emotions"`
	Activities []string `json:"activities"`
}

func (a patchArgs) options() PatchOptions {
	return PatchOptions{
		Rating:     a.Rating,
		Note:       a.Note,
		Energy:     a.Energy,
		Stress:     a.Stress,
		Emotions:   a.Emotions,
		Activities: a.Activities,
	}
}

func withPatchArgs(ratingRequired bool) []mcp.ToolOption {
	rating := []mcp.PropertyOption{
		mcp.Description("Mood rating: 1 angry, 2 sad, 3 afraid, 4 calm, 5 happy."),
		mcp.Min(1),
		mcp.Max(5),
	}
	if ratingRequired {
		rating = append(rating, mcp.Required())
	}
	return []mcp.ToolOption{
		mcp.WithNumber("rating", rating...),
		mcp.WithString("note",
			mcp.Description("Free text journal note. An empty string clears it."),
		),
		mcp.WithNumber("energy",
			mcp.Description("Energy level from 0 to 100."),
			mcp.Min(0),
			mcp.Max(100),
		),
		mcp.WithNumber("stress",
			mcp.Description("Stress level from 0 to 100."),
			mcp.Min(0),
			mcp.Max(100),
		),
		mcp.WithArray("emotions",
			mcp.Description("Emotion tags; replaces the stored list."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("activities",
			mcp.Description("Activity tags; replaces the stored list."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	}
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Record the mood for a day. A day holds one entry; logging again merges into it."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD, 'today' or 'yesterday'. Defaults to today."),
		),
	}
	tool := mcp.NewTool("log_mood", append(opts, withPatchArgs(true)...)...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Date string `json:"date"`
			patchArgs
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.LogMood(ctx, args.Date, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Change some fields of an existing entry. Fields that are not given are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to update."),
		),
	}
	tool := mcp.NewTool("update_entry", append(opts, withPatchArgs(false)...)...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID string `json:"id"`
			patchArgs
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateEntry(ctx, args.ID, args.options())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": true})
	})
}

func registerClearNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_note",
		mcp.WithDescription("Empty the note of an entry while keeping its mood."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier whose note should be cleared."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ClearNote(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List entries newest first, optionally between two days."),
		mcp.WithString("from",
			mcp.Description("Earliest day to include (YYYY-MM-DD)."),
		),
		mcp.WithString("to",
			mcp.Description("Latest day to include (YYYY-MM-DD)."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 31)."),
			mcp.Min(1),
			mcp.Max(366),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from := request.GetString("from", "")
		to := request.GetString("to", "")
		limit := request.GetInt("limit", 31)

		results, err := svc.ListEntries(ctx, from, to, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerSearchJournalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_journal",
		mcp.WithDescription("Search journal notes. Entries without a note are never returned."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text the note must contain."),
		),
		mcp.WithString("range",
			mcp.Description("Time window: 7d, 30d or all (default 30d)."),
			mcp.Enum("7d", "30d", "all"),
		),
		mcp.WithNumber("rating",
			mcp.Description("Only entries with this rating (1-5)."),
			mcp.Min(1),
			mcp.Max(5),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := request.GetString("query", "")
		window := request.GetString("range", "30d")
		rating := request.GetInt("rating", 0)

		results, err := svc.SearchJournal(ctx, window, query, rating)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"range":   window,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_stats",
		mcp.WithDescription("Streaks, monthly fill, rating distribution and recent entries."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.Stats(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(out)
	})
}

func registerGetWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_week",
		mcp.WithDescription("The current Monday-first week with the mood of each day."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.Week(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(out)
	})
}

func registerGetMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_month",
		mcp.WithDescription("A 42 day Monday-first calendar grid for a month with entries attached."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.Month(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(out)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
