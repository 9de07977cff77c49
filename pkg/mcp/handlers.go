package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

// conversionResult is the JSON shape convert_epoch and convert_all return.
// Raw stays a string end to end; see convertRaw.
type conversionResult struct {
	Kind     string `json:"kind"`
	Raw      string `json:"raw"`
	DateTime string `json:"datetime"`
}

// kindInfo is the JSON shape list_kinds returns per registered kind.
type kindInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Reference   string `json:"reference"`
}

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the Epochs MCP server is alive."),
	)
	s.AddTool(pingTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("pong_epochs"), nil
	})
}

// RegisterConvertTool registers the convert_epoch tool.
func RegisterConvertTool(s *server.MCPServer, registry *epochs.Registry) {
	convertTool := mcp.NewTool("convert_epoch",
		mcp.WithDescription("Converts a raw epoch timestamp of the named kind into a calendar date-time."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Epoch kind name, e.g. 'unix', 'chrome', 'windows_file'. See list_kinds.")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Raw numeric value as a string. Hex (0x...) and fractional forms are accepted where the kind allows them.")),
	)
	s.AddTool(convertTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, nameOk := request.Params.Arguments["kind"].(string)
		value, valueOk := request.Params.Arguments["value"].(string)
		if !nameOk || name == "" {
			return mcp.NewToolResultError("'kind' parameter is required and must be a non-empty string."), nil
		}
		if !valueOk || value == "" {
			return mcp.NewToolResultError("'value' parameter is required and must be a non-empty string."), nil
		}

		kind, err := registry.Lookup(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown epoch kind '%s'. Use list_kinds to see what is available.", name)), nil
		}

		converted, err := convertRaw(kind, value)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to convert '%s' as %s: %v", value, name, err)), nil
		}

		jsonResult, err := json.Marshal(conversionResult{
			Kind:     kind.Name,
			Raw:      value,
			DateTime: formatDateTime(converted),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}

// RegisterConvertAllTool registers the convert_all tool, which tries a raw
// value under every registered kind. Kinds the value does not fit are
// silently skipped.
func RegisterConvertAllTool(s *server.MCPServer, registry *epochs.Registry) {
	convertAllTool := mcp.NewTool("convert_all",
		mcp.WithDescription("Converts a raw timestamp under every registered epoch kind, for when the provenance is unknown."),
		mcp.WithString("value", mcp.Required(), mcp.Description("Raw numeric value as a string.")),
	)
	s.AddTool(convertAllTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, valueOk := request.Params.Arguments["value"].(string)
		if !valueOk || value == "" {
			return mcp.NewToolResultError("'value' parameter is required and must be a non-empty string."), nil
		}

		results := []conversionResult{}
		for _, kind := range registry.Kinds() {
			converted, err := convertRaw(kind, value)
			if err != nil {
				continue
			}
			results = append(results, conversionResult{
				Kind:     kind.Name,
				Raw:      value,
				DateTime: formatDateTime(converted),
			})
		}

		jsonResult, err := json.Marshal(results)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize results to JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}

// RegisterToEpochTool registers the to_epoch tool, the inverse direction.
func RegisterToEpochTool(s *server.MCPServer, registry *epochs.Registry) {
	toEpochTool := mcp.NewTool("to_epoch",
		mcp.WithDescription("Converts a calendar date-time into the raw value of the named epoch kind."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Epoch kind name. See list_kinds.")),
		mcp.WithString("datetime", mcp.Required(), mcp.Description("Naive date-time, YYYY-MM-DDTHH:MM:SS[.ffffff] (space separator also accepted).")),
	)
	s.AddTool(toEpochTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, nameOk := request.Params.Arguments["kind"].(string)
		value, valueOk := request.Params.Arguments["datetime"].(string)
		if !nameOk || name == "" {
			return mcp.NewToolResultError("'kind' parameter is required and must be a non-empty string."), nil
		}
		if !valueOk || value == "" {
			return mcp.NewToolResultError("'datetime' parameter is required and must be a non-empty string."), nil
		}

		kind, err := registry.Lookup(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown epoch kind '%s'. Use list_kinds to see what is available.", name)), nil
		}

		t, err := parseDateTime(value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var raw string
		switch {
		case kind.Inverse != nil:
			raw = strconv.FormatInt(kind.Inverse(t), 10)
		case kind.InverseFloat != nil:
			raw = strconv.FormatFloat(kind.InverseFloat(t), 'f', -1, 64)
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Epoch kind '%s' has no inverse.", name)), nil
		}

		jsonResult, err := json.Marshal(conversionResult{
			Kind:     kind.Name,
			Raw:      raw,
			DateTime: formatDateTime(t),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}

// RegisterListKindsTool registers the list_kinds tool.
func RegisterListKindsTool(s *server.MCPServer, registry *epochs.Registry) {
	listKindsTool := mcp.NewTool("list_kinds",
		mcp.WithDescription("Lists all registered epoch kinds with their reference instants."),
	)
	s.AddTool(listKindsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kinds := registry.Kinds()
		infos := make([]kindInfo, 0, len(kinds))
		for _, kind := range kinds {
			infos = append(infos, kindInfo{
				Name:        kind.Name,
				Description: kind.Description,
				Reference:   formatDateTime(kind.Reference),
			})
		}

		jsonResult, err := json.Marshal(infos)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize kinds to JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}

// RegisterUUIDTimeTool registers the uuid_time tool.
func RegisterUUIDTimeTool(s *server.MCPServer) {
	uuidTimeTool := mcp.NewTool("uuid_time",
		mcp.WithDescription("Extracts the embedded timestamp from a version 1 UUID."),
		mcp.WithString("uuid", mcp.Required(), mcp.Description("UUID in the usual 8-4-4-4-12 form.")),
	)
	s.AddTool(uuidTimeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		value, valueOk := request.Params.Arguments["uuid"].(string)
		if !valueOk || value == "" {
			return mcp.NewToolResultError("'uuid' parameter is required and must be a non-empty string."), nil
		}

		u, err := uuid.Parse(value)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid UUID '%s': %v", value, err)), nil
		}

		t, err := epochs.UUIDTime(u)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("No timestamp in '%s': %v", value, err)), nil
		}

		jsonResult, err := json.Marshal(struct {
			UUID     string `json:"uuid"`
			DateTime string `json:"datetime"`
		}{UUID: u.String(), DateTime: formatDateTime(t)})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}
