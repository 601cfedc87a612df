package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/doclens/doclens/service"
)

//go:embed tools/search.md
var descSearch string

//go:embed tools/extract.md
var descExtract string

func registerTools(registry *protoserver.Registry, h *Handler) error {
	if err := protoserver.RegisterTool[*SearchInput, *SearchOutput](registry, "search", descSearch, func(ctx context.Context, in *SearchInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.search(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*ExtractInput, *ExtractOutput](registry, "extract", descExtract, func(ctx context.Context, in *ExtractInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.extract(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	return nil
}

func buildErrorResult(message string) (*schema.CallToolResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.InvalidParams, message, nil)
}

func buildSuccessResult(payload any) (*schema.CallToolResult, *jsonrpc.Error) {
	b, _ := json.Marshal(payload)
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			schema.TextContent{Type: "text", Text: string(b)},
		},
		StructuredContent: map[string]any{"result": payload},
	}, nil
}

func (h *Handler) search(ctx context.Context, in *SearchInput) (*SearchOutput, error) {
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &SearchInput{}
	}
	if in.Folder == "" {
		return nil, fmt.Errorf("mcp: missing folder")
	}
	if in.Query == "" {
		return nil, fmt.Errorf("mcp: missing query")
	}
	response, err := h.service.Search(ctx, service.SearchRequest{
		Folder:    in.Folder,
		Query:     in.Query,
		BatchSize: in.BatchSize,
		MaxDocs:   in.MaxDocs,
		Threshold: in.Threshold,
	})
	if err != nil {
		return nil, err
	}
	out := &SearchOutput{
		Results: response.Results,
		Stats:   response.Stats,
		Prompts: response.Prompts,
	}
	if in.Report {
		out.Report = service.BuildReport(in.Query, in.Folder, response)
	}
	return out, nil
}

func (h *Handler) extract(ctx context.Context, in *ExtractInput) (*ExtractOutput, error) {
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil || in.Location == "" {
		return nil, fmt.Errorf("mcp: missing location")
	}
	response, err := h.service.Extract(ctx, service.ExtractRequest{Location: in.Location})
	if err != nil {
		return nil, err
	}
	return &ExtractOutput{Location: response.Location, Content: response.Content, Chars: response.Chars}, nil
}
