package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Index   int  `json:"index" jsonschema:"zero-based index of the selected document"`
	Top     *int `json:"top,omitempty" jsonschema:"number of highly similar documents"`
	Medium  *int `json:"medium,omitempty" jsonschema:"number of medium similarity documents"`
	Diverse *int `json:"diverse,omitempty" jsonschema:"number of similar documents of another type"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	RequestID  string       `json:"request_id"`
	Selected   int          `json:"selected"`
	SelectedID string       `json:"selected_id"`
	Top        []int        `json:"top"`
	Medium     []int        `json:"medium"`
	Diverse    []int        `json:"diverse"`
	Items      []ItemOutput `json:"items"`
	Count      int          `json:"count"`
}

// ItemOutput is one recommended document.
type ItemOutput struct {
	Index   int     `json:"index"`
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Band    string  `json:"band"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	Index int `json:"index" jsonschema:"zero-based index of the document"`
}

// DocumentOutput is the output schema for the get_document tool.
type DocumentOutput struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Type     string `json:"type"`
	FileSize string `json:"file_size,omitempty"`
	FilePath string `json:"file_path,omitempty"`
	Text     string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend highly similar, medium similarity and diverse documents for a document index",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document",
		Description: "Get the metadata and full text of a document by index",
	}, s.handleGetDocument)
}

// handleRecommend handles the recommend tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	opts := s.ports.Recommend.DefaultOptions()
	if input.Top != nil {
		opts.TopN = *input.Top
	}
	if input.Medium != nil {
		opts.MediumN = *input.Medium
	}
	if input.Diverse != nil {
		opts.DiverseN = *input.Diverse
	}

	set, err := s.ports.Recommend.Recommend(ctx, input.Index, opts)
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	output := RecommendOutput{
		RequestID:  set.RequestID,
		Selected:   set.Selected,
		SelectedID: set.SelectedID,
		Top:        set.Top,
		Medium:     set.Medium,
		Diverse:    set.Diverse,
		Items:      make([]ItemOutput, len(set.Items)),
		Count:      len(set.Items),
	}
	for i, item := range set.Items {
		output.Items[i] = ItemOutput{
			Index:   item.Index,
			ID:      item.ID,
			Type:    item.Type,
			Band:    item.Band.String(),
			Score:   item.Score,
			Snippet: item.Snippet,
		}
	}

	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	doc, err := s.ports.Corpus.Document(ctx, input.Index)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, documentOutput(input.Index, doc), nil
}

func documentOutput(index int, doc *domain.Document) DocumentOutput {
	return DocumentOutput{
		Index:    index,
		ID:       doc.ID,
		Type:     doc.Type,
		FileSize: doc.FileSize,
		FilePath: doc.FilePath,
		Text:     doc.Text,
	}
}
