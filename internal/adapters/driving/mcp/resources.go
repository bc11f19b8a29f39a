package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docrec resources.
	uriScheme = "docrec://"

	documentsURI = uriScheme + "documents"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         documentsURI,
		Name:        "documents",
		Description: "Index, identifier and type of every loaded document",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: documentsURI + "/{index}",
		Name:        "document-content",
		Description: "Full text of the document at an index",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// handleDocumentsResource returns the document table without texts.
func (s *Server) handleDocumentsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	corpus, err := s.ports.Corpus.Current()
	if errors.Is(err, domain.ErrCorpusNotLoaded) {
		return textResult(req.Params.URI, "application/json", "[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	type docInfo struct {
		Index int    `json:"index"`
		ID    string `json:"id"`
		Type  string `json:"type"`
		URI   string `json:"uri"`
	}

	infos := make([]docInfo, corpus.Size())
	for i := range corpus.Documents {
		infos[i] = docInfo{
			Index: i,
			ID:    corpus.Documents[i].ID,
			Type:  corpus.Documents[i].Type,
			URI:   documentURI(i),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}
	return textResult(req.Params.URI, "application/json", string(data)), nil
}

// handleDocumentContentResource returns the text of a document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	index, ok := extractDocumentIndex(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Corpus.Document(ctx, index)
	if errors.Is(err, domain.ErrOutOfRange) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return textResult(req.Params.URI, "text/plain", doc.Text), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

func documentURI(index int) string {
	return documentsURI + "/" + strconv.Itoa(index)
}

// extractDocumentIndex extracts the index from a URI like docrec://documents/{index}.
func extractDocumentIndex(uri string) (int, bool) {
	const prefix = documentsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
