package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools"
	"github.com/theapemachine/mcp-server-multitool/pkg/tools/utils"
)

// SearchConfig overrides the defaults of a single process_search_query call.
type SearchConfig struct {
	CompletionModel string `json:"completion_model,omitempty" jsonschema_description:"Chat model used to write the answer"`
	BucketID        int    `json:"bucket_id,omitempty" jsonschema_description:"GroundX bucket to search"`
}

// SearchResponse is the structured answer of process_search_query.
type SearchResponse struct {
	Query  string  `json:"query"`
	Score  float64 `json:"score"`
	Result string  `json:"result"`
}

// GenerateSchema reflects T into a JSON schema object usable as a tool
// input property.
func GenerateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var v T
	raw, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		panic(fmt.Sprintf("reflect schema: %v", err))
	}

	schema := map[string]any{}
	if err := json.Unmarshal(raw, &schema); err != nil {
		panic(fmt.Sprintf("decode schema: %v", err))
	}

	delete(schema, "$schema")
	delete(schema, "$id")

	return schema
}

// SearchQueryTool answers a question from the knowledge base: it retrieves
// context from GroundX and has the language model answer with it.
type SearchQueryTool struct {
	*tools.BaseTool
	searcher  Searcher
	completer Completer
	defaults  SearchConfig
	schema    mcp.ToolInputSchema
}

// NewSearchQueryTool creates the process_search_query tool.
func NewSearchQueryTool(searcher Searcher, completer Completer, defaults SearchConfig) *SearchQueryTool {
	handle := mcp.NewTool(
		"process_search_query",
		mcp.WithDescription("Answer a question using documents in the knowledge base. Returns the query, the retrieval score and the answer."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("The search query"),
		),
	)

	config := GenerateSchema[SearchConfig]()
	config["description"] = "Optional overrides for the completion model and bucket"
	handle.InputSchema.Properties["config"] = config

	properties, _ := config["properties"].(map[string]any)

	return &SearchQueryTool{
		BaseTool:  tools.NewBaseTool(handle),
		searcher:  searcher,
		completer: completer,
		defaults:  defaults,
		schema:    mcp.ToolInputSchema{Type: "object", Properties: properties},
	}
}

// resolveConfig merges the optional config argument over the defaults.
func (tool *SearchQueryTool) resolveConfig(raw map[string]any) (SearchConfig, error) {
	cfg := tool.defaults

	if raw != nil {
		if err := tools.ValidateArguments(tool.schema, raw); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}

		var override SearchConfig

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:     "json",
			ErrorUnused: true,
			Result:      &override,
		})
		if err != nil {
			return cfg, err
		}

		if err := decoder.Decode(raw); err != nil {
			return cfg, tools.InvalidArgument("config: %v", err)
		}

		if override.CompletionModel != "" {
			cfg.CompletionModel = override.CompletionModel
		}

		if override.BucketID != 0 {
			cfg.BucketID = override.BucketID
		}
	}

	if cfg.BucketID <= 0 {
		return cfg, tools.InvalidArgument("no GroundX bucket configured; set BUCKET_ID or config.bucket_id")
	}

	return cfg, nil
}

// Handler processes process_search_query requests
func (tool *SearchQueryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := utils.GetRequiredStringParam(request, "query")
	if err != nil {
		return nil, err
	}

	raw, err := utils.GetOptionalMapParam(request, "config")
	if err != nil {
		return nil, err
	}

	cfg, err := tool.resolveConfig(raw)
	if err != nil {
		return nil, err
	}

	// n=0 leaves the result count to GroundX.
	search, err := tool.searcher.Search(ctx, cfg.BucketID, query, 0)
	if err != nil {
		return nil, err
	}

	answer, err := tool.completer.Complete(ctx, cfg.CompletionModel, systemPrompt(search.Text), query)
	if err != nil {
		return nil, err
	}

	out, err := json.Marshal(SearchResponse{
		Query:  query,
		Score:  search.Score,
		Result: answer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search response: %w", err)
	}

	return tools.NewTextResult(string(out)), nil
}
