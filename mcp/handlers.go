package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sentlab/sented/domain"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil)
	}
	return &HandlerSet{deps: deps}
}

// HandleTreeDistance handles the tree_distance tool
func (h *HandlerSet) HandleTreeDistance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	tree1, ok := args["tree1"].(string)
	if !ok {
		return mcp.NewToolResultError("tree1 parameter is required and must be a string"), nil
	}
	tree2, ok := args["tree2"].(string)
	if !ok {
		return mcp.NewToolResultError("tree2 parameter is required and must be a string"), nil
	}

	depth, errResult := h.parseDepthArg(args)
	if errResult != nil {
		return errResult, nil
	}

	req := &domain.DistanceRequest{
		Tree1:       tree1,
		Tree2:       tree2,
		Depth:       depth,
		CostModel:   h.deps.Config().Analysis.CostModel,
		CostWeights: h.deps.Config().CostWeights(),
	}

	response, err := h.deps.DistanceService().Distance(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("distance computation failed: %v", err)), nil
	}

	payload, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// HandleTreeSkeleton handles the tree_skeleton tool
func (h *HandlerSet) HandleTreeSkeleton(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	tree, ok := args["tree"].(string)
	if !ok {
		return mcp.NewToolResultError("tree parameter is required and must be a string"), nil
	}

	depth, errResult := h.parseDepthArg(args)
	if errResult != nil {
		return errResult, nil
	}

	skeleton, err := h.deps.DistanceService().Skeleton(tree, depth)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("canonicalization failed: %v", err)), nil
	}
	return mcp.NewToolResultText(skeleton), nil
}

// parseDepthArg extracts the optional depth argument. JSON numbers
// arrive as float64; "full" and absence both mean unbounded depth.
func (h *HandlerSet) parseDepthArg(args map[string]interface{}) (domain.Depth, *mcp.CallToolResult) {
	raw, present := args["depth"]
	if !present {
		return domain.FullDepth(), nil
	}

	switch v := raw.(type) {
	case string:
		depth, err := domain.ParseDepth(v)
		if err != nil {
			return domain.Depth{}, mcp.NewToolResultError(err.Error())
		}
		return depth, nil
	case float64:
		if v != float64(int(v)) {
			return domain.Depth{}, mcp.NewToolResultError(fmt.Sprintf("depth must be an integer, got %v", v))
		}
		depth := domain.LimitedDepth(int(v))
		if err := depth.Validate(); err != nil {
			return domain.Depth{}, mcp.NewToolResultError(err.Error())
		}
		return depth, nil
	default:
		return domain.Depth{}, mcp.NewToolResultError("depth must be 'full' or a non-negative integer")
	}
}
