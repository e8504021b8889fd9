package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all sented MCP tools with the server
func RegisterTools(s *server.MCPServer, handlers *HandlerSet) {
	// Tool 1: tree_distance - edit distance between two parse trees
	s.AddTool(mcp.NewTool("tree_distance",
		mcp.WithDescription("Compute the exact ordered-tree edit distance between two constituency parse trees in bracketed notation"),
		mcp.WithString("tree1",
			mcp.Required(),
			mcp.Description("First parse tree, e.g. (S (NP (DT the) (NN cat)) (VP (VBZ sat)))")),
		mcp.WithString("tree2",
			mcp.Required(),
			mcp.Description("Second parse tree in the same bracketed notation")),
		mcp.WithString("depth",
			mcp.Description("Comparison depth: 'full' (default) or a non-negative integer; subtrees past that depth collapse into single leaves")),
	), handlers.HandleTreeDistance)

	// Tool 2: tree_skeleton - canonical skeleton of one parse tree
	s.AddTool(mcp.NewTool("tree_skeleton",
		mcp.WithDescription("Return the canonical brace-delimited skeleton of a parse tree (category labels stripped, optional depth truncation)"),
		mcp.WithString("tree",
			mcp.Required(),
			mcp.Description("Parse tree in bracketed notation")),
		mcp.WithString("depth",
			mcp.Description("Truncation depth: 'full' (default) or a non-negative integer")),
	), handlers.HandleTreeSkeleton)
}
