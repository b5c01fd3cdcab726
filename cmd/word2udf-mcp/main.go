// Command word2udf-mcp exposes the DOCX to UDF converter as an MCP tool
// over stdio, so AI assistants can convert documents on behalf of a user.
package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	wordtoudf "github.com/omertekin2002/word-to-udf"
)

// Server identity constants.
const (
	serverName    = "word2udf"
	serverVersion = "1.0.0"
)

// MCP tool parameter key constants, shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argInput  = "input"
	argOutput = "output"
)

func main() {
	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}

// registerTools binds MCP tool definitions to their handlers.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("convert_word_to_udf",
			mcp.WithDescription("Convert a DOCX file to a UDF document. "+
				"Pass an absolute input path; when an output path is given the UDF file "+
				"is written there and the path is returned, otherwise the UDF container "+
				"is returned base64-encoded."),
			mcp.WithString(argInput,
				mcp.Required(),
				mcp.Description("Absolute path of the DOCX file to convert"),
			),
			mcp.WithString(argOutput,
				mcp.Description("Absolute path to write the UDF file to (optional)"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			input, ok := req.Params.Arguments[argInput].(string)
			if !ok || input == "" {
				return mcp.NewToolResultError(argInput + " is required"), nil
			}
			output, _ := req.Params.Arguments[argOutput].(string)

			data, err := wordtoudf.Open(input).Convert()
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText("wrote " + output), nil
			}
			return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(data)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("get_converter_info",
			mcp.WithDescription("Return the converter's supported input format and output format details."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			info := strings.Join([]string{
				"input: DOCX (Office Open XML word-processing packages)",
				"output: UDF 1.8 (offset-addressed XML in a zip container)",
				"unsupported: OLE objects, tracked changes, comments, headers/footers, nested tables",
			}, "\n")
			return mcp.NewToolResultText(info), nil
		},
	)
}
