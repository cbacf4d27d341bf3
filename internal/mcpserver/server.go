// Package mcpserver implements the MCP server for AI-assisted baseline
// assessments: running the scoring engine, browsing the question catalog,
// and looking up remediation content.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/catalog"
	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/report"
)

const (
	// maxInputLength caps generic string input length for MCP parameters.
	maxInputLength = 256

	// maxAnswersLength caps the answers JSON payload. A full answer set is
	// a few hundred bytes.
	maxAnswersLength = 16 * 1024
)

// validIdentifier matches question, control, and gate identifiers.
var validIdentifier = regexp.MustCompile(`^[A-Z][A-Z0-9_]{0,80}$`)

// NewMCPServer creates an MCP server with all assessment tools registered.
func NewMCPServer(cat *catalog.Catalog) *server.MCPServer {
	s := server.NewMCPServer(
		"netbaseline",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registerTools(s, cat)
	registerResources(s, cat)

	return s
}

func registerTools(s *server.MCPServer, cat *catalog.Catalog) {
	// run_assessment: score an answer set and resolve remediation.
	s.AddTool(
		mcp.NewTool("run_assessment",
			mcp.WithDescription("Score a baseline assessment. Takes the answer set as a JSON object of question ID to option key; missing or NOT_SURE answers are treated as failing controls."),
			mcp.WithString("answers",
				mcp.Required(),
				mcp.Description(`JSON object mapping question IDs to option keys, e.g. {"C1_WAN_ADMIN_EXPOSURE":"NO"}`),
			),
		),
		runAssessmentHandler(),
	)

	// list_questions: the full catalog, section by section.
	s.AddTool(
		mcp.NewTool("list_questions",
			mcp.WithDescription("List all questionnaire sections and questions with their option keys and labels."),
		),
		listQuestionsHandler(cat),
	)

	// get_question: one question by ID.
	s.AddTool(
		mcp.NewTool("get_question",
			mcp.WithDescription("Get a single question by its ID, including its options."),
			mcp.WithString("question_id",
				mcp.Required(),
				mcp.Description("The question ID (e.g. D2_VLAN_SEPARATION)"),
			),
		),
		getQuestionHandler(cat),
	)

	// list_controls: the remediation library index.
	s.AddTool(
		mcp.NewTool("list_controls",
			mcp.WithDescription("List all control IDs in the remediation library with severity and title."),
		),
		listControlsHandler(),
	)

	// get_fix_block: full remediation content for one control.
	s.AddTool(
		mcp.NewTool("get_fix_block",
			mcp.WithDescription("Get the full remediation fix block for a control ID: finding, policy intent, rationale, and references."),
			mcp.WithString("control_id",
				mcp.Required(),
				mcp.Description("The control ID (e.g. CTRL_PERIMETER_WAN_ADMIN_EXPOSURE)"),
			),
		),
		getFixBlockHandler(),
	)
}

func registerResources(s *server.MCPServer, cat *catalog.Catalog) {
	s.AddResource(
		mcp.NewResource(
			"netbaseline://catalog",
			"Question Catalog",
			mcp.WithResourceDescription("The full assessment questionnaire"),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			catJSON, _ := json.MarshalIndent(cat, "", "  ")
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      "netbaseline://catalog",
					MIMEType: "application/json",
					Text:     string(catJSON),
				},
			}, nil
		},
	)

	s.AddResource(
		mcp.NewResource(
			"netbaseline://controls",
			"Remediation Library",
			mcp.WithResourceDescription("All fix blocks keyed by control ID"),
			mcp.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			libJSON, _ := json.MarshalIndent(remedy.Library(), "", "  ")
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      "netbaseline://controls",
					MIMEType: "application/json",
					Text:     string(libJSON),
				},
			}, nil
		},
	)
}

// --- Tool Handlers ---

func runAssessmentHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := req.RequireString("answers")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(raw) > maxAnswersLength {
			return mcp.NewToolResultError("answers payload exceeds maximum length"), nil
		}

		var set answers.Set
		if err := json.Unmarshal([]byte(raw), &set); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("answers must be a JSON object of strings: %v", err)), nil
		}

		res := report.NewResult(set)
		result, _ := json.MarshalIndent(res, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func listQuestionsHandler(cat *catalog.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, _ := json.MarshalIndent(map[string]interface{}{
			"sections": cat.Sections,
		}, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func getQuestionHandler(cat *catalog.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		qid, err := req.RequireString("question_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(qid) > maxInputLength || !validIdentifier.MatchString(qid) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid question ID %q", qid)), nil
		}

		q := cat.Find(qid)
		if q == nil {
			return mcp.NewToolResultError(fmt.Sprintf("question %q not found", qid)), nil
		}

		result, _ := json.MarshalIndent(q, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func listControlsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type controlSummary struct {
			ControlID string          `json:"control_id"`
			Severity  remedy.Severity `json:"severity"`
			Gate      string          `json:"gate,omitempty"`
			Title     string          `json:"title"`
		}

		library := remedy.Library()
		controls := make([]controlSummary, len(library))
		for i, b := range library {
			controls[i] = controlSummary{
				ControlID: b.ControlID,
				Severity:  b.Severity,
				Gate:      b.Gate,
				Title:     b.Title,
			}
		}

		result, _ := json.MarshalIndent(map[string]interface{}{
			"count":    len(controls),
			"controls": controls,
		}, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}

func getFixBlockHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cid, err := req.RequireString("control_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(cid) > maxInputLength || !validIdentifier.MatchString(cid) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid control ID %q", cid)), nil
		}

		b, ok := remedy.Lookup(cid)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("control %q not found", cid)), nil
		}

		result, _ := json.MarshalIndent(b, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}
}
