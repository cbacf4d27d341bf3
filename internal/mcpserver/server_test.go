package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ironclad-sec/netbaseline/internal/answers"
	"github.com/ironclad-sec/netbaseline/internal/catalog"
	"github.com/ironclad-sec/netbaseline/internal/remedy"
	"github.com/ironclad-sec/netbaseline/internal/scoring"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return cat
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestNewMCPServer(t *testing.T) {
	if s := NewMCPServer(testCatalog(t)); s == nil {
		t.Fatal("NewMCPServer returned nil")
	}
}

func TestRunAssessmentHandler(t *testing.T) {
	handler := runAssessmentHandler()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"answers": `{"C1_WAN_ADMIN_EXPOSURE": "YES", "F2_CONFIG_BACKUPS": "NONE"}`,
	}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned error result: %s", resultText(t, result))
	}

	var res struct {
		Breakdown scoring.Breakdown `json:"breakdown"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &res); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if res.Breakdown.Grade != "F" {
		t.Errorf("Grade = %q, want F", res.Breakdown.Grade)
	}
	if res.Breakdown.CapApplied != 40 {
		t.Errorf("CapApplied = %d, want 40", res.Breakdown.CapApplied)
	}
}

func TestRunAssessmentHandlerInvalidInput(t *testing.T) {
	handler := runAssessmentHandler()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing answers", map[string]interface{}{}},
		{"not JSON", map[string]interface{}{"answers": "not json"}},
		{"wrong value types", map[string]interface{}{"answers": `{"C1_WAN_ADMIN_EXPOSURE": 5}`}},
		{"oversized payload", map[string]interface{}{"answers": `{"x": "` + strings.Repeat("a", maxAnswersLength) + `"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = tt.args

			result, err := handler(context.Background(), req)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !result.IsError {
				t.Error("expected an error result")
			}
		})
	}
}

func TestListQuestionsHandler(t *testing.T) {
	handler := listQuestionsHandler(testCatalog(t))

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned error result: %s", resultText(t, result))
	}

	var res struct {
		Sections []catalog.Section `json:"sections"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &res); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(res.Sections) == 0 {
		t.Error("no sections in result")
	}
}

func TestGetQuestionHandler(t *testing.T) {
	handler := getQuestionHandler(testCatalog(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"question_id": answers.QVLANSeparation,
	}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned error result: %s", resultText(t, result))
	}

	var q catalog.Question
	if err := json.Unmarshal([]byte(resultText(t, result)), &q); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if q.ID != answers.QVLANSeparation {
		t.Errorf("question ID = %q, want %q", q.ID, answers.QVLANSeparation)
	}
	if len(q.Options) < 2 {
		t.Errorf("question has %d options", len(q.Options))
	}
}

func TestGetQuestionHandlerRejectsBadIDs(t *testing.T) {
	handler := getQuestionHandler(testCatalog(t))

	for _, qid := range []string{
		"NO_SUCH_QUESTION",
		"lowercase_id",
		"../../etc/passwd",
		strings.Repeat("A", maxInputLength+1),
	} {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]interface{}{"question_id": qid}

		result, err := handler(context.Background(), req)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !result.IsError {
			t.Errorf("expected error result for %q", qid)
		}
	}
}

func TestListControlsHandler(t *testing.T) {
	handler := listControlsHandler()

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned error result: %s", resultText(t, result))
	}

	var res struct {
		Count    int `json:"count"`
		Controls []struct {
			ControlID string `json:"control_id"`
			Severity  string `json:"severity"`
		} `json:"controls"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &res); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if res.Count != len(remedy.Library()) {
		t.Errorf("count = %d, want %d", res.Count, len(remedy.Library()))
	}
}

func TestGetFixBlockHandler(t *testing.T) {
	handler := getFixBlockHandler()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"control_id": scoring.CtrlNoBackups,
	}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("handler returned error result: %s", resultText(t, result))
	}

	var b remedy.FixBlock
	if err := json.Unmarshal([]byte(resultText(t, result)), &b); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if b.ControlID != scoring.CtrlNoBackups {
		t.Errorf("control ID = %q, want %q", b.ControlID, scoring.CtrlNoBackups)
	}
	if b.PolicyIntent == "" {
		t.Error("fix block missing policy intent")
	}
}

func TestGetFixBlockHandlerUnknownControl(t *testing.T) {
	handler := getFixBlockHandler()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{"control_id": "CTRL_DOES_NOT_EXIST"}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for unknown control")
	}
}
