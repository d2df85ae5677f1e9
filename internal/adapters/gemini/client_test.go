package gemini

import (
	"testing"

	"google.golang.org/genai"

	"github.com/resumeai/platform/internal/core/domain"
)

func TestConvertHistory(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "here is my resume"},
		{Role: domain.RoleModel, Content: "looks good"},
		{Role: domain.Role("unknown"), Content: "odd turn"},
	}

	contents := convertHistory(history)
	if len(contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser}
	wantTexts := []string{"here is my resume", "looks good", "odd turn"}
	for i, c := range contents {
		if genai.Role(c.Role) != wantRoles[i] {
			t.Errorf("content %d role = %q, want %q", i, c.Role, wantRoles[i])
		}
		if len(c.Parts) != 1 || c.Parts[0].Text != wantTexts[i] {
			t.Errorf("content %d text mismatch", i)
		}
	}
}

func TestConvertHistoryEmpty(t *testing.T) {
	if got := convertHistory(nil); len(got) != 0 {
		t.Errorf("expected no contents for empty history, got %d", len(got))
	}
}
