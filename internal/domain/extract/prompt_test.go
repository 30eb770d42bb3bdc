package extract

import (
	"strings"
	"testing"

	"github.com/kinnective/jobextractor/internal/domain"
)

func TestBuildPromptIsDeterministic(t *testing.T) {
	text := "Senior Go Engineer at Acme, Bengaluru. Apply at https://acme.example/jobs/42"

	first := BuildPrompt(text, true)
	second := BuildPrompt(text, true)
	if first != second {
		t.Fatal("prompt construction must be deterministic")
	}
}

func TestBuildPromptContainsEveryField(t *testing.T) {
	prompt := BuildPrompt("some job posting text", true)

	for _, name := range domain.JobFieldNames {
		if !strings.Contains(prompt, `"`+name+`"`) {
			t.Fatalf("prompt is missing job field %q", name)
		}
	}
	for _, name := range domain.CompanyFieldNames {
		if !strings.Contains(prompt, `"`+name+`"`) {
			t.Fatalf("prompt is missing company field %q", name)
		}
	}
}

func TestBuildPromptEmbedsRawText(t *testing.T) {
	text := "a very specific posting body XYZZY-12345"
	prompt := BuildPrompt(text, false)

	if !strings.Contains(prompt, text) {
		t.Fatal("prompt must embed the raw posting text")
	}
	if !strings.Contains(prompt, "ONLY the JSON object") {
		t.Fatal("prompt must demand a JSON-only reply")
	}
}

func TestBuildPromptCompanyVariant(t *testing.T) {
	withCompany := BuildPrompt("text", true)
	jobOnly := BuildPrompt("text", false)

	if !strings.Contains(withCompany, "company_data") {
		t.Fatal("company-inclusive prompt must mention company_data")
	}
	if strings.Contains(jobOnly, "company_data") {
		t.Fatal("job-only prompt must not mention company_data")
	}
	if strings.Contains(jobOnly, "COMPANY DATA EXTRACTION") {
		t.Fatal("job-only prompt must not carry company guidance")
	}
}
