package extract

import (
	"strings"
	"testing"
)

const acceptablePosting = `About the job
We are looking for a Senior Software Engineer to join our platform team in Bengaluru.

Responsibilities:
- Design and build scalable backend services in Go
- Collaborate with product managers and designers on new features
- Review code and mentor junior engineers on the team
- Own services from design through deployment and monitoring

Requirements:
- 5+ years of professional software development experience
- Strong skills in distributed systems and cloud infrastructure
- Experience with PostgreSQL, Redis and message queues

Employment type: Full-time
Location: Bengaluru, Karnataka, India (Hybrid)
Salary: Competitive, based on experience

Interested candidates can apply through our careers page. Our hiring
process includes a technical interview and a system design round. We
offer great benefits including health insurance and flexible hours.`

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		reason string
	}{
		{
			name:   "too short",
			input:  "short text",
			reason: "too short",
		},
		{
			name:   "too few words",
			input:  strings.Repeat("a", 60) + " b c d e",
			reason: "too few words",
		},
		{
			name: "placeholder marker",
			input: "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor " +
				"incididunt ut labore et dolore magna aliqua ut enim ad minim veniam quis",
			reason: `"lorem ipsum"`,
		},
		{
			name: "no job keywords",
			input: "The weather today is sunny with a light breeze and the garden looks lovely " +
				"as the flowers bloom and the birds sing in the tall green trees outside",
			reason: "does not look like a job posting",
		},
	}

	for _, tc := range cases {
		valid, reason := Validate(tc.input)
		if valid {
			t.Fatalf("%s: expected rejection", tc.name)
		}
		if !strings.Contains(reason, tc.reason) {
			t.Fatalf("%s: reason %q does not mention %q", tc.name, reason, tc.reason)
		}
	}
}

func TestValidateAcceptsJobPosting(t *testing.T) {
	valid, reason := Validate(acceptablePosting)
	if !valid {
		t.Fatalf("expected acceptance, got rejection: %s", reason)
	}
	if reason != "" {
		t.Fatalf("accepted input should carry no reason, got %q", reason)
	}
}

func TestValidateIsCaseInsensitive(t *testing.T) {
	valid, _ := Validate(strings.ToUpper(acceptablePosting))
	if !valid {
		t.Fatal("validation should be case-insensitive")
	}
}
