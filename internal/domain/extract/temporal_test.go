package extract

import (
	"testing"
	"time"

	"github.com/kinnective/jobextractor/internal/domain"
)

func TestResolveTemporalRelativeDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		text string
		want string
	}{
		{"weeks", "Posted 4 weeks ago by the hiring team", "2025-05-18"},
		{"days", "Reposted 2 days ago", "2025-06-13"},
		{"months", "3 months ago", "2025-03-17"},
		{"years", "1 year ago", "2024-06-15"},
		{"case insensitive", "Posted 2 Weeks Ago", "2025-06-01"},
		{"no space before unit", "5days ago", "2025-06-10"},
	}

	for _, tc := range cases {
		job := domain.NewJobRecord(now)
		job.ApplicationPosted = "2025-01-01" // relative expression must win
		resolveTemporal(tc.text, job, now, DefaultRecencyWindow)
		if job.ApplicationPosted != tc.want {
			t.Fatalf("%s: application_posted = %q, want %q", tc.name, job.ApplicationPosted, tc.want)
		}
	}
}

func TestResolveTemporalPatternPriority(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	job := domain.NewJobRecord(now)

	// both expressions present; weeks outrank days
	resolveTemporal("posted 1 week ago, bumped 3 days ago", job, now, DefaultRecencyWindow)
	if job.ApplicationPosted != "2025-06-08" {
		t.Fatalf("application_posted = %q, want 2025-06-08", job.ApplicationPosted)
	}
}

func TestResolveTemporalRecencyWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		posted string
		want   string
	}{
		{"stale date dropped", "2022-07-01", ""},
		{"recent date kept", "2025-06-01", "2025-06-01"},
		{"non-date value untouched", "Immediate", "Immediate"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		job := domain.NewJobRecord(now)
		job.ApplicationPosted = tc.posted
		resolveTemporal("no relative dates in this text", job, now, DefaultRecencyWindow)
		if job.ApplicationPosted != tc.want {
			t.Fatalf("%s: application_posted = %q, want %q", tc.name, job.ApplicationPosted, tc.want)
		}
	}
}

func TestResolveTemporalCustomWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	job := domain.NewJobRecord(now)
	job.ApplicationPosted = "2025-05-01"

	// a 30-day window rejects a date that the default window keeps
	resolveTemporal("plain text", job, now, 30*24*time.Hour)
	if job.ApplicationPosted != "" {
		t.Fatalf("application_posted = %q, want it dropped by the narrow window", job.ApplicationPosted)
	}
}

func TestResolveTemporalStampsCreatedDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	job := domain.NewJobRecord(now)
	job.CreatedDate = "2001-01-01"

	resolveTemporal("text", job, now, DefaultRecencyWindow)
	if job.CreatedDate != "2025-06-15" {
		t.Fatalf("created_date = %q, want 2025-06-15", job.CreatedDate)
	}
}
