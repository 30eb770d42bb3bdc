package extract

import (
	"regexp"
	"strconv"
	"time"

	"github.com/kinnective/jobextractor/internal/domain"
)

// DefaultRecencyWindow bounds how old a backend-supplied posting date may be
// before it is treated as stale or hallucinated.
const DefaultRecencyWindow = 730 * 24 * time.Hour

// Relative expressions are matched in a fixed priority order; the first
// pattern with a hit wins and no later pattern is evaluated. Month and year
// lengths are intentionally approximate (30 and 365 days).
var relativeDatePatterns = []struct {
	re   *regexp.Regexp
	days int
}{
	{regexp.MustCompile(`(?i)(\d+)\s*weeks?\s+ago`), 7},
	{regexp.MustCompile(`(?i)(\d+)\s*months?\s+ago`), 30},
	{regexp.MustCompile(`(?i)(\d+)\s*days?\s+ago`), 1},
	{regexp.MustCompile(`(?i)(\d+)\s*years?\s+ago`), 365},
}

// resolveTemporal rewrites application_posted from the source text and
// stamps created_date with the processing date.
//
// application_posted, in priority order: a relative expression in the raw
// text always wins and is converted to an absolute date; otherwise a
// syntactically valid backend-supplied YYYY-MM-DD value is kept only when it
// falls inside the recency window; anything else is left untouched.
func resolveTemporal(rawText string, job *domain.JobRecord, now time.Time, window time.Duration) {
	if window <= 0 {
		window = DefaultRecencyWindow
	}

	if posted, ok := resolveRelativeDate(rawText, now); ok {
		job.ApplicationPosted = posted
	} else if job.ApplicationPosted != "" {
		if ts, err := time.Parse(domain.DateLayout, job.ApplicationPosted); err == nil {
			if now.Sub(ts) > window {
				// stale or hallucinated; drop back to the default
				job.ApplicationPosted = ""
			}
		}
	}

	// created_date records when extraction happened, never a date claimed
	// by the posting or the backend.
	job.CreatedDate = now.Format(domain.DateLayout)
}

func resolveRelativeDate(rawText string, now time.Time) (string, bool) {
	for _, p := range relativeDatePatterns {
		m := p.re.FindStringSubmatch(rawText)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return now.AddDate(0, 0, -n*p.days).Format(domain.DateLayout), true
	}
	return "", false
}
