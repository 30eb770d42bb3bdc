package extract

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kinnective/jobextractor/internal/domain"
)

// parseErrorWindow is the number of characters shown on each side of a JSON
// failure position.
const parseErrorWindow = 100

// payloadShape classifies the backend object once, before any field work.
type payloadShape int

const (
	shapeNone payloadShape = iota
	shapeNested
	shapeFlat
)

type payload struct {
	shape   payloadShape
	job     map[string]any
	company map[string]any
	// flat holds the whole object when the backend skipped the nested
	// wrapper; the company record is synthesized from it.
	flat map[string]any
}

// normalize turns raw backend output into a schema-complete record pair.
// The company record is synthesized from job fields when the backend
// returned a flat object; the second return reports that.
func normalize(raw string, now time.Time) (*domain.JobRecord, *domain.CompanyRecord, bool, error) {
	text := sanitizeResponse(raw)

	obj, err := parseObject(text)
	if err != nil {
		return nil, nil, false, err
	}

	p := classifyPayload(obj)
	if p.shape == shapeNone {
		return nil, nil, false, ErrNoUsableData
	}

	job := domain.NewJobRecord(now)
	applyJobFields(job, p.job)

	company := domain.NewCompanyRecord()
	synthesized := false
	switch p.shape {
	case shapeNested:
		applyCompanyFields(company, p.company)
	case shapeFlat:
		synthesizeCompany(company, p.flat)
		synthesized = true
	}

	// created_date is authoritative-local; whatever the backend claimed is
	// discarded here.
	job.CreatedDate = now.Format(domain.DateLayout)

	company.CompanyDomain = deriveCompanyDomain(company, job)

	return job, company, synthesized, nil
}

// sanitizeResponse applies the ordered chain of pure text transforms:
// strip code fences, trim, then cut to the outermost brace pair. The backend
// output is not required to be exactly JSON, only to contain one top-level
// object somewhere in its text.
func sanitizeResponse(raw string) string {
	text := stripCodeFences(strings.TrimSpace(raw))
	text = strings.TrimSpace(text)

	if first := strings.Index(text, "{"); first > 0 {
		text = text[first:]
	}
	if last := strings.LastIndex(text, "}"); last >= 0 && last < len(text)-1 {
		text = text[:last+1]
	}

	return text
}

func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}

// parseObject attempts one strict parse, then retries once on the text
// between the first '{' and last '}' before giving up with a ParseError.
func parseObject(text string) (map[string]any, error) {
	var obj map[string]any
	err := json.Unmarshal([]byte(text), &obj)
	if err == nil {
		return obj, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var retry map[string]any
		if retryErr := json.Unmarshal([]byte(text[start:end+1]), &retry); retryErr == nil {
			return retry, nil
		}
	}

	return nil, newParseError(text, err)
}

func newParseError(text string, err error) *ParseError {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	}

	pe := &ParseError{Offset: offset, Err: err}
	if offset > 0 && offset <= int64(len(text)) {
		start := int(offset) - parseErrorWindow
		if start < 0 {
			start = 0
		}
		end := int(offset) + parseErrorWindow
		if end > len(text) {
			end = len(text)
		}
		pe.Context = text[start:end]
	}
	return pe
}

func classifyPayload(obj map[string]any) payload {
	jobMap, jobOK := obj["job_data"].(map[string]any)
	companyMap, companyOK := obj["company_data"].(map[string]any)
	if jobOK || companyOK {
		return payload{shape: shapeNested, job: jobMap, company: companyMap}
	}

	if _, ok := obj["position_title"]; ok {
		return payload{shape: shapeFlat, job: obj, flat: obj}
	}
	if _, ok := obj["company"]; ok {
		return payload{shape: shapeFlat, job: obj, flat: obj}
	}

	return payload{shape: shapeNone}
}

// applyJobFields overlays backend-supplied values on the defaulted record.
// Absent or unusable values keep their defaults, so the result is always
// schema-complete.
func applyJobFields(rec *domain.JobRecord, m map[string]any) {
	if m == nil {
		return
	}

	setString(m, "application_link", &rec.ApplicationLink)
	setString(m, "application_posted", &rec.ApplicationPosted)
	setString(m, "city", &rec.City)
	setString(m, "company", &rec.Company)
	setString(m, "company_url", &rec.CompanyURL)
	setString(m, "country", &rec.Country)
	setString(m, "description", &rec.Description)
	setString(m, "description_full", &rec.DescriptionFull)
	setString(m, "industry", &rec.Industry)
	setString(m, "job_id", &rec.JobID)
	setString(m, "job_type", &rec.JobType)
	setString(m, "location", &rec.Location)
	setString(m, "position_title", &rec.PositionTitle)
	setString(m, "remote_in_person", &rec.RemoteInPerson)
	setString(m, "required_skills", &rec.RequiredSkills)
	setString(m, "salary", &rec.Salary)
	setString(m, "start_date", &rec.StartDate)
	setString(m, "state", &rec.State)
	setString(m, "logo_url", &rec.LogoURL)

	if v, ok := m["categories"]; ok {
		rec.Categories = asStringSlice(v)
	}
	if v, ok := m["job_description_roles_resp"]; ok {
		rec.RolesResp = asRolesResp(v)
	}

	setCount(m, "number_of_viewed", &rec.NumberOfViewed)
	setCount(m, "number_of_applied", &rec.NumberOfApplied)
	setCount(m, "number_of_saved", &rec.NumberOfSaved)
}

func applyCompanyFields(rec *domain.CompanyRecord, m map[string]any) {
	if m == nil {
		return
	}

	setString(m, "name", &rec.Name)
	setString(m, "city", &rec.City)
	setString(m, "state", &rec.State)
	setString(m, "industry", &rec.Industry)
	setString(m, "description", &rec.Description)
	setString(m, "url", &rec.URL)
	setString(m, "company_domain", &rec.CompanyDomain)
	setString(m, "logo_url", &rec.LogoURL)
	setString(m, "company_id", &rec.CompanyID)
}

// synthesizeCompany builds a minimal company record from the overlapping
// fields of a flat job object. The company description is not present in job
// data and stays empty.
func synthesizeCompany(rec *domain.CompanyRecord, m map[string]any) {
	setString(m, "company", &rec.Name)
	setString(m, "city", &rec.City)
	setString(m, "state", &rec.State)
	setString(m, "industry", &rec.Industry)
	setString(m, "company_url", &rec.URL)
	setString(m, "logo_url", &rec.LogoURL)
}

func setString(m map[string]any, key string, dst *string) {
	if v, ok := m[key]; ok {
		if s, ok := asString(v); ok {
			*dst = s
		}
	}
}

func setCount(m map[string]any, key string, dst *int) {
	if v, ok := m[key]; ok {
		if n, ok := asCount(v); ok {
			*dst = n
		}
	}
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

func asStringSlice(v any) []string {
	switch vv := v.(type) {
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := asString(item); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if vv == "" {
			return []string{}
		}
		return []string{vv}
	default:
		return []string{}
	}
}

func asRolesResp(v any) domain.RolesResponsibilities {
	empty := domain.RolesResponsibilities{Roles: []string{}, Responsibilities: []string{}}

	m, ok := v.(map[string]any)
	if !ok {
		return empty
	}

	rr := empty
	if roles, ok := m["roles"]; ok {
		rr.Roles = asStringSlice(roles)
	}
	if resp, ok := m["responsibilities"]; ok {
		rr.Responsibilities = asStringSlice(resp)
	}
	return rr
}

// asCount coerces backend counters to non-negative integers. Numeric strings
// are accepted; counters are never string-typed on the way out.
func asCount(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return 0, true
		}
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		if parsed < 0 {
			return 0, true
		}
		return parsed, true
	default:
		return 0, false
	}
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@([A-Za-z0-9.\-]+\.[A-Za-z]{2,})`)

// deriveCompanyDomain re-derives the bare company domain deterministically
// instead of trusting the backend: from the company URL first, then from an
// email address anywhere in the record pair, else empty.
func deriveCompanyDomain(company *domain.CompanyRecord, job *domain.JobRecord) string {
	if d := normalizeDomain(company.CompanyDomain); d != "" {
		return d
	}
	if d := normalizeDomain(company.URL); d != "" {
		return d
	}
	if d := normalizeDomain(job.CompanyURL); d != "" {
		return d
	}

	for _, text := range []string{company.Description, job.DescriptionFull, job.Description} {
		if m := emailPattern.FindStringSubmatch(text); m != nil {
			return strings.TrimPrefix(strings.ToLower(m[1]), "www.")
		}
	}

	return ""
}

// normalizeDomain strips scheme, "www." and any path from a URL-ish value.
func normalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}
