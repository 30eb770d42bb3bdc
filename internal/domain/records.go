package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar form used for every date field.
const DateLayout = "2006-01-02"

// RolesResponsibilities is the structured breakdown of a job description.
// Both sequences are always present, empty when unknown.
type RolesResponsibilities struct {
	Roles            []string `json:"roles" bson:"roles"`
	Responsibilities []string `json:"responsibilities" bson:"responsibilities"`
}

// UnmarshalJSON tolerates backend output that renders the field as a bare
// string or array instead of an object. Anything that is not an object
// decodes to the empty structure; missing sub-sequences are backfilled.
func (r *RolesResponsibilities) UnmarshalJSON(data []byte) error {
	type plain RolesResponsibilities
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*r = RolesResponsibilities{Roles: []string{}, Responsibilities: []string{}}
		return nil
	}
	if p.Roles == nil {
		p.Roles = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
	*r = RolesResponsibilities(p)
	return nil
}

// JobRecord is the normalized representation of a single job posting.
// Every field is present in any record that leaves the normalizer.
type JobRecord struct {
	ApplicationLink   string                `json:"application_link" bson:"application_link"`
	ApplicationPosted string                `json:"application_posted" bson:"application_posted"`
	Categories        []string              `json:"categories" bson:"categories"`
	City              string                `json:"city" bson:"city"`
	Company           string                `json:"company" bson:"company"`
	CompanyURL        string                `json:"company_url" bson:"company_url"`
	Country           string                `json:"country" bson:"country"`
	Description       string                `json:"description" bson:"description"`
	DescriptionFull   string                `json:"description_full" bson:"description_full"`
	Industry          string                `json:"industry" bson:"industry"`
	RolesResp         RolesResponsibilities `json:"job_description_roles_resp" bson:"job_description_roles_resp"`
	JobID             string                `json:"job_id" bson:"job_id"`
	JobType           string                `json:"job_type" bson:"job_type"`
	Location          string                `json:"location" bson:"location"`
	PositionTitle     string                `json:"position_title" bson:"position_title"`
	RemoteInPerson    string                `json:"remote_in_person" bson:"remote_in_person"`
	RequiredSkills    string                `json:"required_skills" bson:"required_skills"`
	Salary            string                `json:"salary" bson:"salary"`
	StartDate         string                `json:"start_date" bson:"start_date"`
	State             string                `json:"state" bson:"state"`
	CreatedDate       string                `json:"created_date" bson:"created_date"`
	LogoURL           string                `json:"logo_url" bson:"logo_url"`
	NumberOfViewed    int                   `json:"number_of_viewed" bson:"number_of_viewed"`
	NumberOfApplied   int                   `json:"number_of_applied" bson:"number_of_applied"`
	NumberOfSaved     int                   `json:"number_of_saved" bson:"number_of_saved"`
}

// CompanyRecord is the normalized representation of the employer referenced
// by a job posting.
type CompanyRecord struct {
	Name          string `json:"name" bson:"name"`
	City          string `json:"city" bson:"city"`
	State         string `json:"state" bson:"state"`
	Industry      string `json:"industry" bson:"industry"`
	Description   string `json:"description" bson:"description"`
	URL           string `json:"url" bson:"url"`
	CompanyDomain string `json:"company_domain" bson:"company_domain"`
	LogoURL       string `json:"logo_url" bson:"logo_url"`
	CompanyID     string `json:"company_id" bson:"company_id"`
}

// NewJobRecord returns a job record with every field at its documented
// default. created_date is stamped with the processing date.
func NewJobRecord(now time.Time) *JobRecord {
	return &JobRecord{
		Categories: []string{},
		RolesResp: RolesResponsibilities{
			Roles:            []string{},
			Responsibilities: []string{},
		},
		CreatedDate: now.Format(DateLayout),
	}
}

// NewCompanyRecord returns a company record with every field at its default.
func NewCompanyRecord() *CompanyRecord {
	return &CompanyRecord{}
}

// JobFieldNames lists every field a persisted job document must carry.
var JobFieldNames = []string{
	"application_link", "application_posted", "categories", "city",
	"company", "company_url", "country", "description", "description_full",
	"industry", "job_description_roles_resp", "job_id", "job_type",
	"location", "position_title", "remote_in_person", "required_skills",
	"salary", "start_date", "state", "created_date", "logo_url",
	"number_of_viewed", "number_of_applied", "number_of_saved",
}

// CompanyFieldNames lists every field a persisted company document must carry.
var CompanyFieldNames = []string{
	"name", "city", "state", "industry", "description",
	"url", "company_domain", "logo_url", "company_id",
}
