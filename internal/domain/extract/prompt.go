package extract

import "strings"

// SystemInstruction is sent with every backend call.
const SystemInstruction = "You are a data extraction assistant. Extract job information and return ONLY valid JSON, no additional text."

const jobSchemaJSON = `{
  "application_link": "",
  "application_posted": "",
  "categories": [],
  "city": "",
  "company": "",
  "company_url": "",
  "country": "",
  "description": "",
  "description_full": "",
  "industry": "",
  "job_description_roles_resp": {
    "roles": [],
    "responsibilities": []
  },
  "job_id": "",
  "job_type": "",
  "location": "",
  "position_title": "",
  "remote_in_person": "",
  "required_skills": "",
  "salary": "",
  "start_date": "",
  "state": "",
  "created_date": "",
  "logo_url": "",
  "number_of_viewed": 0,
  "number_of_applied": 0,
  "number_of_saved": 0
}`

const companySchemaJSON = `{
  "name": "",
  "city": "",
  "state": "",
  "industry": "",
  "description": "",
  "url": "",
  "company_domain": "",
  "logo_url": "",
  "company_id": ""
}`

const promptHeader = `You are a professional data extraction assistant. Analyze the raw job posting text and extract structured data.

INSTRUCTIONS:
1. Carefully read the entire job posting text provided below.
2. Extract all relevant information and map it to the exact field structure specified.
3. If a field cannot be found in the text, leave it as an empty string "" or empty array [].
4. Return ONLY valid JSON - no additional commentary, explanations, or markdown formatting.
5. Ensure all string fields are properly escaped for JSON.
6. For arrays, use proper JSON array format with square brackets.
`

const jobFieldGuidance = `
FIELD EXTRACTION GUIDELINES:

application_link MUST be extracted from the text when present.
Job postings often embed links like Google Forms, company career URLs, SmartRecruiters, Greenhouse, Taleo, Zoho Recruit, or short links.
Extract ANY link that appears to be used for applying, including links that appear after phrases like:
- "Apply here"
- "Click the link"
- "Submit your application"
- "Fill this form"
- "Apply now"
- "Use this Google Form"
- "Career page link"
If multiple links exist, choose the one MOST related to applying.
If none exist, keep application_link as an empty string.

- application_link: Direct URL to apply for the job (if mentioned)
- application_posted: Date when the job was posted (format: YYYY-MM-DD).
  IMPORTANT: If the posting mentions relative time like "4 weeks ago", "1 month ago", "2 days ago", etc., you MUST calculate the actual date by subtracting that time from TODAY's date.
  Examples:
  - "4 weeks ago" -> today's date minus 28 days (format as YYYY-MM-DD)
  - "1 month ago" -> today's date minus 30 days (format as YYYY-MM-DD)
  - "2 weeks ago" -> today's date minus 14 days (format as YYYY-MM-DD)
  - "3 days ago" -> today's date minus 3 days (format as YYYY-MM-DD)
  Use TODAY's date (current date) as the reference point for all calculations.
  If no date information is found, leave as empty string "".
- categories: Array of job categories/tags (e.g., ["Engineering", "Software Development"])
- city: City name where the job is located
- company: Company name
- company_url: Company website URL (if mentioned)
- country: Country name where the job is located
- description: Describe only the job responsibilities/role, NOT the company details.
- description_full: Complete job description text
- industry: Industry sector (e.g., "Technology", "Healthcare", "Finance")
- job_description_roles_resp: Object with two arrays:
  - roles: Array of job roles/titles mentioned
  - responsibilities: Array of individual responsibility bullet points
- job_id: Unique job identifier if mentioned, otherwise leave empty
- job_type: Type of employment (e.g., "Full-time", "Part-time", "Contract", "Internship")
- location: Full location string (e.g., "San Francisco, CA, United States")
- position_title: Job title/position name
- remote_in_person: "Remote", "On-site", "Hybrid", or as specified
- required_skills: Comma-separated string of required skills
- salary: Salary range or compensation information (if mentioned)
- start_date: Expected start date or "Immediate" if mentioned
- state: State/province name (if applicable)
- created_date: Set to today's date in YYYY-MM-DD format (use the current date, not a date from the job posting)
- logo_url: Leave empty unless specifically mentioned
- number_of_viewed: Set to 0
- number_of_applied: Set to 0
- number_of_saved: Set to 0
`

const companyFieldGuidance = `
COMPANY DATA EXTRACTION GUIDELINES (extract every field):

- name: The company name (usually at the top of the posting or in an "About the company" section)
- city: The city where the company is located (from job location or company info)
- state: The state/province where the company is located
- industry: The industry sector (e.g., "IT Services and IT Consulting", "Software Development", "Technology", "Healthcare")
- description: The full company overview text. Look for:
  * A section titled "About the company" or similar
  * Sentences starting with the company name ("Optum is a...", "Infosys is a global leader...")
  * Paragraphs describing what the company does, its mission, employees, or services
  * Do NOT include job duties or responsibilities here. Do not leave this empty when company description text exists.
- url: The company website URL if explicitly mentioned, as found (with or without http/https/www). If not found, leave as "".
- company_domain: ONLY the domain name from the company URL:
  * "www.infosys.com" -> "infosys.com"
  * "https://www.infosys.com" -> "infosys.com"
  * Remove "www.", "http://", "https://", and any paths
  * If no URL is available but an email is found (e.g., "hr@animaker.com"), extract the domain from the email ("animaker.com")
  * If neither is available, leave as ""
- logo_url: Leave as empty string ""
- company_id: Leave as empty string "" unless a specific company ID is mentioned
`

// BuildPrompt deterministically produces the instruction text for one
// extraction. When includeCompany is set the backend is asked for the nested
// {job_data, company_data} pair; otherwise for a single flat job object.
func BuildPrompt(jobText string, includeCompany bool) string {
	var b strings.Builder

	b.WriteString(promptHeader)
	if includeCompany {
		b.WriteString(`
Return TWO clear JSON objects inside one wrapper:
1. "job_data" - information about the job post only (role, position, skills, etc.)
2. "company_data" - information about the company only (organization overview, mission, website, etc.)
`)
	}

	b.WriteString(jobFieldGuidance)

	b.WriteString("\nREQUIRED JOB JSON STRUCTURE (return exactly this structure):\n\n")
	b.WriteString(jobSchemaJSON)
	b.WriteString("\n")

	if includeCompany {
		b.WriteString("\nREQUIRED COMPANY JSON STRUCTURE:\n\n")
		b.WriteString(companySchemaJSON)
		b.WriteString("\n")
		b.WriteString(companyFieldGuidance)
		b.WriteString(`
Wrap both objects exactly like this:

{
  "job_data": { ... },
  "company_data": { ... }
}
`)
	}

	b.WriteString(`
Now, extract the information from the following job posting text and return ONLY the JSON object:

`)
	b.WriteString(jobText)
	b.WriteString(`

Return the complete JSON object matching the exact structure above. Do not include any text before or after the JSON.`)

	return b.String()
}
