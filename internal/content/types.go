package content

// Table names on the backend.
const (
	TableSettings        = "settings"
	TableProjects        = "projects"
	TableSkills          = "skills"
	TableExperience      = "experience"
	TableTestimonials    = "testimonials"
	TableCertificates    = "certificates"
	TableContactMessages = "contact_messages"
)

// Settings is the singleton site configuration row.
type Settings struct {
	Name               string `json:"name"`
	Title              string `json:"title"`
	Summary            string `json:"summary"`
	HeroText           string `json:"hero_text"`
	AvailabilityStatus string `json:"availability_status"`
	GitHub             string `json:"github"`
	LinkedIn           string `json:"linkedin"`
	Email              string `json:"email"`
	ResumeURL          string `json:"resume_url"`
}

// Project is one portfolio entry.
type Project struct {
	ID            ID         `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Tagline       string     `json:"tagline"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Stack         StringList `json:"stack"`
	IsFeatured    bool       `json:"is_featured"`
	IsPublished   bool       `json:"is_published"`
	CoverImageURL string     `json:"cover_image_url"`
	RepoURL       string     `json:"repo_url"`
	LiveURL       string     `json:"live_url"`
	CreatedAt     Date       `json:"created_at"`
}

// Initial is the fallback glyph shown when a project has no cover image.
func (p Project) Initial() string {
	for _, r := range p.Title {
		return string(r)
	}
	return ""
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	ID         ID         `json:"id"`
	GroupName  string     `json:"group_name"`
	Items      StringList `json:"items"`
	OrderIndex int        `json:"order_index"`
}

// Experience is one role in the work history. A zero EndDate means the role
// is current.
type Experience struct {
	ID          ID     `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	IsPublished bool   `json:"is_published"`
}

// Current reports whether the role has no end date.
func (e Experience) Current() bool {
	return !e.EndDate.Valid()
}

// Testimonial is a quote from a colleague or client.
type Testimonial struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	OrderIndex  int    `json:"order_index"`
	IsPublished bool   `json:"is_published"`
}

// Certificate is a completed course or credential.
type Certificate struct {
	ID           ID         `json:"id"`
	Title        string     `json:"title"`
	Issuer       string     `json:"issuer"`
	IssueDate    Date       `json:"issue_date"`
	CredentialID string     `json:"credential_id"`
	Skills       StringList `json:"skills"`
	ImageURL     string     `json:"image_url"`
	VerifyURL    string     `json:"verify_url"`
	OrderIndex   int        `json:"order_index"`
	IsPublished  bool       `json:"is_published"`
}

// ContactMessage is the only row the site writes.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
