package cvgen

import "time"

// Input is the applicant-supplied material a CV is generated from.
type Input struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	LinkedIn   string `json:"linkedin"`
	Portfolio  string `json:"portfolio"`
	Summary    string `json:"summary"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	// Skills is a comma separated list.
	Skills string `json:"skills"`
}

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

type ExperienceEntry struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
}

type EducationEntry struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	GPA         *float64   `json:"gpa,omitempty"`
}

type Certification struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Issuer       string     `json:"issuer"`
	Date         time.Time  `json:"date"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	CredentialID string     `json:"credentialId,omitempty"`
}

// Proficiency is one of basic, intermediate, advanced or native.
type Proficiency string

const (
	ProficiencyBasic        Proficiency = "basic"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyNative       Proficiency = "native"
)

type Language struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies"`
	Duration     string   `json:"duration,omitempty"`
	Role         string   `json:"role,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// CVRecord is a complete structured CV.
type CVRecord struct {
	ID             string            `json:"id"`
	UserID         string            `json:"userId"`
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []Project         `json:"projects,omitempty"`
	Certifications []Certification   `json:"certifications"`
	Languages      []Language        `json:"languages"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Draft holds the sections a ContentGenerator derives from free text.
type Draft struct {
	Experience []ExperienceEntry
	Education  []EducationEntry
	Skills     []string
}

// ParsedCV is the structured view of an uploaded CV document.
type ParsedCV struct {
	RawText    string            `json:"rawText"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
}
