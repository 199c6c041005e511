// Package content holds the hand-authored portfolio data rendered by the site
// and served by the profile API. Every accessor returns a fresh copy.
package content

import "strconv"

// I10Index is not tracked by the metrics cache and is shown as-is.
const I10Index = 8

// Document paths served from the assets directory.
const (
	CVPath     = "/CV_sergey.pdf"
	ResumePath = "/Resume_DR_SERGEY_GALITSKIY.pdf"
)

// Portfolio is the whole page content.
type Portfolio struct {
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Hero              Hero           `json:"hero"`
	About             About          `json:"about"`
	Experience        []Experience   `json:"experience"`
	Education         []Education    `json:"education"`
	Publications      []Publication  `json:"publications"`
	ResearchInterests []string       `json:"researchInterests"`
	WorkSamples       WorkSamples    `json:"workSamples"`
	CodeCategories    []CodeCategory `json:"codeCategories"`
	Contact           Contact        `json:"contact"`
	Footer            Footer         `json:"footer"`
}

// Hero is the page header block.
type Hero struct {
	Name           string   `json:"name"`
	Position       []string `json:"position"`
	Specialization string   `json:"specialization"`
	Links          []Link   `json:"links"`
}

// About is the biography section.
type About struct {
	Summary    string      `json:"summary"`
	Intro      string      `json:"intro"`
	Focus      []string    `json:"focus"`
	Highlights []Highlight `json:"highlights"`
	Documents  []Link      `json:"documents"`
}

// Highlight is an expandable About card.
type Highlight struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// Experience is one professional position.
type Experience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Period   string   `json:"period"`
	Logo     string   `json:"logo"`
	LogoAlt  string   `json:"logoAlt"`
	LogoSize string   `json:"logoSize,omitempty"`
	Bullets  []string `json:"bullets"`
}

// Education is one degree.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	Logo        string `json:"logo"`
	LogoAlt     string `json:"logoAlt"`
	Description string `json:"description"`
}

// Publication is one paper.
type Publication struct {
	Title        string `json:"title"`
	Authors      string `json:"authors"`
	Journal      string `json:"journal"`
	Year         string `json:"year"`
	Volume       string `json:"volume"`
	Pages        string `json:"pages"`
	DOI          string `json:"doi"`
	URL          string `json:"url"`
	Citations    int    `json:"citations"`
	Type         string `json:"type"`
	CoverImage   string `json:"coverImage,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

// Image returns the cover image if set, else the illustration.
func (p Publication) Image() string {
	if p.CoverImage != "" {
		return p.CoverImage
	}
	return p.Illustration
}

// ImageAlt describes Image.
func (p Publication) ImageAlt() string {
	if p.CoverImage != "" {
		return "Cover of " + p.Journal + " " + p.Year
	}
	return "Illustration from " + p.Title
}

// Stat is a labelled figure in the publications header.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResearchStats formats the live counts next to the static i10-index.
func ResearchStats(citations, hIndex, publications int) []Stat {
	return []Stat{
		{Label: "Total Publications", Value: strconv.Itoa(publications) + "+"},
		{Label: "Citations", Value: strconv.Itoa(citations)},
		{Label: "H-Index", Value: strconv.Itoa(hIndex)},
		{Label: "i10-Index", Value: strconv.Itoa(I10Index)},
	}
}

// WorkSamples groups the showcase items.
type WorkSamples struct {
	Movies       []Movie      `json:"movies"`
	Repositories []Repository `json:"repositories"`
	MDAnalysis   []CodeSample `json:"mdAnalysis"`
	Lammps       []LammpsWork `json:"lammps"`
	ML           []MLWork     `json:"ml"`
}

// Movie is an atomistic simulation video.
type Movie struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"videoUrl"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
}

// Repository is a code project.
type Repository struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Features    []string `json:"features"`
	GithubURL   string   `json:"githubUrl"`
	DownloadURL string   `json:"downloadUrl"`
}

// LammpsWork is a LAMMPS related project.
type LammpsWork struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Applications []string `json:"applications"`
}

// MLWork is a machine learning project.
type MLWork struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Accuracy    string   `json:"accuracy"`
	Methods     []string `json:"methods"`
	Performance string   `json:"performance"`
}

// CodeSample is a downloadable script.
type CodeSample struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Language    string   `json:"language,omitempty"`
	Tags        []string `json:"tags"`
	Features    []string `json:"features"`
	FilePath    string   `json:"filePath"`
}

// Contact is the contact section.
type Contact struct {
	Intro  string        `json:"intro"`
	Info   []ContactInfo `json:"info"`
	Social []Link        `json:"social"`
}

// ContactInfo is one reachable channel. Href is empty for plain text.
type ContactInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

// Link is a named URL.
type Link struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Footer is the page footer.
type Footer struct {
	Tagline    string `json:"tagline"`
	QuickLinks []Link `json:"quickLinks"`
	External   []Link `json:"external"`
	Documents  []Link `json:"documents"`
}

// Profile returns the full portfolio.
func Profile() Portfolio {
	return Portfolio{
		Title:             "Dr. Sergey Galitskiy - Portfolio",
		Description:       "Professional portfolio of Dr. Sergey Galitskiy - Research Scientist and Academic",
		Hero:              hero(),
		About:             about(),
		Experience:        experience(),
		Education:         education(),
		Publications:      publications(),
		ResearchInterests: researchInterests(),
		WorkSamples: WorkSamples{
			Movies:       movies(),
			Repositories: repositories(),
			MDAnalysis:   mdAnalysisCodes(),
			Lammps:       lammpsWork(),
			ML:           mlWork(),
		},
		CodeCategories: Categories(),
		Contact:        contact(),
		Footer:         footer(),
	}
}
