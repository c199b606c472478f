package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"cvgen-utils/pkg/models"
	"cvgen-utils/pkg/utils"
)

// Format identifies a supported output document format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Media types for the two supported formats
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseFormat resolves a caller-supplied format string. Empty defaults to
// PDF; anything other than pdf/docx is rejected. The reject-vs-fallback
// policy is applied uniformly across every entry point.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", utils.NewUnsupportedFormatError(value)
	}
}

// ContentType returns the media type for the format
func (f Format) ContentType() string {
	if f == FormatDOCX {
		return ContentTypeDOCX
	}
	return ContentTypePDF
}

// Document is a fully rendered, in-memory binary document. Produced once per
// render call and never persisted.
type Document struct {
	Data        []byte
	FileName    string
	ContentType string
}

// RenderResume lays the merged content model out into a binary document in
// the requested format. Rendering either fully succeeds or fails; no partial
// document is ever returned.
func RenderResume(req *models.RenderRequest) (*Document, error) {
	format, err := ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s cv/resume | %s | %s", req.FullName, req.CompanyName, req.RoleTitle)

	var data []byte
	switch format {
	case FormatDOCX:
		data, err = renderResumeDOCX(req)
	default:
		data, err = renderResumePDF(req)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Data:        data,
		FileName:    FileName(title, format),
		ContentType: format.ContentType(),
	}, nil
}

// RenderCoverLetter renders a plain-text cover letter with the shared header
// block in the requested format
func RenderCoverLetter(req *models.CoverLetterRenderRequest) (*Document, error) {
	format, err := ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s cover letter | %s | %s", req.FullName, req.CompanyName, req.RoleTitle)

	var data []byte
	switch format {
	case FormatDOCX:
		data, err = renderCoverLetterDOCX(req)
	default:
		data, err = renderCoverLetterPDF(req)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Data:        data,
		FileName:    FileName(title, format),
		ContentType: format.ContentType(),
	}, nil
}

var (
	unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|]+`)
	spaceRun        = regexp.MustCompile(`\s+`)
)

// FileName derives a download filename from a human-readable title, replacing
// path-unsafe characters and appending the format extension
func FileName(title string, format Format) string {
	name := unsafeFileChars.ReplaceAllString(title, "-")
	name = strings.Trim(spaceRun.ReplaceAllString(name, " "), " .-")
	if name == "" {
		name = "cv"
	}
	return name + "." + string(format)
}

// NormalizeLinkURL makes a header link clickable: bare domains get an https
// prefix, already-schemed and mailto values pass through
func NormalizeLinkURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return value
	}
	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "mailto:") {
		return value
	}
	return "https://" + value
}

// headerValues resolves the rendered header block, backfilling name and title
// from the request when the model left them empty
func headerValues(header models.SectionHeader, fullName, roleTitle string) models.SectionHeader {
	header.FullName = strings.TrimSpace(utils.GetStringOrDefault(header.FullName, fullName))
	header.JobTitle = strings.TrimSpace(utils.GetStringOrDefault(header.JobTitle, roleTitle))
	header.Location = strings.TrimSpace(header.Location)
	header.Phone = strings.TrimSpace(header.Phone)
	header.Email = strings.TrimSpace(header.Email)
	header.GitHub = strings.TrimSpace(header.GitHub)
	header.LinkedIn = strings.TrimSpace(header.LinkedIn)
	return header
}

// skillGroups is the fixed render order of the core skill groups
func skillGroups(cs models.CoreSkills) []struct {
	Label  string
	Values []string
} {
	return []struct {
		Label  string
		Values []string
	}{
		{"Languages & Frameworks", cs.LanguagesFrameworks},
		{"Databases & Tools", cs.DatabasesTools},
		{"Testing & DevOps", cs.TestingDevOps},
		{"Development Practices", cs.DevelopmentPractices},
	}
}
