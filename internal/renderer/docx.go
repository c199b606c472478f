package renderer

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"cvgen-utils/internal/pipeline"
	"cvgen-utils/pkg/models"
)

// Half-point font sizes used across the DOCX layout
const (
	docxSizeName    = "36" // 18pt
	docxSizeTitle   = "24" // 12pt
	docxSizeHeading = "25" // 12.5pt
	docxSizeBody    = "21" // 10.5pt
	docxSizeSmall   = "20" // 10pt
	docxSizeEntry   = "22" // 11pt
)

const docxHeadingColor = "143C78"

type docxWriter struct {
	doc *docx.Docx
}

func newDOCXWriter() *docxWriter {
	return &docxWriter{doc: docx.New().WithDefaultTheme()}
}

func (w *docxWriter) output() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// plainLine writes a single-style paragraph, dropping any emphasis markers
func (w *docxWriter) plainLine(text, size string, bold bool) {
	text = pipeline.StripMarkers(pipeline.Sanitize(text))
	if text == "" {
		return
	}
	run := w.doc.AddParagraph().AddText(text).Size(size)
	if bold {
		run.Bold()
	}
}

// richLine writes a paragraph whose **bold** spans become bold runs
func (w *docxWriter) richLine(text, size string) {
	text = pipeline.Sanitize(text)
	if pipeline.StripMarkers(text) == "" {
		return
	}
	para := w.doc.AddParagraph()
	for _, span := range pipeline.ParseSpans(text) {
		run := para.AddText(span.Text).Size(size)
		if span.Bold {
			run.Bold()
		}
	}
}

func (w *docxWriter) bullet(text string, keywords []string) {
	w.richLine("- "+pipeline.Emphasize(text, keywords), docxSizeBody)
}

func (w *docxWriter) divider() {
	w.doc.AddParagraph().AddText(strings.Repeat("-", 72)).Size(docxSizeSmall).Color("A0A0A0")
}

func (w *docxWriter) sectionHeading(title string) {
	w.doc.AddParagraph().AddText(title).Size(docxSizeHeading).Bold().Color(docxHeadingColor)
}

// link writes "Label: value" where the value is a clickable hyperlink
func (w *docxWriter) link(label, display, target string) {
	display = pipeline.Sanitize(display)
	if display == "" {
		return
	}
	para := w.doc.AddParagraph()
	if label != "" {
		para.AddText(label + ": ").Size(docxSizeSmall)
	}
	para.AddLink(display, target)
}

func (w *docxWriter) header(header models.SectionHeader) {
	w.plainLine(header.FullName, docxSizeName, true)
	w.plainLine(header.JobTitle, docxSizeTitle, false)
	w.plainLine(joinParts(" | ", header.Location, header.Phone), docxSizeSmall, false)
	if header.Email != "" {
		w.link("", header.Email, "mailto:"+header.Email)
	}
	if header.GitHub != "" {
		w.link("GitHub", header.GitHub, NormalizeLinkURL(header.GitHub))
	}
	if header.LinkedIn != "" {
		w.link("LinkedIn", header.LinkedIn, NormalizeLinkURL(header.LinkedIn))
	}
	w.divider()
}

func renderResumeDOCX(req *models.RenderRequest) ([]byte, error) {
	sections := req.Sections
	keywords := sections.CoreSkills.Flatten()
	w := newDOCXWriter()

	w.header(headerValues(sections.Header, req.FullName, req.RoleTitle))

	if summary := pipeline.RemoveYearsClaims(sections.ProfessionalSummary); summary != "" {
		w.sectionHeading("Professional Summary")
		w.richLine(pipeline.Emphasize(summary, keywords), docxSizeBody)
		w.divider()
	}

	if len(keywords) > 0 {
		w.sectionHeading("Core Skills")
		for _, group := range skillGroups(sections.CoreSkills) {
			if len(group.Values) == 0 {
				continue
			}
			w.richLine("**"+group.Label+":** "+strings.Join(group.Values, ", "), docxSizeBody)
		}
		w.divider()
	}

	if len(sections.ProfessionalExperience) > 0 {
		w.sectionHeading("Professional Experience")
		for _, entry := range sections.ProfessionalExperience {
			w.plainLine(joinParts(" at ", entry.Title, entry.Company), docxSizeEntry, true)
			w.plainLine(entry.Duration, docxSizeSmall, false)
			for _, highlight := range entry.Highlights {
				w.bullet(highlight, keywords)
			}
		}
		w.divider()
	}

	if len(sections.PersonalProjects) > 0 {
		w.sectionHeading("Personal Projects")
		for _, project := range sections.PersonalProjects {
			w.plainLine(project.Name, docxSizeEntry, true)
			projectKeywords := append(append([]string{}, keywords...), project.TechStack...)
			if len(project.TechStack) > 0 {
				w.richLine("**Tech Stack:** "+strings.Join(project.TechStack, ", "), docxSizeSmall)
			}
			for _, highlight := range project.Highlights {
				w.bullet(highlight, projectKeywords)
			}
		}
		w.divider()
	}

	if len(sections.Education) > 0 {
		w.sectionHeading("Education")
		for _, line := range sections.Education {
			w.richLine(pipeline.Emphasize(line, keywords), docxSizeBody)
		}
		w.divider()
	}

	if len(sections.TrainingCertifications) > 0 {
		w.sectionHeading("Training & Certifications")
		for _, line := range sections.TrainingCertifications {
			w.bullet(line, keywords)
		}
		w.divider()
	}

	return w.output()
}

func renderCoverLetterDOCX(req *models.CoverLetterRenderRequest) ([]byte, error) {
	w := newDOCXWriter()

	w.plainLine(req.FullName, "32", true)
	w.plainLine(joinParts(" | ", req.RoleTitle, req.CompanyName), docxSizeEntry, false)
	w.divider()

	for _, paragraph := range splitParagraphs(req.CoverLetter) {
		w.richLine(paragraph, docxSizeEntry)
	}

	return w.output()
}
