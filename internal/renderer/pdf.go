package renderer

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"cvgen-utils/internal/pipeline"
	"cvgen-utils/pkg/models"
)

const pdfFontFamily = "Helvetica"

type pdfWriter struct {
	pdf *fpdf.Fpdf
}

func newPDFWriter() *pdfWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	return &pdfWriter{pdf: pdf}
}

func (w *pdfWriter) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// plainLine writes a single-style line, dropping any emphasis markers
func (w *pdfWriter) plainLine(text string, size float64, style string, h float64) {
	text = pipeline.StripMarkers(pipeline.Sanitize(text))
	if text == "" {
		return
	}
	w.pdf.SetFont(pdfFontFamily, style, size)
	w.pdf.MultiCell(0, h, text, "", "L", false)
}

// richLine writes a line whose **bold** spans toggle the font style inline
func (w *pdfWriter) richLine(text string, size float64, h float64) {
	text = pipeline.Sanitize(text)
	if pipeline.StripMarkers(text) == "" {
		return
	}
	for _, span := range pipeline.ParseSpans(text) {
		style := ""
		if span.Bold {
			style = "B"
		}
		w.pdf.SetFont(pdfFontFamily, style, size)
		w.pdf.Write(h, span.Text)
	}
	w.pdf.Ln(h)
}

// bullet writes one keyword-emphasized highlight line
func (w *pdfWriter) bullet(text string, keywords []string) {
	w.richLine("- "+pipeline.Emphasize(text, keywords), 10.5, 5)
}

func (w *pdfWriter) divider() {
	w.pdf.Ln(1.5)
	left, _, right, _ := w.pdf.GetMargins()
	width, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY()
	w.pdf.SetDrawColor(160, 160, 160)
	w.pdf.SetLineWidth(0.4)
	w.pdf.Line(left, y, width-right, y)
	w.pdf.Ln(3)
}

func (w *pdfWriter) sectionHeading(title string) {
	w.pdf.Ln(1)
	w.pdf.SetTextColor(20, 60, 120)
	w.plainLine(title, 12.5, "B", 6)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Ln(0.5)
}

// link writes "Label: value" where the value is an underlined clickable link
func (w *pdfWriter) link(label, display, target string) {
	display = pipeline.Sanitize(display)
	if display == "" {
		return
	}
	w.pdf.SetFont(pdfFontFamily, "", 10)
	if label != "" {
		w.pdf.Write(5, label+": ")
	}
	w.pdf.SetFont(pdfFontFamily, "U", 10)
	w.pdf.SetTextColor(0, 64, 160)
	w.pdf.WriteLinkString(5, display, target)
	w.pdf.SetTextColor(0, 0, 0)
	w.pdf.Ln(5)
}

func (w *pdfWriter) header(header models.SectionHeader) {
	w.plainLine(header.FullName, 18, "B", 8)
	w.plainLine(header.JobTitle, 12, "", 6)

	contact := joinParts(" | ", header.Location, header.Phone)
	w.plainLine(contact, 10, "", 5)
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

func renderResumePDF(req *models.RenderRequest) ([]byte, error) {
	sections := req.Sections
	keywords := sections.CoreSkills.Flatten()
	w := newPDFWriter()

	w.header(headerValues(sections.Header, req.FullName, req.RoleTitle))

	if summary := pipeline.RemoveYearsClaims(sections.ProfessionalSummary); summary != "" {
		w.sectionHeading("Professional Summary")
		w.richLine(pipeline.Emphasize(summary, keywords), 10.5, 5)
		w.divider()
	}

	if len(keywords) > 0 {
		w.sectionHeading("Core Skills")
		for _, group := range skillGroups(sections.CoreSkills) {
			if len(group.Values) == 0 {
				continue
			}
			w.richLine("**"+group.Label+":** "+strings.Join(group.Values, ", "), 10.5, 5)
		}
		w.divider()
	}

	if len(sections.ProfessionalExperience) > 0 {
		w.sectionHeading("Professional Experience")
		for _, entry := range sections.ProfessionalExperience {
			w.plainLine(joinParts(" at ", entry.Title, entry.Company), 11, "B", 5.5)
			w.plainLine(entry.Duration, 10, "I", 5)
			for _, highlight := range entry.Highlights {
				w.bullet(highlight, keywords)
			}
			w.pdf.Ln(1.5)
		}
		w.divider()
	}

	if len(sections.PersonalProjects) > 0 {
		w.sectionHeading("Personal Projects")
		for _, project := range sections.PersonalProjects {
			w.plainLine(project.Name, 11, "B", 5.5)
			projectKeywords := append(append([]string{}, keywords...), project.TechStack...)
			if len(project.TechStack) > 0 {
				w.richLine("**Tech Stack:** "+strings.Join(project.TechStack, ", "), 10, 5)
			}
			for _, highlight := range project.Highlights {
				w.bullet(highlight, projectKeywords)
			}
			w.pdf.Ln(1.5)
		}
		w.divider()
	}

	if len(sections.Education) > 0 {
		w.sectionHeading("Education")
		for _, line := range sections.Education {
			w.richLine(pipeline.Emphasize(line, keywords), 10.5, 5)
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

func renderCoverLetterPDF(req *models.CoverLetterRenderRequest) ([]byte, error) {
	w := newPDFWriter()

	w.plainLine(req.FullName, 16, "B", 7)
	w.plainLine(joinParts(" | ", req.RoleTitle, req.CompanyName), 11, "", 5.5)
	w.divider()

	for _, paragraph := range splitParagraphs(req.CoverLetter) {
		w.richLine(paragraph, 11, 5.5)
		w.pdf.Ln(2.5)
	}

	return w.output()
}

// splitParagraphs breaks free text on blank lines so sanitization does not
// flatten paragraph structure
func splitParagraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

func joinParts(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
