// Package certificate renders a printable certificate for a finished
// attempt. The output is a standalone HTML file the student can open in
// a browser and print.
package certificate

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/prepdeck/internal/exam"
)

// Renderer writes certificate files into a directory.
type Renderer struct {
	dir  string
	tmpl *template.Template
}

// NewRenderer creates a Renderer writing into dir.
func NewRenderer(dir string) (*Renderer, error) {
	tmpl, err := template.New("certificate").Parse(certificateHTML)
	if err != nil {
		return nil, fmt.Errorf("parse certificate template: %w", err)
	}
	return &Renderer{dir: dir, tmpl: tmpl}, nil
}

// certData is the template input.
type certData struct {
	Name       string
	Class      string
	Subject    string
	Score      int
	Total      int
	Percentage string
	Band       string
	BandClass  string
	Sections   []exam.SectionScore
	Date       string
}

// Render writes the certificate for result and returns the file path.
func (r *Renderer) Render(result *exam.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("render certificate: nil result")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create certificate dir: %w", err)
	}

	name := result.StudentName
	if name == "" {
		name = "Student"
	}
	data := certData{
		Name:       name,
		Class:      result.StudentClass,
		Subject:    result.Subject,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: fmt.Sprintf("%.1f", result.Percentage),
		Band:       string(result.Band),
		BandClass:  strings.ToLower(string(result.Band)),
		Date:       result.FinishedAt.Format("2 January 2006"),
	}
	if len(result.Sections) > 1 {
		data.Sections = result.Sections
	}

	path := filepath.Join(r.dir, fileName(name, result.FinishedAt))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate file: %w", err)
	}
	defer f.Close()

	if err := r.tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("render certificate: %w", err)
	}
	return path, nil
}

// fileName builds a filesystem-safe certificate name.
func fileName(student string, at time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, student)
	if slug == "" {
		slug = "student"
	}
	return fmt.Sprintf("certificate-%s-%s.html", slug, at.Format("20060102-150405"))
}

const certificateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Certificate - {{.Name}}</title>
<style>
  body { font-family: Georgia, serif; background: #f5f2e8; margin: 0; padding: 40px; }
  .cert { max-width: 720px; margin: 0 auto; background: #fffdf5; border: 6px double #8a6d3b; padding: 48px; text-align: center; }
  h1 { letter-spacing: 4px; color: #8a6d3b; margin-bottom: 8px; }
  .student { font-size: 2em; margin: 24px 0 8px; }
  .detail { color: #555; margin: 4px 0; }
  .band { display: inline-block; margin-top: 16px; padding: 6px 24px; border-radius: 4px; font-weight: bold; color: #fff; }
  .band.pass { background: #2e7d32; }
  .band.average { background: #f9a825; }
  .band.fail { background: #c62828; }
  table { margin: 24px auto 0; border-collapse: collapse; }
  td, th { border: 1px solid #c9b88a; padding: 6px 18px; }
  .date { margin-top: 32px; color: #777; font-size: 0.9em; }
</style>
</head>
<body>
<div class="cert">
  <h1>CERTIFICATE</h1>
  <p class="detail">This is to certify that</p>
  <p class="student">{{.Name}}</p>
  {{if .Class}}<p class="detail">Class {{.Class}}</p>{{end}}
  <p class="detail">appeared in the <strong>{{.Subject}}</strong> test and scored</p>
  <p class="detail"><strong>{{.Score}} / {{.Total}}</strong> ({{.Percentage}}%)</p>
  <span class="band {{.BandClass}}">{{.Band}}</span>
  {{if .Sections}}
  <table>
    <tr><th>Section</th><th>Score</th></tr>
    {{range .Sections}}<tr><td>{{.Subject}}</td><td>{{.Correct}} / {{.Total}}</td></tr>
    {{end}}
  </table>
  {{end}}
  <p class="date">{{.Date}}</p>
</div>
</body>
</html>
`
