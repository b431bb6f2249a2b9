package certificate

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepdeck/internal/exam"
)

func testResult() *exam.Result {
	return &exam.Result{
		StudentName:  "Asha Verma",
		StudentClass: "9",
		Mode:         exam.ModeFullMock,
		Subject:      "Full Mock Exam",
		Score:        42,
		Total:        50,
		Percentage:   84,
		Band:         exam.BandPass,
		Sections: []exam.SectionScore{
			{Subject: "Mathematics", Correct: 13, Total: 15},
			{Subject: "Science", Correct: 14, Total: 15},
		},
		FinishedAt: time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	path, err := r.Render(testResult())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(path, "certificate-asha-verma-20260820-143000.html") {
		t.Errorf("unexpected path %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read certificate: %v", err)
	}
	html := string(raw)
	for _, want := range []string{"Asha Verma", "42 / 50", "84.0%", "Pass", "Mathematics", "13 / 15"} {
		if !strings.Contains(html, want) {
			t.Errorf("certificate missing %q", want)
		}
	}
}

func TestRender_EscapesStudentName(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	res := testResult()
	res.StudentName = `<script>alert("x")</script>`
	path, err := r.Render(res)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read certificate: %v", err)
	}
	if strings.Contains(string(raw), "<script>") {
		t.Error("student name not escaped")
	}
}

func TestRender_NilResult(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestFileName_Sanitizes(t *testing.T) {
	at := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	got := fileName("Asha / Verma!?", at)
	if got != "certificate-asha--verma-20260820-143000.html" {
		t.Errorf("fileName = %q", got)
	}
	if fileName("???", at) != "certificate-student-20260820-143000.html" {
		t.Errorf("empty slug fallback broken: %q", fileName("???", at))
	}
}
