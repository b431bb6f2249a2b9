package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/prepdeck/internal/exam"
)

func loadFrom(t *testing.T, dir string) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(t, t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SubjectTest.Questions != 10 {
		t.Errorf("questions = %d, want 10", cfg.SubjectTest.Questions)
	}
	if cfg.SubjectTest.Duration != 10*time.Minute {
		t.Errorf("duration = %s, want 10m", cfg.SubjectTest.Duration)
	}
	if cfg.FullMock.Duration != 60*time.Minute {
		t.Errorf("mock duration = %s, want 60m", cfg.FullMock.Duration)
	}
	if cfg.Leaderboard.Size != 5 {
		t.Errorf("leaderboard size = %d, want 5", cfg.Leaderboard.Size)
	}

	total := 0
	for _, s := range cfg.FullMock.Sections {
		total += s.Count
	}
	if total != 50 {
		t.Errorf("mock total = %d, want 50", total)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
subjects: ["History"]
subject_test:
  questions: 20
  duration: 15m
leaderboard:
  size: 10
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFrom(t, dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SubjectTest.Questions != 20 {
		t.Errorf("questions = %d, want 20", cfg.SubjectTest.Questions)
	}
	if cfg.SubjectTest.Duration != 15*time.Minute {
		t.Errorf("duration = %s, want 15m", cfg.SubjectTest.Duration)
	}
	if cfg.Leaderboard.Size != 10 {
		t.Errorf("leaderboard size = %d, want 10", cfg.Leaderboard.Size)
	}
	if len(cfg.Subjects) != 1 || cfg.Subjects[0] != "History" {
		t.Errorf("subjects = %v, want [History]", cfg.Subjects)
	}
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	dir := t.TempDir()
	yaml := `
subject_test:
  questions: -3
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := loadFrom(t, dir); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_DBPathFromEnv(t *testing.T) {
	t.Setenv("PREPDECK_DB", "/tmp/custom.db")

	cfg, err := loadFrom(t, t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("db path = %q, want /tmp/custom.db", cfg.DBPath)
	}
}

func TestExamConfigs(t *testing.T) {
	cfg, err := loadFrom(t, t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sub := cfg.SubjectExam("Science")
	if sub.Mode != exam.ModeSubject || sub.Subject != "Science" || sub.Total() != 10 {
		t.Errorf("subject exam = %+v", sub)
	}
	if err := sub.Validate(); err != nil {
		t.Errorf("subject exam invalid: %v", err)
	}

	mock := cfg.FullMockExam()
	if mock.Mode != exam.ModeFullMock || mock.Total() != 50 {
		t.Errorf("mock exam = %+v", mock)
	}
	if err := mock.Validate(); err != nil {
		t.Errorf("mock exam invalid: %v", err)
	}
}
