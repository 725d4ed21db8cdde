package project_test

import (
	"testing"
	"time"

	"deptrack-core/internal/domain/project"
	"deptrack-core/internal/domain/user"
)

func TestNewProject_Defaults(t *testing.T) {
	p, err := project.NewProject(user.NewUserID(), "rails/rails", "", "", "gem 'rails'")
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}

	if p.Branch() != project.DefaultBranch {
		t.Errorf("Branch() = %q, want %q", p.Branch(), project.DefaultBranch)
	}
	if p.ManifestPath() != project.DefaultManifestPath {
		t.Errorf("ManifestPath() = %q, want %q", p.ManifestPath(), project.DefaultManifestPath)
	}
	if p.Source() != project.SourceGitHub {
		t.Errorf("Source() = %q, want %q", p.Source(), project.SourceGitHub)
	}
}

func TestNewProject_InvalidFullName(t *testing.T) {
	if _, err := project.NewProject(user.NewUserID(), "rails", "master", "Gemfile", "content"); err == nil {
		t.Error("NewProject() with bad full name should fail")
	}
}

func TestReplaceContent(t *testing.T) {
	p, err := project.NewProject(user.NewUserID(), "rails/rails", "master", "Gemfile", "old")
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}

	id := p.ID()
	before := p.ImportedAt()
	time.Sleep(time.Millisecond)

	p.ReplaceContent("new")

	if p.Content() != "new" {
		t.Errorf("Content() = %q, want %q", p.Content(), "new")
	}
	if !p.ID().Equals(id) {
		t.Error("ReplaceContent() must not change the project identity")
	}
	if !p.ImportedAt().After(before) {
		t.Error("ReplaceContent() must advance the import time")
	}
}
