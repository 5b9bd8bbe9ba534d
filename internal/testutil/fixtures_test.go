package testutil

import (
	"testing"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/errors"
	"github.com/firefly-engineering/rizzo/internal/resolver"
	"github.com/firefly-engineering/rizzo/internal/validate"
)

func TestPersonalConfigFixture(t *testing.T) {
	doc, err := PersonalConfig()
	if err != nil {
		t.Fatalf("PersonalConfig() error: %v", err)
	}

	repos, err := resolver.ControlRepos(doc)
	if err != nil {
		t.Fatalf("ControlRepos() error: %v", err)
	}
	if len(repos) != 2 || repos[0] != "~/src/control-a" {
		t.Errorf("control_repos = %v", repos)
	}
}

func TestRepoFixturesValidate(t *testing.T) {
	for _, load := range []func() (document.Document, error){RepoNodes, RepoDefaults} {
		doc, err := load()
		if err != nil {
			t.Fatalf("fixture error: %v", err)
		}
		if err := validate.Config(doc); err != nil {
			t.Errorf("Config() error: %v", err)
		}
	}
}

func TestDuplicateFixtures(t *testing.T) {
	port, err := DuplicatePort()
	if err != nil {
		t.Fatalf("DuplicatePort() error: %v", err)
	}
	if err := validate.Config(port); !errors.HasCode(err, errors.ExitDuplicatePort) {
		t.Errorf("Config(duplicate_port) = %v, want duplicate port", err)
	}

	ip, err := DuplicateIP()
	if err != nil {
		t.Fatalf("DuplicateIP() error: %v", err)
	}
	if err := validate.Config(ip); !errors.HasCode(err, errors.ExitDuplicateIP) {
		t.Errorf("Config(duplicate_ip) = %v, want duplicate ip", err)
	}
}

func TestLoadFixture_Missing(t *testing.T) {
	if _, err := LoadFixture("nope.json"); err == nil {
		t.Error("LoadFixture() should fail for an unknown fixture")
	}
}
