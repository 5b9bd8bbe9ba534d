package testutil

import (
	"embed"

	"github.com/firefly-engineering/rizzo/internal/document"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// LoadFixture loads a JSON fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadDocumentFixture loads and parses a fixture.
func LoadDocumentFixture(name string) (document.Document, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return document.Parse(data)
}

// PersonalConfig returns the personal config fixture listing two control repos.
func PersonalConfig() (document.Document, error) {
	return LoadDocumentFixture("personal.json")
}

// RepoNodes returns an override defining two nodes with distinct ports and ips.
func RepoNodes() (document.Document, error) {
	return LoadDocumentFixture("repo_nodes.json")
}

// RepoDefaults returns an override that only changes defaults.
func RepoDefaults() (document.Document, error) {
	return LoadDocumentFixture("repo_defaults.json")
}

// DuplicatePort returns an override whose nodes share host port 8080.
func DuplicatePort() (document.Document, error) {
	return LoadDocumentFixture("duplicate_port.json")
}

// DuplicateIP returns an override whose nodes share ip 10.0.0.1.
func DuplicateIP() (document.Document, error) {
	return LoadDocumentFixture("duplicate_ip.json")
}
