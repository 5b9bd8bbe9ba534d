// Package testutil provides test fixtures and an on-disk test environment.
//
// # Fixtures
//
// JSON fixtures are embedded using go:embed:
//
//	fixtures/personal.json        // two control repos under ~/src
//	fixtures/repo_nodes.json      // defaults plus two nodes
//	fixtures/repo_defaults.json   // defaults only
//	fixtures/duplicate_port.json  // host port 8080 used twice
//	fixtures/duplicate_ip.json    // ip 10.0.0.1 used twice
//
// Raw bytes come from LoadFixture, parsed documents from LoadDocumentFixture
// or the named helpers (PersonalConfig, RepoNodes, ...).
//
// # Test Environment
//
//	env := testutil.NewTestEnv(t)
//	repo := env.AddFixtureRepo("control", "repo_nodes.json")
//	env.WritePersonalConfig(repo)
//	env.Chdir(repo)
//	doc, err := env.App.Resolve()
//
// NewTestEnv swaps app.Default for the duration of the test, so command
// tests resolve against the temporary HOME.
package testutil
