package cmd

import (
	"github.com/firefly-engineering/rizzo/internal/app"
	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/resolver"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)

// resolve builds the merged config and returns it with the Resolver that
// produced it, so callers can inspect project detection afterwards.
func resolve() (document.Document, *resolver.Resolver, error) {
	r := app.Default.Resolver()
	doc, err := r.Resolve(app.Default.Paths.PersonalConfig)
	if err != nil {
		return nil, nil, err
	}
	return doc, r, nil
}
