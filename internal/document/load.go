package document

import (
	"github.com/firefly-engineering/rizzo/internal/errors"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/system"
)

// Load reads and parses the JSON object at path. A path that is not a
// readable regular file yields a read error; malformed content yields a
// parse error naming the file.
func Load(fsys system.FileSystem, path string) (Document, error) {
	configFile := system.ExpandPath(path)
	if !fsys.Readable(configFile) {
		return nil, errors.ReadError(configFile, nil)
	}

	data, err := fsys.ReadFile(configFile)
	if err != nil {
		return nil, errors.ReadError(configFile, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.ParseError(configFile, err)
	}

	logging.Debug("loaded config", "path", configFile)
	return doc, nil
}
