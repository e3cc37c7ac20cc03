package signals

import (
	"bytes"
	"log/slog"
	"sort"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// EnvTemplateFiles are committed environment templates. The real .env file is
// never read: only its presence matters (see classify.Security).
var EnvTemplateFiles = []string{".env.example", ".env.sample", ".env.template"}

// ReadEnvTemplate returns the template file used and its variable names, sorted.
func ReadEnvTemplate(src *source.Source) (file string, keys []string, err error) {
	for _, name := range EnvTemplateFiles {
		data, found, err := src.ReadOptional(name)
		if err != nil {
			return name, nil, err
		}
		if !found {
			continue
		}
		values, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			slog.Debug("Malformed env template treated as empty", logfields.File(name), logfields.Error(err))
			return name, nil, nil
		}
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return name, keys, nil
	}
	return "", nil, nil
}
