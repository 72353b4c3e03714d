package disk

import (
	"starlight/config"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog/log"
)

const cacheSizeMax = 1024 * 1024 // 1MB

// New opens a flat diskv store rooted at basePath, or at the configured
// journal path when basePath is empty.
func New(config *config.Config, basePath string) *diskv.Diskv {
	if basePath == "" {
		basePath = config.Journal.Diskv.BasePath
	}

	log.Info().Str("basePath", basePath).Msg("Opening diskv journal store")

	return diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
	})
}
