package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// Load opens the diskv-backed gateway using the provided config, falling
// back to the discovered config when nil.
func Load(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	d := diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	return New(d), nil
}

// flatTransform keeps every record in the base directory; the key space is
// small and already prefixed per record type.
func flatTransform(key string) []string {
	return []string{}
}
