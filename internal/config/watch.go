package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
)

// Watch reloads the configuration whenever the file at path changes and
// passes the result to onChange. Load or validation failures are passed to
// onError and the previous configuration stays in effect. The returned
// function stops watching.
func Watch(path string, onChange func(*Config), onError func(error)) (func() error, error) {
	fp := file.Provider(path)
	err := fp.Watch(func(_ interface{}, err error) {
		if err != nil {
			onError(fmt.Errorf("watching %s: %w", path, err))
			return
		}
		cfg, err := Load(path)
		if err != nil {
			onError(err)
			return
		}
		if err := cfg.Validate(); err != nil {
			onError(fmt.Errorf("invalid config %s: %w", path, err))
			return
		}
		onChange(cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return fp.Unwatch, nil
}
