package vocabulary

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// File is the on-disk representation of a custom vocabulary.
type File struct {
	// Skills are added to the built-in vocabulary.
	Skills []string `mapstructure:"skills"`
	// Replace drops the built-in vocabulary instead of extending it.
	Replace bool `mapstructure:"replace"`
}

// LoadFile reads a vocabulary file in any format viper understands
// (yaml, json, toml) and returns the resulting vocabulary.
func LoadFile(path string) (*Vocabulary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("vocabulary file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading vocabulary file %q: %w", path, err)
	}

	var file File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("decoding vocabulary file %q: %w", path, err)
	}

	if file.Replace {
		return New(file.Skills...)
	}

	return Extend(Default(), file.Skills...)
}
