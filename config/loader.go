package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a descriptor file
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the string representation of a Format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatYAML, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Loader reads completion descriptor files
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadFromFile reads and decodes the descriptor at path
func (l *Loader) LoadFromFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file: %w", err)
	}

	f, err := l.Load(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.logger.Debug("loaded completion descriptor",
		zap.String("path", path),
		zap.String("app", f.App),
		zap.String("kind", f.Kind),
		zap.Int("words", len(f.Words)))

	return f, nil
}

// Load decodes a descriptor. Unknown keys are rejected for YAML and logged for TOML.
func (l *Loader) Load(content []byte, format Format) (*File, error) {
	f := &File{}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		for _, key := range md.Undecoded() {
			l.logger.Warn("ignoring unknown descriptor key", zap.String("key", key.String()))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return f, nil
}
