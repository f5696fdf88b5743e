// Package config loads completion descriptor files and turns them into builders.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/klymene/klymene/completion"
	"github.com/klymene/klymene/internal/parse"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingApp        = errors.New("missing application name")
	ErrUnknownKind       = errors.New("unknown completion kind")
	ErrUnknownAction     = errors.New("unknown completion action")
	ErrUnknownOption     = errors.New("unknown completion option")
	ErrMissingPayload    = errors.New("completion kind requires a value")
	ErrUnsupportedFormat = errors.New("unsupported descriptor format")
	ErrInvalidWords      = errors.New("words must be a string or a list of strings")
)

// File is the on-disk form of a completion descriptor
type File struct {
	App    string `yaml:"app" toml:"app"`
	Kind   string `yaml:"kind" toml:"kind"`
	Action string `yaml:"action" toml:"action"`
	Option string `yaml:"option" toml:"option"`
	Words  Words  `yaml:"words" toml:"words"`
	Cursor int    `yaml:"cursor" toml:"cursor"`
}

// Words accepts either a list of words or a single shell-quoted string
type Words []string

func (w *Words) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		return w.setString(s)
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidWords, err)
		}
		*w = list
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidWords, node.Line)
	}
}

func (w *Words) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		return w.setString(v)
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: got %T", ErrInvalidWords, item)
			}
			list = append(list, s)
		}
		*w = list
		return nil
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidWords, data)
	}
}

func (w *Words) setString(s string) error {
	words, err := parse.Split(s)
	if err != nil {
		return err
	}
	*w = words
	return nil
}

// Builder returns a builder populated from the descriptor.
// An empty kind is inferred from the action or option field, and stays unset when neither is given.
func (f *File) Builder() (*completion.Builder, error) {
	if strings.TrimSpace(f.App) == "" {
		return nil, ErrMissingApp
	}

	spec, err := f.spec()
	if err != nil {
		return nil, err
	}

	b := completion.NewBuilder(f.App)
	b.SetSpec(spec)
	if len(f.Words) > 0 {
		b.RegisterWords(f.Words)
	}
	b.SetCursorWordIndex(f.Cursor)

	return b, nil
}

func (f *File) kind() (completion.FlagKind, error) {
	if strings.TrimSpace(f.Kind) == "" {
		switch {
		case f.Action != "":
			return completion.KindAction, nil
		case f.Option != "":
			return completion.KindOption, nil
		}
		return completion.KindUnset, nil
	}

	kind, ok := completion.ParseKind(f.Kind)
	if !ok {
		return completion.KindUnset, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	return kind, nil
}

func (f *File) spec() (completion.Spec, error) {
	kind, err := f.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case completion.KindAction, completion.KindWordList:
		action, err := f.action(kind)
		if err != nil {
			return nil, err
		}
		if kind == completion.KindWordList {
			return completion.WordListSpec{Action: action}, nil
		}
		return completion.ActionSpec{Action: action}, nil
	case completion.KindOption:
		if f.Option == "" {
			return nil, fmt.Errorf("%w: %s needs an option", ErrMissingPayload, kind)
		}
		opt, ok := completion.ParseOption(f.Option)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, f.Option)
		}
		return completion.OptionSpec{Option: opt}, nil
	case completion.KindCommand:
		return completion.CommandSpec{}, nil
	case completion.KindFunction:
		return completion.FunctionSpec{}, nil
	case completion.KindGlob:
		return completion.GlobSpec{}, nil
	case completion.KindAffix:
		return completion.AffixSpec{}, nil
	case completion.KindFilter:
		return completion.FilterSpec{}, nil
	}

	return nil, nil
}

func (f *File) action(kind completion.FlagKind) (completion.Action, error) {
	if f.Action == "" {
		return 0, fmt.Errorf("%w: %s needs an action", ErrMissingPayload, kind)
	}
	action, ok := completion.ParseAction(f.Action)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, f.Action)
	}
	return action, nil
}
