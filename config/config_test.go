package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klymene/klymene/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "demo.yaml", `
app: demo
kind: word-list
action: directory
words: [a, b]
cursor: 1
`)

	f, err := NewLoader(nil).LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, &File{
		App:    "demo",
		Kind:   "word-list",
		Action: "directory",
		Words:  Words{"a", "b"},
		Cursor: 1,
	}, f)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeFile(t, "demo.toml", `
app = "demo"
kind = "action"
action = "-d"
words = "a 'b c'"
`)

	f, err := NewLoader(nil).LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", f.App)
	assert.Equal(t, "action", f.Kind)
	assert.Equal(t, "-d", f.Action)
	assert.Equal(t, Words{"a", "b c"}, f.Words)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := NewLoader(nil).LoadFromFile(filepath.Join(t.TempDir(), "demo.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewLoader(nil).LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read descriptor file")
}

func TestLoad_YAMLWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Words
		wantErr error
	}{
		{name: "list", content: "app: x\nwords: [start, stop]\n", want: Words{"start", "stop"}},
		{name: "block list", content: "app: x\nwords:\n  - start\n  - two words\n", want: Words{"start", "two words"}},
		{name: "quoted string", content: "app: x\nwords: \"start 'two words'\"\n", want: Words{"start", "two words"}},
		{name: "mapping", content: "app: x\nwords:\n  a: b\n", wantErr: ErrInvalidWords},
		{name: "no words", content: "app: x\n", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewLoader(nil).Load([]byte(tt.content), FormatYAML)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Words)
		})
	}
}

func TestLoad_YAMLRejectsUnknownKeys(t *testing.T) {
	_, err := NewLoader(nil).Load([]byte("app: x\nshell: zsh\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yaml")
}

func TestLoad_EmptyYAML(t *testing.T) {
	f, err := NewLoader(nil).Load(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestLoad_TOMLWarnsOnUnknownKeys(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	loader := NewLoader(zap.New(core))

	f, err := loader.Load([]byte("app = \"x\"\nshell = \"zsh\"\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "x", f.App)

	warnings := logs.FilterMessage("ignoring unknown descriptor key").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "shell", warnings[0].ContextMap()["key"])
}

func TestLoad_TOMLInvalidWords(t *testing.T) {
	_, err := NewLoader(nil).Load([]byte("app = \"x\"\nwords = [1, 2]\n"), FormatTOML)
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := NewLoader(nil).Load([]byte("app: x"), Format(7))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "a.yaml", want: FormatYAML},
		{path: "a.YML", want: FormatYAML},
		{path: "dir/a.toml", want: FormatTOML},
		{path: "a.json", wantErr: true},
		{path: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFile_Builder(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		wantSpec completion.Spec
		wantErr  error
	}{
		{name: "word list", file: File{App: "demo", Kind: "word-list", Action: "file"}, wantSpec: completion.WordListSpec{Action: completion.ActionFile}},
		{name: "action", file: File{App: "demo", Kind: "action", Action: "RunningJobs"}, wantSpec: completion.ActionSpec{Action: completion.ActionRunning}},
		{name: "inferred action", file: File{App: "demo", Action: "user"}, wantSpec: completion.ActionSpec{Action: completion.ActionUser}},
		{name: "option", file: File{App: "demo", Kind: "option", Option: "nospace"}, wantSpec: completion.OptionSpec{Option: completion.OptionNoSpace}},
		{name: "inferred option", file: File{App: "demo", Option: "no_sort"}, wantSpec: completion.OptionSpec{Option: completion.OptionNoSort}},
		{name: "command", file: File{App: "demo", Kind: "command"}, wantSpec: completion.CommandSpec{}},
		{name: "function", file: File{App: "demo", Kind: "function"}, wantSpec: completion.FunctionSpec{}},
		{name: "glob", file: File{App: "demo", Kind: "glob"}, wantSpec: completion.GlobSpec{}},
		{name: "affix", file: File{App: "demo", Kind: "suffix"}, wantSpec: completion.AffixSpec{}},
		{name: "filter", file: File{App: "demo", Kind: "filter"}, wantSpec: completion.FilterSpec{}},
		{name: "unset", file: File{App: "demo"}, wantSpec: nil},
		{name: "missing app", file: File{Kind: "action", Action: "file"}, wantErr: ErrMissingApp},
		{name: "blank app", file: File{App: "  "}, wantErr: ErrMissingApp},
		{name: "unknown kind", file: File{App: "demo", Kind: "shell"}, wantErr: ErrUnknownKind},
		{name: "unknown action", file: File{App: "demo", Kind: "action", Action: "nope"}, wantErr: ErrUnknownAction},
		{name: "unknown option", file: File{App: "demo", Kind: "option", Option: "nope"}, wantErr: ErrUnknownOption},
		{name: "action without value", file: File{App: "demo", Kind: "action"}, wantErr: ErrMissingPayload},
		{name: "word list without action", file: File{App: "demo", Kind: "word-list"}, wantErr: ErrMissingPayload},
		{name: "option without value", file: File{App: "demo", Kind: "option"}, wantErr: ErrMissingPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.file.Builder()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.file.App, b.AppName())
			assert.Equal(t, tt.wantSpec, b.Descriptor().Spec)
		})
	}
}

func TestFile_BuilderRendersScenario(t *testing.T) {
	f, err := NewLoader(nil).Load([]byte("app: demo\naction: directory\nwords: a b\ncursor: 3\n"), FormatYAML)
	require.NoError(t, err)

	b, err := f.Builder()
	require.NoError(t, err)
	assert.Equal(t, 3, b.Descriptor().CursorWordIndex)

	want := completion.NewBuilder("demo")
	want.SetAction(completion.ActionDirectory)
	want.RegisterWords([]string{"a", "b"})
	assert.Equal(t, want.Render(), b.Render())
}
