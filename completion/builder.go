package completion

import "strings"

// Builder accumulates the completion descriptor for a single application and renders
// it to a bash script. A Builder must not be shared between goroutines.
type Builder struct {
	appName    string
	descriptor Descriptor
	generator  BashGenerator
	out        strings.Builder
}

// NewBuilder creates a builder for appName with an unset descriptor. appName is used
// verbatim in the generated function name and is not validated.
func NewBuilder(appName string) *Builder {
	return &Builder{appName: appName}
}

// AppName returns the application name the builder was created with
func (b *Builder) AppName() string {
	return b.appName
}

// Descriptor returns a copy of the current descriptor
func (b *Builder) Descriptor() Descriptor {
	d := b.descriptor
	if d.Words != nil {
		d.Words = append([]string(nil), d.Words...)
	}
	return d
}

// SetAction makes the descriptor an action completion. Registered words are kept.
func (b *Builder) SetAction(flag Action) {
	b.descriptor.Spec = ActionSpec{Action: flag}
}

// SetOption makes the descriptor a compopt behavior switch
func (b *Builder) SetOption(opt CompOption) {
	b.descriptor.Spec = OptionSpec{Option: opt}
}

// SetWordList makes the descriptor a word-list completion paired with flag
func (b *Builder) SetWordList(flag Action) {
	b.descriptor.Spec = WordListSpec{Action: flag}
}

// SetSpec replaces the active spec. A nil spec resets the descriptor to unset.
func (b *Builder) SetSpec(spec Spec) {
	b.descriptor.Spec = spec
}

// RegisterWords sets the candidate or subcommand words without touching the kind
func (b *Builder) RegisterWords(words []string) {
	b.descriptor.Words = append([]string(nil), words...)
}

// SetCursorWordIndex records which word the cursor was on. Rendering ignores it.
func (b *Builder) SetCursorWordIndex(idx int) {
	b.descriptor.CursorWordIndex = idx
}

// Render returns the bash completion script for the current state.
// Each call starts from an empty buffer, so repeated calls return identical text.
func (b *Builder) Render() string {
	b.out.Reset()
	b.generator.Write(&b.out, b.appName, b.descriptor)
	return b.out.String()
}
