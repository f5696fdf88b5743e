package completion

import (
	"strings"

	"github.com/iancoleman/strcase"
	orderedmap "github.com/wk8/go-ordered-map"
)

var (
	actionRegistry = orderedmap.New()
	optionRegistry = orderedmap.New()
	kindRegistry   = orderedmap.New()
	// canonical names in registration order, aliases excluded
	actionOrder []Action
)

func init() {
	aliases := map[Action][]string{
		ActionArrayVar:  {"array-var", "array-variable"},
		ActionBuiltin:   {"builtins"},
		ActionCommand:   {"commands"},
		ActionDirectory: {"dir", "directories"},
		ActionDisabled:  {"disabled-builtin"},
		ActionEnabled:   {"enabled-builtin"},
		ActionExport:    {"exported", "exported-variable"},
		ActionFile:      {"files"},
		ActionHelpTopic: {"help-topic"},
		ActionJob:       {"jobs"},
		ActionRunning:   {"running-jobs", "running-job"},
		ActionService:   {"services"},
		ActionSetOpt:    {"set-opt", "set-option"},
		ActionShopt:     {"shopt-option"},
		ActionSignal:    {"signals"},
		ActionStopped:   {"stopped-jobs", "stopped-job"},
		ActionUser:      {"users"},
		ActionVariable:  {"variables"},
	}
	for i := range actionTable {
		a := Action(i)
		actionOrder = append(actionOrder, a)
		actionRegistry.Set(a.Name(), a)
		for _, alias := range aliases[a] {
			actionRegistry.Set(alias, a)
		}
	}

	for i := range optionNames {
		o := CompOption(i)
		optionRegistry.Set(o.String(), o)
	}
	optionRegistry.Set("bash-default", OptionBashDefault)
	optionRegistry.Set("dir-names", OptionDirNames)
	optionRegistry.Set("file-names", OptionFileNames)
	optionRegistry.Set("no-quote", OptionNoQuote)
	optionRegistry.Set("no-sort", OptionNoSort)
	optionRegistry.Set("no-space", OptionNoSpace)
	optionRegistry.Set("plus-dirs", OptionPlusDirs)

	for k := KindOption; k <= KindFilter; k++ {
		kindRegistry.Set(k.String(), k)
	}
	kindRegistry.Set("words", KindWordList)
	kindRegistry.Set("prefix", KindAffix)
	kindRegistry.Set("suffix", KindAffix)
}

func normalizeName(name string) string {
	return strcase.ToKebab(strings.TrimSpace(name))
}

// ParseAction resolves an action by name ("directory", "RunningJobs", "help_topic")
// or by its short token ("-d")
func ParseAction(name string) (Action, bool) {
	trimmed := strings.TrimSpace(name)
	if strings.HasPrefix(trimmed, "-") {
		for _, a := range actionOrder {
			if token, ok := a.Token(); ok && token == trimmed {
				return a, true
			}
		}
		return 0, false
	}
	v, ok := actionRegistry.Get(normalizeName(trimmed))
	if !ok {
		return 0, false
	}
	return v.(Action), true
}

// ParseOption resolves a compopt switch by name ("nospace", "NoSpace", "no_space")
func ParseOption(name string) (CompOption, bool) {
	// the canonical names are single lowercase words, try them before kebab-casing
	if v, ok := optionRegistry.Get(strings.ToLower(strings.TrimSpace(name))); ok {
		return v.(CompOption), true
	}
	v, ok := optionRegistry.Get(normalizeName(name))
	if !ok {
		return 0, false
	}
	return v.(CompOption), true
}

// ParseKind resolves a FlagKind by name ("word-list", "WordList", "word_list")
func ParseKind(name string) (FlagKind, bool) {
	v, ok := kindRegistry.Get(normalizeName(name))
	if !ok {
		return KindUnset, false
	}
	return v.(FlagKind), true
}

// Actions returns every action in the order of the bash manual
func Actions() []Action {
	return append([]Action(nil), actionOrder...)
}

// ActionNames returns every registered action name, aliases included, in registration order
func ActionNames() []string {
	names := make([]string, 0, actionRegistry.Len())
	for pair := actionRegistry.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}
