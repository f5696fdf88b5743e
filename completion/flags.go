package completion

// FlagKind selects which category of Bash completion behavior a descriptor describes.
type FlagKind int

const (
	KindUnset    FlagKind = iota // KindUnset denotes a descriptor with no completion specification
	KindOption   FlagKind = 1    // KindOption denotes a compopt/complete -o behavior switch
	KindAction   FlagKind = 2    // KindAction denotes a complete -A completion source
	KindCommand  FlagKind = 3    // KindCommand denotes a subshell command (complete -C)
	KindFunction FlagKind = 4    // KindFunction denotes a shell function (complete -F)
	KindGlob     FlagKind = 5    // KindGlob denotes a glob pattern (complete -G)
	KindAffix    FlagKind = 6    // KindAffix denotes a prefix/suffix transform (complete -P/-S)
	KindWordList FlagKind = 7    // KindWordList denotes a literal word list (complete -W)
	KindFilter   FlagKind = 8    // KindFilter denotes a filter pattern (complete -X)
)

// String returns the string representation of a FlagKind
func (k FlagKind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindAction:
		return "action"
	case KindCommand:
		return "command"
	case KindFunction:
		return "function"
	case KindGlob:
		return "glob"
	case KindAffix:
		return "affix"
	case KindWordList:
		return "word-list"
	case KindFilter:
		return "filter"
	case KindUnset:
		fallthrough
	default:
		return "unset"
	}
}

// CompOption is one of the behavioral switches accepted by compopt and complete -o.
type CompOption int

const (
	OptionBashDefault CompOption = iota // perform the rest of the default bash completions on no match
	OptionDefault                       // use readline's default filename completion on no match
	OptionDirNames                      // perform directory name completion on no match
	OptionFileNames                     // treat results as filenames
	OptionNoQuote                       // do not quote completed words
	OptionNoSort                        // do not sort the completion list
	OptionNoSpace                       // do not append a space to completed words
	OptionPlusDirs                      // add directory name completion to the results
)

var optionNames = [...]string{
	OptionBashDefault: "bashdefault",
	OptionDefault:     "default",
	OptionDirNames:    "dirnames",
	OptionFileNames:   "filenames",
	OptionNoQuote:     "noquote",
	OptionNoSort:      "nosort",
	OptionNoSpace:     "nospace",
	OptionPlusDirs:    "plusdirs",
}

// String returns the name bash expects after -o
func (o CompOption) String() string {
	if o < 0 || int(o) >= len(optionNames) {
		return "unknown"
	}
	return optionNames[o]
}

// Action is a named source bash can query to produce candidate completions.
type Action int

const (
	ActionAlias Action = iota
	ActionArrayVar
	ActionBinding
	ActionBuiltin
	ActionCommand
	ActionDirectory
	ActionDisabled
	ActionEnabled
	ActionExport
	ActionFile
	ActionFunction
	ActionGroup
	ActionHelpTopic
	ActionHostname
	ActionJob
	ActionKeyword
	ActionRunning
	ActionService
	ActionSetOpt
	ActionShopt
	ActionSignal
	ActionStopped
	ActionUser
	ActionVariable
)

type actionInfo struct {
	name  string
	token string
}

// actionTable follows the order of the -A actions in the bash manual
var actionTable = [...]actionInfo{
	ActionAlias:     {"alias", "-a"},
	ActionArrayVar:  {"arrayvar", ""},
	ActionBinding:   {"binding", ""},
	ActionBuiltin:   {"builtin", "-b"},
	ActionCommand:   {"command", "-c"},
	ActionDirectory: {"directory", "-d"},
	ActionDisabled:  {"disabled", ""},
	ActionEnabled:   {"enabled", ""},
	ActionExport:    {"export", "-e"},
	ActionFile:      {"file", "-f"},
	ActionFunction:  {"function", ""},
	ActionGroup:     {"group", "-g"},
	ActionHelpTopic: {"helptopic", ""},
	ActionHostname:  {"hostname", ""},
	ActionJob:       {"job", "-j"},
	ActionKeyword:   {"keyword", "-k"},
	ActionRunning:   {"running", ""},
	ActionService:   {"service", "-s"},
	ActionSetOpt:    {"setopt", ""},
	ActionShopt:     {"shopt", ""},
	ActionSignal:    {"signal", ""},
	ActionStopped:   {"stopped", ""},
	ActionUser:      {"user", "-u"},
	ActionVariable:  {"variable", "-v"},
}

func (a Action) valid() bool {
	return a >= 0 && int(a) < len(actionTable)
}

// Name returns the action name as accepted by complete -A
func (a Action) Name() string {
	if !a.valid() {
		return "unknown"
	}
	return actionTable[a].name
}

// Token returns the short canonical option for the action, e.g. "-d" for ActionDirectory.
// The second return value is false when bash only knows the action by its -A name.
func (a Action) Token() (string, bool) {
	if !a.valid() || actionTable[a].token == "" {
		return "", false
	}
	return actionTable[a].token, true
}

// String returns the short token when there is one, otherwise the long "-A name" form
func (a Action) String() string {
	if token, ok := a.Token(); ok {
		return token
	}
	return "-A " + a.Name()
}
