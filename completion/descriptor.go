package completion

// Spec is one completion specification. The set of implementations is closed;
// each variant carries only the payload meaningful for its kind.
type Spec interface {
	Kind() FlagKind
	sealed()
}

// OptionSpec selects a compopt behavior switch
type OptionSpec struct {
	Option CompOption
}

// ActionSpec selects a bash completion source
type ActionSpec struct {
	Action Action
}

// WordListSpec completes from the descriptor words, paired with the action whose token is emitted alongside them
type WordListSpec struct {
	Action Action
}

type CommandSpec struct{}

type FunctionSpec struct{}

type GlobSpec struct{}

type AffixSpec struct{}

type FilterSpec struct{}

func (OptionSpec) Kind() FlagKind   { return KindOption }
func (ActionSpec) Kind() FlagKind   { return KindAction }
func (WordListSpec) Kind() FlagKind { return KindWordList }
func (CommandSpec) Kind() FlagKind  { return KindCommand }
func (FunctionSpec) Kind() FlagKind { return KindFunction }
func (GlobSpec) Kind() FlagKind     { return KindGlob }
func (AffixSpec) Kind() FlagKind    { return KindAffix }
func (FilterSpec) Kind() FlagKind   { return KindFilter }

func (OptionSpec) sealed()   {}
func (ActionSpec) sealed()   {}
func (WordListSpec) sealed() {}
func (CommandSpec) sealed()  {}
func (FunctionSpec) sealed() {}
func (GlobSpec) sealed()     {}
func (AffixSpec) sealed()    {}
func (FilterSpec) sealed()   {}

// Descriptor holds the state of a single completion: the active Spec (nil while unset),
// the registered words and the index of the word the cursor was on.
type Descriptor struct {
	Spec            Spec
	Words           []string
	CursorWordIndex int
}

// Kind returns the kind of the active Spec, or KindUnset
func (d Descriptor) Kind() FlagKind {
	if d.Spec == nil {
		return KindUnset
	}
	return d.Spec.Kind()
}
