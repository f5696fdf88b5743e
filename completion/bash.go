package completion

import (
	"fmt"
	"strings"
)

const functionNameFormat = "__%s_autoCompleteKlymeneApp"

// FunctionName returns the name of the completion function generated for appName
func FunctionName(appName string) string {
	return fmt.Sprintf(functionNameFormat, appName)
}

// RegisterLine returns the complete builtin invocation that binds the generated function to appName
func RegisterLine(appName string) string {
	return fmt.Sprintf("complete -F %s %s", FunctionName(appName), appName)
}

// BashGenerator serializes a Descriptor into a bash completion script
type BashGenerator struct{}

// Generate returns the script for appName and d
func (g *BashGenerator) Generate(appName string, d Descriptor) string {
	var script strings.Builder
	g.Write(&script, appName, d)
	return script.String()
}

// Write appends the script for appName and d to script
func (g *BashGenerator) Write(script *strings.Builder, appName string, d Descriptor) {
	script.WriteString(fmt.Sprintf(`#!/usr/bin/env bash
%s() {
    local cur=${COMP_WORDS[COMP_CWORD]}
    local prev=${COMP_WORDS[COMP_CWORD-1]}
    COMPREPLY=()
}
`, FunctionName(appName)))

	// The word list lands after the closing brace and is never fed to COMPREPLY.
	if action, ok := wordListAction(d); ok {
		script.WriteString(fmt.Sprintf(` %s
 "%s"
 %s
`, action, strings.Join(d.Words, " "), appName))
	}
}

// wordListAction reports the action whose token accompanies the word list, if d renders one.
// An action spec renders like a word list once words have been registered.
func wordListAction(d Descriptor) (Action, bool) {
	switch spec := d.Spec.(type) {
	case WordListSpec:
		return spec.Action, true
	case ActionSpec:
		if len(d.Words) > 0 {
			return spec.Action, true
		}
	}
	return 0, false
}
