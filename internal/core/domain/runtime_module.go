package domain

import "strings"

// RuntimeGlobals is a set of runtime capabilities a chunk requires.
type RuntimeGlobals uint32

const (
	// RuntimeGlobalRequire is the module require function.
	RuntimeGlobalRequire RuntimeGlobals = 1 << iota
	// RuntimeGlobalRuntimeID exposes the identity of the executing runtime.
	RuntimeGlobalRuntimeID
	// RuntimeGlobalShareScopeMap exposes the share scopes of the sharing runtime.
	RuntimeGlobalShareScopeMap
)

var runtimeGlobalNames = []struct {
	global RuntimeGlobals
	name   string
}{
	{RuntimeGlobalRequire, "__webpack_require__"},
	{RuntimeGlobalRuntimeID, "__webpack_require__.j"},
	{RuntimeGlobalShareScopeMap, "__webpack_require__.S"},
}

// Insert adds g to the set.
func (r *RuntimeGlobals) Insert(g RuntimeGlobals) {
	*r |= g
}

// Contains reports whether every capability of g is in the set.
func (r RuntimeGlobals) Contains(g RuntimeGlobals) bool {
	return r&g == g
}

// String lists the runtime expressions of the set.
func (r RuntimeGlobals) String() string {
	var names []string
	for _, entry := range runtimeGlobalNames {
		if r.Contains(entry.global) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ", ")
}

// RuntimeModuleStage orders generated runtime modules within a chunk.
type RuntimeModuleStage int

const (
	// StageNormal runs with the regular runtime modules.
	StageNormal RuntimeModuleStage = 0
	// StageBasic runs before regular runtime modules.
	StageBasic RuntimeModuleStage = -10
	// StageAttach runs after regular runtime modules.
	StageAttach RuntimeModuleStage = 10
	// StageTrigger runs last.
	StageTrigger RuntimeModuleStage = 20
)

// RuntimeModule is a generated module attached to a chunk's runtime.
type RuntimeModule struct {
	Name   string
	Stage  RuntimeModuleStage
	Source string
	// Hash is the content hash of Source.
	Hash string
}
