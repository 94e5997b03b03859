package zap

import (
	"cogentcore.org/core/base/errors"

	"zaplib.dev/core/shaderast"
)

// shader is the retained per-slot state behind a public Shader handle: the
// concatenated fragment list the caller declared, the compiled AST/mapping,
// and a flag tracking whether a recompile is pending.
type shader struct {
	Fragments []shaderast.Fragment
	Ast       *shaderast.ShaderAst
	Mapping   shaderast.ShaderMapping
	Compiled  bool
	Program   shaderast.CompiledProgram
}

// Shader is a handle into Context.Shaders. It is declared once with
// Fragments and compiled lazily the first time it's used by
// AddInstances.
type Shader struct {
	id          int
	hasID       bool
	fragments   []shaderast.Fragment
}

// Fragments sets (or replaces) the source fragments this Shader concatenates.
// The actual recompile happens lazily in ensureCompiled, which keeps the old
// mapping around until the new one is derived so it can compare the two.
func (s *Shader) Fragments(fragments ...shaderast.Fragment) *Shader {
	s.fragments = fragments
	return s
}

// shaderID resolves sh's Context slot, registering it on first use and
// compiling it if it hasn't been compiled yet or its fragments changed.
func (cx *Context) shaderID(sh *Shader) int {
	if !sh.hasID {
		sh.id = len(cx.Shaders)
		sh.hasID = true
		cx.Shaders = append(cx.Shaders, &shader{})
	}
	cx.ensureCompiled(sh)
	return sh.id
}

// ensureCompiled (re)compiles sh's current fragment list into an AST and
// mapping if it hasn't been compiled yet. A recompile that changes the
// resulting ShaderMapping is rejected and logged — existing draw calls'
// instance buffers are laid out against the old mapping and cannot be
// reinterpreted against an incompatible one, matching the original's
// "Mismatch in shader mapping" ParseError from Shader::update.
func (cx *Context) ensureCompiled(sh *Shader) {
	st := cx.Shaders[sh.id]
	if st.Compiled && fragmentsEqual(st.Fragments, sh.fragments) {
		return
	}

	ast, err := shaderast.ParseFragments(sh.fragments)
	if err != nil {
		errors.Log(err)
		return
	}
	mapping := shaderast.DeriveShaderMapping(ast)

	if st.Compiled && !mapping.CompatibleWith(st.Mapping) {
		errors.Log(&shaderast.ParseError{Msg: "shader recompile changed its instance/uniform layout"})
		return
	}

	st.Fragments = sh.fragments
	st.Ast = ast
	st.Mapping = mapping
	st.Compiled = true
}

func fragmentsEqual(a, b []shaderast.Fragment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
