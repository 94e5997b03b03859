package shaderast

// Backend turns a parsed ShaderAst plus its derived ShaderMapping into
// backend-native shader source (GLSL/HLSL/MSL) and compiles it. No concrete
// implementation lives in this module — compiling to a specific GPU API is
// a platform-backend concern, not a core-runtime one; a real GPU backend
// package implements this interface against shaderast's output.
type Backend interface {
	// Compile turns ast/mapping into a backend-native compiled program
	// handle, or an error describing what in the shader failed to compile.
	Compile(ast *ShaderAst, mapping ShaderMapping) (CompiledProgram, error)
}

// CompiledProgram is an opaque, backend-owned handle to a compiled shader
// program. Its only role in this module is as Backend's return type.
type CompiledProgram interface {
	// Release frees the backend resources the compiled program holds.
	Release()
}
