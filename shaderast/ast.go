package shaderast

import "fmt"

// TyLit is a shader value type, restricted to the set a DrawQuad-derived
// instance/uniform/geometry/texture slot can hold.
type TyLit int

const (
	TyFloat TyLit = iota
	TyVec2
	TyVec3
	TyVec4
	TyMat4
	TyTexture2D
)

// String renders the type the way shader source spells it.
func (t TyLit) String() string {
	switch t {
	case TyFloat:
		return "float"
	case TyVec2:
		return "vec2"
	case TyVec3:
		return "vec3"
	case TyVec4:
		return "vec4"
	case TyMat4:
		return "mat4"
	case TyTexture2D:
		return "texture2D"
	default:
		return "unknown"
	}
}

// Slots returns the number of 4-byte float32 slots t occupies in an instance
// or uniform buffer. TyTexture2D occupies zero slots — textures are bound
// separately, never packed into the buffer.
func (t TyLit) Slots() int {
	switch t {
	case TyFloat:
		return 1
	case TyVec2:
		return 2
	case TyVec3:
		return 3
	case TyVec4:
		return 4
	case TyMat4:
		return 16
	case TyTexture2D:
		return 0
	default:
		return 0
	}
}

// ParseTyLit maps a shader type keyword to a TyLit, or reports !ok if name
// isn't a recognized type.
func ParseTyLit(name string) (TyLit, bool) {
	switch name {
	case "float":
		return TyFloat, true
	case "vec2":
		return TyVec2, true
	case "vec3":
		return TyVec3, true
	case "vec4":
		return TyVec4, true
	case "mat4":
		return TyMat4, true
	case "texture2D":
		return TyTexture2D, true
	default:
		return 0, false
	}
}

// DeclKind identifies which declaration variant a Decl holds, since Go has
// no sum types — the closed set mirrors the original's Decl enum, scoped
// down to the four variants this package's mapping derivation needs.
type DeclKind int

const (
	DeclGeometry DeclKind = iota
	DeclInstance
	DeclUniform
	DeclTexture
)

// Decl is one top-level declaration parsed out of a shader fragment.
type Decl struct {
	Kind  DeclKind
	Span  Span
	Ident string
	Ty    TyLit
	// Block is the uniform block name, set only for DeclUniform
	// declarations inside a `uniform <name> { ... }` block.
	Block string
}

// ShaderAst is the full declaration list parsed out of one or more
// concatenated shader fragments.
type ShaderAst struct {
	Decls []Decl
}

// FindGeometryDecl returns the geometry declaration named ident, if any.
func (a *ShaderAst) FindGeometryDecl(ident string) (Decl, bool) {
	return a.find(DeclGeometry, ident)
}

// FindInstanceDecl returns the instance declaration named ident, if any.
func (a *ShaderAst) FindInstanceDecl(ident string) (Decl, bool) {
	return a.find(DeclInstance, ident)
}

// FindUniformDecl returns the uniform declaration named ident, if any.
func (a *ShaderAst) FindUniformDecl(ident string) (Decl, bool) {
	return a.find(DeclUniform, ident)
}

// FindTextureDecl returns the texture declaration named ident, if any.
func (a *ShaderAst) FindTextureDecl(ident string) (Decl, bool) {
	return a.find(DeclTexture, ident)
}

func (a *ShaderAst) find(kind DeclKind, ident string) (Decl, bool) {
	for _, d := range a.Decls {
		if d.Kind == kind && d.Ident == ident {
			return d, true
		}
	}
	return Decl{}, false
}

// ParseError reports a malformed declaration, with the span of the token
// that triggered it.
type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}
