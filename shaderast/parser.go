package shaderast

import "fmt"

// Fragment is one named, concatenable shader source fragment. Shaders are
// built by concatenating fragments (a standard library prefix plus
// caller-supplied fragments); each fragment keeps its own name so a parse
// error can be attributed to the fragment that produced it.
type Fragment struct {
	Name   string
	Source string
}

// Parser parses a sequence of Fragments into one ShaderAst. It recognizes
// exactly four declaration forms — geometry, instance, texture, and uniform
// (bare or block) — since expression/function-body parsing and backend code
// generation are out of scope for this package; see Backend.
type Parser struct {
	ast ShaderAst
}

// ParseFragments parses every fragment in order into a single ShaderAst. It
// stops at (and returns) the first parse error encountered.
func ParseFragments(fragments []Fragment) (*ShaderAst, error) {
	p := &Parser{}
	for _, f := range fragments {
		if err := p.parseFragment(f); err != nil {
			return nil, err
		}
	}
	return &p.ast, nil
}

func (p *Parser) parseFragment(f Fragment) error {
	lex := NewLexer(f.Name, f.Source)
	tok := lex.Next()
	for tok.Kind != TokenEOF {
		switch {
		case tok.Kind == TokenIdent && tok.Text == "geometry":
			if err := p.parseSimpleDecl(lex, DeclGeometry); err != nil {
				return err
			}
		case tok.Kind == TokenIdent && tok.Text == "instance":
			if err := p.parseSimpleDecl(lex, DeclInstance); err != nil {
				return err
			}
		case tok.Kind == TokenIdent && tok.Text == "texture":
			if err := p.parseSimpleDecl(lex, DeclTexture); err != nil {
				return err
			}
		case tok.Kind == TokenIdent && tok.Text == "uniform":
			if err := p.parseUniformDecl(lex); err != nil {
				return err
			}
		}
		tok = lex.Next()
	}
	return nil
}

// parseSimpleDecl parses "<ident>: <type>;" following a geometry/instance/
// texture keyword already consumed by the caller.
func (p *Parser) parseSimpleDecl(lex *Lexer, kind DeclKind) error {
	ident := lex.Next()
	if ident.Kind != TokenIdent {
		return &ParseError{Span: ident.Span, Msg: "expected identifier"}
	}
	if colon := lex.Next(); colon.Kind != TokenColon {
		return &ParseError{Span: colon.Span, Msg: "expected ':'"}
	}
	tyTok := lex.Next()
	ty, ok := ParseTyLit(tyTok.Text)
	if !ok {
		return &ParseError{Span: tyTok.Span, Msg: fmt.Sprintf("unknown type %q", tyTok.Text)}
	}
	if semi := lex.Next(); semi.Kind != TokenSemicolon {
		return &ParseError{Span: semi.Span, Msg: "expected ';'"}
	}
	p.ast.Decls = append(p.ast.Decls, Decl{Kind: kind, Span: ident.Span, Ident: ident.Text, Ty: ty})
	return nil
}

// parseUniformDecl parses either a bare "uniform <ident>: <type>;" or a
// block form "uniform <blockIdent> { <ident>: <type>; ... }".
func (p *Parser) parseUniformDecl(lex *Lexer) error {
	ident := lex.Next()
	if ident.Kind != TokenIdent {
		return &ParseError{Span: ident.Span, Msg: "expected identifier"}
	}
	next := lex.Next()
	switch next.Kind {
	case TokenColon:
		tyTok := lex.Next()
		ty, ok := ParseTyLit(tyTok.Text)
		if !ok {
			return &ParseError{Span: tyTok.Span, Msg: fmt.Sprintf("unknown type %q", tyTok.Text)}
		}
		if semi := lex.Next(); semi.Kind != TokenSemicolon {
			return &ParseError{Span: semi.Span, Msg: "expected ';'"}
		}
		p.ast.Decls = append(p.ast.Decls, Decl{Kind: DeclUniform, Span: ident.Span, Ident: ident.Text, Ty: ty})
		return nil
	case TokenLBrace:
		blockName := ident.Text
		for {
			fieldIdent := lex.Next()
			if fieldIdent.Kind == TokenRBrace {
				return nil
			}
			if fieldIdent.Kind != TokenIdent {
				return &ParseError{Span: fieldIdent.Span, Msg: "expected identifier or '}'"}
			}
			if colon := lex.Next(); colon.Kind != TokenColon {
				return &ParseError{Span: colon.Span, Msg: "expected ':'"}
			}
			tyTok := lex.Next()
			ty, ok := ParseTyLit(tyTok.Text)
			if !ok {
				return &ParseError{Span: tyTok.Span, Msg: fmt.Sprintf("unknown type %q", tyTok.Text)}
			}
			if semi := lex.Next(); semi.Kind != TokenSemicolon {
				return &ParseError{Span: semi.Span, Msg: "expected ';'"}
			}
			p.ast.Decls = append(p.ast.Decls, Decl{
				Kind: DeclUniform, Span: fieldIdent.Span, Ident: fieldIdent.Text, Ty: ty, Block: blockName,
			})
		}
	default:
		return &ParseError{Span: next.Span, Msg: "expected ':' or '{'"}
	}
}
