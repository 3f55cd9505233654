package parser

import (
	"jander/internal/frontend/ast"
	"jander/internal/frontend/lexer"
)

// parseDeclarations: (declaracao_local | declaracao_global)*
func (p *Parser) parseDeclarations() []ast.Decl {
	decls := []ast.Decl{}
	for {
		switch p.peek().Kind {
		case lexer.DECLARE_TOKEN, lexer.CONSTANTE_TOKEN, lexer.TIPO_TOKEN:
			decls = append(decls, p.parseLocalDeclaration())
		case lexer.PROCEDIMENTO_TOKEN, lexer.FUNCAO_TOKEN:
			decls = append(decls, p.parseGlobalDeclaration())
		default:
			return decls
		}
	}
}

// parseLocalDeclarations: declaracao_local*
func (p *Parser) parseLocalDeclarations() []ast.Decl {
	decls := []ast.Decl{}
	for p.check(lexer.DECLARE_TOKEN) || p.check(lexer.CONSTANTE_TOKEN) || p.check(lexer.TIPO_TOKEN) {
		decls = append(decls, p.parseLocalDeclaration())
	}
	return decls
}

func (p *Parser) parseLocalDeclaration() ast.Decl {
	switch p.peek().Kind {
	case lexer.DECLARE_TOKEN:
		start := p.advance().Start
		decl := p.parseVariable()
		decl.Location = p.makeLocation(start)
		return decl
	case lexer.CONSTANTE_TOKEN:
		return p.parseConstDecl()
	default:
		return p.parseTypeDecl()
	}
}

// parseVariable: identificador (, identificador)* : tipo
func (p *Parser) parseVariable() *ast.VarDecl {
	start := p.peek().Start

	names := []*ast.IdentifierExpr{p.parseIdentifier()}
	for p.match(lexer.COMMA_TOKEN) {
		names = append(names, p.parseIdentifier())
	}
	p.expect(lexer.COLON_TOKEN)
	typ := p.parseType()

	return &ast.VarDecl{
		Names:    names,
		Type:     typ,
		Location: p.makeLocation(start),
	}
}

// parseConstDecl: constante IDENT : tipo_basico = valor_constante
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	start := p.peek().Start
	p.expect(lexer.CONSTANTE_TOKEN)

	nameTok := p.expect(lexer.IDENTIFIER_TOKEN)
	p.expect(lexer.COLON_TOKEN)

	typeTok := p.peek()
	if !lexer.IsBasicType(typeTok.Kind) {
		p.fail()
	}
	p.advance()

	p.expect(lexer.EQUAL_TOKEN)
	value := p.parseConstValue()

	return &ast.ConstDecl{
		Name:     &ast.Ident{Name: nameTok.Value, Location: *nameTok.Loc()},
		Type:     &ast.BasicType{Name: typeTok.Value, Location: *typeTok.Loc()},
		Value:    value,
		Location: p.makeLocation(start),
	}
}

// parseConstValue: CADEIA | NUM_INT | NUM_REAL | verdadeiro | falso
func (p *Parser) parseConstValue() *ast.BasicLit {
	tok := p.peek()

	var kind ast.LiteralKind
	switch tok.Kind {
	case lexer.STRING_TOKEN:
		kind = ast.STRING
	case lexer.NUM_INT_TOKEN:
		kind = ast.INT
	case lexer.NUM_REAL_TOKEN:
		kind = ast.REAL
	case lexer.VERDADEIRO_TOKEN, lexer.FALSO_TOKEN:
		kind = ast.BOOL
	default:
		p.fail()
	}
	p.advance()

	return &ast.BasicLit{
		Kind:     kind,
		Value:    tok.Value,
		Location: *tok.Loc(),
	}
}

// parseTypeDecl: tipo IDENT : tipo
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	keyword := p.expect(lexer.TIPO_TOKEN)

	nameTok := p.expect(lexer.IDENTIFIER_TOKEN)
	p.expect(lexer.COLON_TOKEN)
	typ := p.parseType()

	return &ast.TypeDecl{
		Keyword:  keyword.Loc(),
		Name:     &ast.Ident{Name: nameTok.Value, Location: *nameTok.Loc()},
		Type:     typ,
		Location: p.makeLocation(keyword.Start),
	}
}

// parseGlobalDeclaration:
//
//	procedimento IDENT ( parametros? ) declaracao_local* cmd* fim_procedimento
//	funcao IDENT ( parametros? ) : tipo_estendido declaracao_local* cmd* fim_funcao
func (p *Parser) parseGlobalDeclaration() *ast.GlobalDecl {
	keyword := p.advance()

	kind := ast.PROCEDURE
	end := lexer.FIM_PROCEDIMENTO_TOKEN
	if keyword.Kind == lexer.FUNCAO_TOKEN {
		kind = ast.FUNCTION
		end = lexer.FIM_FUNCAO_TOKEN
	}

	nameTok := p.expect(lexer.IDENTIFIER_TOKEN)
	p.expect(lexer.OPEN_PAREN)
	var params []*ast.Param
	if !p.check(lexer.CLOSE_PAREN) {
		params = p.parseParams()
	}
	p.expect(lexer.CLOSE_PAREN)

	var result ast.TypeExpr
	if kind == ast.FUNCTION {
		p.expect(lexer.COLON_TOKEN)
		result = p.parseExtendedType()
	}

	decls := p.parseLocalDeclarations()
	stmts := p.parseCommands()
	p.expect(end)

	return &ast.GlobalDecl{
		Kind:     kind,
		Keyword:  keyword.Loc(),
		Name:     &ast.Ident{Name: nameTok.Value, Location: *nameTok.Loc()},
		Params:   params,
		Result:   result,
		Decls:    decls,
		Stmts:    stmts,
		Location: p.makeLocation(keyword.Start),
	}
}

// parseParams: parametro (, parametro)*
// parametro: var? identificador (, identificador)* : tipo_estendido
func (p *Parser) parseParams() []*ast.Param {
	params := []*ast.Param{}
	for {
		start := p.peek().Start
		byRef := p.match(lexer.VAR_TOKEN)

		names := []*ast.IdentifierExpr{p.parseIdentifier()}
		for p.match(lexer.COMMA_TOKEN) {
			names = append(names, p.parseIdentifier())
		}
		p.expect(lexer.COLON_TOKEN)
		typ := p.parseExtendedType()

		params = append(params, &ast.Param{
			ByRef:    byRef,
			Names:    names,
			Type:     typ,
			Location: p.makeLocation(start),
		})

		if !p.match(lexer.COMMA_TOKEN) {
			return params
		}
	}
}
