package parser

import (
	"jander/internal/frontend/ast"
	"jander/internal/frontend/lexer"
)

// parseType: registro | tipo_estendido
func (p *Parser) parseType() ast.TypeExpr {
	if p.check(lexer.REGISTRO_TOKEN) {
		return p.parseRecordType()
	}
	return p.parseExtendedType()
}

// parseRecordType: registro variavel* fim_registro
func (p *Parser) parseRecordType() *ast.RecordType {
	keyword := p.expect(lexer.REGISTRO_TOKEN)

	fields := []*ast.VarDecl{}
	for p.check(lexer.IDENTIFIER_TOKEN) {
		fields = append(fields, p.parseVariable())
	}
	p.expect(lexer.FIM_REGISTRO_TOKEN)

	return &ast.RecordType{
		Keyword:  keyword.Loc(),
		Fields:   fields,
		Location: p.makeLocation(keyword.Start),
	}
}

// parseExtendedType: ^? tipo_basico_ident
func (p *Parser) parseExtendedType() ast.TypeExpr {
	if p.check(lexer.CARET_TOKEN) {
		caret := p.advance()
		base := p.parseBasicOrIdentType()
		return &ast.PointerType{
			Caret:    caret.Loc(),
			Base:     base,
			Location: p.makeLocation(caret.Start),
		}
	}
	return p.parseBasicOrIdentType()
}

// parseBasicOrIdentType: tipo_basico | IDENT
func (p *Parser) parseBasicOrIdentType() ast.TypeExpr {
	tok := p.peek()

	switch {
	case lexer.IsBasicType(tok.Kind):
		p.advance()
		return &ast.BasicType{Name: tok.Value, Location: *tok.Loc()}
	case tok.Kind == lexer.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.NamedType{Name: tok.Value, Location: *tok.Loc()}
	default:
		p.fail()
		return &ast.BadType{Location: *tok.Loc()}
	}
}
