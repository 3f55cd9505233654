package parser

import (
	"errors"

	"jander/internal/diagnostics"
	"jander/internal/frontend/ast"
	"jander/internal/frontend/lexer"
	"jander/internal/source"
)

// ============================================================================
// PARSER - Token to AST Conversion
// ============================================================================
//
// The Parser builds an AST from a token stream. Like the syntax listener of
// the reference compiler, it stops at the first syntax (or lexical) error:
// that error is reported to the diagnostics and Parse returns ErrSyntax.

// ErrSyntax is returned by Parse when the token stream is not a valid program
var ErrSyntax = errors.New("syntax error")

// bailout unwinds the parser after the first error has been reported
type bailout struct{}

// Parser holds temporary state during parsing of a single file.
// This is created on-the-fly, not stored persistently.
type Parser struct {
	tokens      []lexer.Token
	current     int
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
}

// Parse is the parsing function called by the pipeline.
func Parse(tokens []lexer.Token, filepath string, diag *diagnostics.DiagnosticBag) (program *ast.Program, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF_TOKEN {
		var end source.Position
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].End
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.EOF_TOKEN, Value: "EOF", Start: end, End: end})
	}

	state := &Parser{
		tokens:      tokens,
		current:     0,
		diagnostics: diag,
		filepath:    filepath,
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program = nil
			err = ErrSyntax
		}
	}()

	return state.parseProgram(), nil
}

// parseProgram: declaracoes 'algoritmo' corpo 'fim_algoritmo' EOF
func (p *Parser) parseProgram() *ast.Program {
	start := p.peek().Start

	decls := p.parseDeclarations()

	p.expect(lexer.ALGORITMO_TOKEN)
	body := p.parseBody()
	p.expect(lexer.FIM_ALGORITMO_TOKEN)
	p.expect(lexer.EOF_TOKEN)

	return &ast.Program{
		FullPath: p.filepath,
		Decls:    decls,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseBody: declaracao_local* cmd*
func (p *Parser) parseBody() *ast.Body {
	start := p.peek().Start
	decls := p.parseLocalDeclarations()
	stmts := p.parseCommands()
	return &ast.Body{
		Decls:    decls,
		Stmts:    stmts,
		Location: p.makeLocation(start),
	}
}

// ----------------------------------------------------------------------------
// Commands
// ----------------------------------------------------------------------------

func (p *Parser) isCommandStart() bool {
	switch p.peek().Kind {
	case lexer.LEIA_TOKEN, lexer.ESCREVA_TOKEN, lexer.SE_TOKEN, lexer.CASO_TOKEN,
		lexer.PARA_TOKEN, lexer.ENQUANTO_TOKEN, lexer.FACA_TOKEN, lexer.RETORNE_TOKEN,
		lexer.CARET_TOKEN, lexer.IDENTIFIER_TOKEN:
		return true
	}
	return false
}

func (p *Parser) parseCommands() []ast.Statement {
	stmts := []ast.Statement{}
	for p.isCommandStart() {
		stmts = append(stmts, p.parseCommand())
	}
	return stmts
}

func (p *Parser) parseCommand() ast.Statement {
	switch p.peek().Kind {
	case lexer.LEIA_TOKEN:
		return p.parseRead()
	case lexer.ESCREVA_TOKEN:
		return p.parseWrite()
	case lexer.SE_TOKEN:
		return p.parseIf()
	case lexer.CASO_TOKEN:
		return p.parseCase()
	case lexer.PARA_TOKEN:
		return p.parseFor()
	case lexer.ENQUANTO_TOKEN:
		return p.parseWhile()
	case lexer.FACA_TOKEN:
		return p.parseRepeat()
	case lexer.RETORNE_TOKEN:
		return p.parseReturn()
	case lexer.IDENTIFIER_TOKEN:
		if p.peekAt(1).Kind == lexer.OPEN_PAREN {
			call := p.parseCall()
			return &ast.CallStmt{Call: call, Location: call.Location}
		}
		return p.parseAssign()
	default: // ^
		return p.parseAssign()
	}
}

// parseRead: leia ( ^? identificador (, ^? identificador)* )
func (p *Parser) parseRead() *ast.ReadStmt {
	start := p.peek().Start
	p.expect(lexer.LEIA_TOKEN)
	p.expect(lexer.OPEN_PAREN)

	targets := []*ast.IdentifierExpr{}
	for {
		p.match(lexer.CARET_TOKEN)
		targets = append(targets, p.parseIdentifier())
		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}
	p.expect(lexer.CLOSE_PAREN)

	return &ast.ReadStmt{
		Targets:  targets,
		Location: p.makeLocation(start),
	}
}

// parseWrite: escreva ( expressao (, expressao)* )
func (p *Parser) parseWrite() *ast.WriteStmt {
	start := p.peek().Start
	p.expect(lexer.ESCREVA_TOKEN)
	p.expect(lexer.OPEN_PAREN)
	args := p.parseExprList()
	p.expect(lexer.CLOSE_PAREN)

	return &ast.WriteStmt{
		Args:     args,
		Location: p.makeLocation(start),
	}
}

// parseIf: se expressao entao cmd* (senao cmd*)? fim_se
func (p *Parser) parseIf() *ast.IfStmt {
	start := p.peek().Start
	p.expect(lexer.SE_TOKEN)

	cond := p.parseExpr()
	p.expect(lexer.ENTAO_TOKEN)
	then := p.parseCommands()

	var elseStmts []ast.Statement
	if p.match(lexer.SENAO_TOKEN) {
		elseStmts = p.parseCommands()
	}
	p.expect(lexer.FIM_SE_TOKEN)

	return &ast.IfStmt{
		Cond:     cond,
		Then:     then,
		Else:     elseStmts,
		Location: p.makeLocation(start),
	}
}

// parseCase: caso exp_aritmetica seja item_selecao* (senao cmd*)? fim_caso
func (p *Parser) parseCase() *ast.CaseStmt {
	start := p.peek().Start
	p.expect(lexer.CASO_TOKEN)

	selector := p.parseArithmetic()
	p.expect(lexer.SEJA_TOKEN)

	clauses := []*ast.CaseClause{}
	for p.check(lexer.NUM_INT_TOKEN) || p.check(lexer.MINUS_TOKEN) {
		clauses = append(clauses, p.parseCaseClause())
	}

	var elseStmts []ast.Statement
	if p.match(lexer.SENAO_TOKEN) {
		elseStmts = p.parseCommands()
	}
	p.expect(lexer.FIM_CASO_TOKEN)

	return &ast.CaseStmt{
		Selector: selector,
		Clauses:  clauses,
		Else:     elseStmts,
		Location: p.makeLocation(start),
	}
}

// parseCaseClause: numero_intervalo (, numero_intervalo)* : cmd*
func (p *Parser) parseCaseClause() *ast.CaseClause {
	start := p.peek().Start

	ranges := []ast.CaseRange{}
	for {
		r := ast.CaseRange{Lo: p.parseSignedInt()}
		if p.match(lexer.RANGE_TOKEN) {
			r.Hi = p.parseSignedInt()
		}
		ranges = append(ranges, r)
		if !p.match(lexer.COMMA_TOKEN) {
			break
		}
	}
	p.expect(lexer.COLON_TOKEN)
	body := p.parseCommands()

	return &ast.CaseClause{
		Ranges:   ranges,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseSignedInt: -? NUM_INT
func (p *Parser) parseSignedInt() *ast.BasicLit {
	start := p.peek().Start
	sign := ""
	if p.match(lexer.MINUS_TOKEN) {
		sign = "-"
	}
	tok := p.expect(lexer.NUM_INT_TOKEN)
	return &ast.BasicLit{
		Kind:     ast.INT,
		Value:    sign + tok.Value,
		Location: p.makeLocation(start),
	}
}

// parseFor: para IDENT <- exp_aritmetica ate exp_aritmetica faca cmd* fim_para
func (p *Parser) parseFor() *ast.ForStmt {
	start := p.peek().Start
	p.expect(lexer.PARA_TOKEN)

	nameTok := p.expect(lexer.IDENTIFIER_TOKEN)
	loopVar := ast.NewIdentifier(nameTok.Value, nameTok.Loc())

	p.expect(lexer.ASSIGN_TOKEN)
	from := p.parseArithmetic()
	p.expect(lexer.ATE_TOKEN)
	to := p.parseArithmetic()
	p.expect(lexer.FACA_TOKEN)
	body := p.parseCommands()
	p.expect(lexer.FIM_PARA_TOKEN)

	return &ast.ForStmt{
		Var:      loopVar,
		From:     from,
		To:       to,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseWhile: enquanto expressao faca cmd* fim_enquanto
func (p *Parser) parseWhile() *ast.WhileStmt {
	start := p.peek().Start
	p.expect(lexer.ENQUANTO_TOKEN)

	cond := p.parseExpr()
	p.expect(lexer.FACA_TOKEN)
	body := p.parseCommands()
	p.expect(lexer.FIM_ENQUANTO_TOKEN)

	return &ast.WhileStmt{
		Cond:     cond,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseRepeat: faca cmd* ate expressao
func (p *Parser) parseRepeat() *ast.RepeatStmt {
	start := p.peek().Start
	p.expect(lexer.FACA_TOKEN)

	body := p.parseCommands()
	p.expect(lexer.ATE_TOKEN)
	until := p.parseExpr()

	return &ast.RepeatStmt{
		Body:     body,
		Until:    until,
		Location: p.makeLocation(start),
	}
}

// parseReturn: retorne expressao
func (p *Parser) parseReturn() *ast.ReturnStmt {
	start := p.peek().Start
	p.expect(lexer.RETORNE_TOKEN)
	value := p.parseExpr()

	return &ast.ReturnStmt{
		Value:    value,
		Location: p.makeLocation(start),
	}
}

// parseAssign: ^? identificador <- expressao
func (p *Parser) parseAssign() *ast.AssignStmt {
	start := p.peek().Start
	deref := p.match(lexer.CARET_TOKEN)

	target := p.parseIdentifier()
	p.expect(lexer.ASSIGN_TOKEN)
	value := p.parseExpr()

	return &ast.AssignStmt{
		Deref:    deref,
		Target:   target,
		Value:    value,
		Location: p.makeLocation(start),
	}
}

// ----------------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------------

// parseExpr parses an expression
func (p *Parser) parseExpr() ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseExprList() []ast.Expression {
	exprs := []ast.Expression{p.parseExpr()}
	for p.match(lexer.COMMA_TOKEN) {
		exprs = append(exprs, p.parseExpr())
	}
	return exprs
}

func (p *Parser) parseLogicalOr() ast.Expression {
	start := p.peek().Start
	left := p.parseLogicalAnd()

	for p.match(lexer.OU_TOKEN) {
		op := p.previous()
		right := p.parseLogicalAnd()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	start := p.peek().Start
	left := p.parseLogicalNot()

	for p.match(lexer.E_TOKEN) {
		op := p.previous()
		right := p.parseLogicalNot()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

// parseLogicalNot: nao? parcela_logica
func (p *Parser) parseLogicalNot() ast.Expression {
	start := p.peek().Start
	if p.match(lexer.NAO_TOKEN) {
		op := p.previous()
		x := p.parseLogicalParcel()
		return &ast.UnaryExpr{
			Op:       op,
			X:        x,
			Location: p.makeLocation(start),
		}
	}
	return p.parseLogicalParcel()
}

// parseLogicalParcel: verdadeiro | falso | exp_relacional
func (p *Parser) parseLogicalParcel() ast.Expression {
	if p.check(lexer.VERDADEIRO_TOKEN) || p.check(lexer.FALSO_TOKEN) {
		tok := p.advance()
		return &ast.BasicLit{
			Kind:     ast.BOOL,
			Value:    tok.Value,
			Location: *tok.Loc(),
		}
	}
	return p.parseRelational()
}

// parseRelational: exp_aritmetica (op_relacional exp_aritmetica)?
func (p *Parser) parseRelational() ast.Expression {
	start := p.peek().Start
	left := p.parseArithmetic()

	if p.match(lexer.EQUAL_TOKEN, lexer.NOT_EQUAL_TOKEN, lexer.LESS_TOKEN, lexer.LESS_EQUAL_TOKEN,
		lexer.GREATER_TOKEN, lexer.GREATER_EQUAL_TOKEN) {
		op := p.previous()
		right := p.parseArithmetic()
		return &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

func (p *Parser) parseArithmetic() ast.Expression {
	start := p.peek().Start
	left := p.parseTerm()

	for p.match(lexer.PLUS_TOKEN, lexer.MINUS_TOKEN) {
		op := p.previous()
		right := p.parseTerm()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

func (p *Parser) parseTerm() ast.Expression {
	start := p.peek().Start
	left := p.parseFactor()

	for p.match(lexer.MUL_TOKEN, lexer.DIV_TOKEN) {
		op := p.previous()
		right := p.parseFactor()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

func (p *Parser) parseFactor() ast.Expression {
	start := p.peek().Start
	left := p.parseParcel()

	for p.match(lexer.MOD_TOKEN) {
		op := p.previous()
		right := p.parseParcel()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.makeLocation(start),
		}
	}

	return left
}

// parseParcel: op_unario? parcela_unario | parcela_nao_unario
func (p *Parser) parseParcel() ast.Expression {
	start := p.peek().Start

	switch p.peek().Kind {
	case lexer.MINUS_TOKEN:
		op := p.advance()
		x := p.parseUnaryParcel()
		return &ast.UnaryExpr{
			Op:       op,
			X:        x,
			Location: p.makeLocation(start),
		}
	case lexer.AMPERSAND_TOKEN:
		p.advance()
		x := p.parseIdentifier()
		return &ast.AddressExpr{
			X:        x,
			Location: p.makeLocation(start),
		}
	case lexer.STRING_TOKEN:
		tok := p.advance()
		return &ast.BasicLit{
			Kind:     ast.STRING,
			Value:    tok.Value,
			Location: *tok.Loc(),
		}
	default:
		return p.parseUnaryParcel()
	}
}

// parseUnaryParcel: ^? identificador | IDENT ( args ) | NUM_INT | NUM_REAL | ( expressao )
func (p *Parser) parseUnaryParcel() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case lexer.CARET_TOKEN:
		p.advance()
		x := p.parseIdentifier()
		return &ast.DerefExpr{
			X:        x,
			Location: p.makeLocation(tok.Start),
		}

	case lexer.IDENTIFIER_TOKEN:
		if p.peekAt(1).Kind == lexer.OPEN_PAREN {
			return p.parseCall()
		}
		return p.parseIdentifier()

	case lexer.NUM_INT_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.INT,
			Value:    tok.Value,
			Location: *tok.Loc(),
		}

	case lexer.NUM_REAL_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.REAL,
			Value:    tok.Value,
			Location: *tok.Loc(),
		}

	case lexer.OPEN_PAREN:
		p.advance()
		x := p.parseExpr()
		p.expect(lexer.CLOSE_PAREN)
		return &ast.ParenExpr{
			X:        x,
			Location: p.makeLocation(tok.Start),
		}

	default:
		p.fail()
		return nil
	}
}

// parseCall: IDENT ( expressao (, expressao)* )
func (p *Parser) parseCall() *ast.CallExpr {
	nameTok := p.expect(lexer.IDENTIFIER_TOKEN)
	p.expect(lexer.OPEN_PAREN)
	args := p.parseExprList()
	p.expect(lexer.CLOSE_PAREN)

	return &ast.CallExpr{
		Fun:      &ast.Ident{Name: nameTok.Value, Location: *nameTok.Loc()},
		Args:     args,
		Location: p.makeLocation(nameTok.Start),
	}
}

// parseIdentifier: IDENT (. IDENT)* ([ exp_aritmetica ])*
func (p *Parser) parseIdentifier() *ast.IdentifierExpr {
	first := p.expect(lexer.IDENTIFIER_TOKEN)

	parts := []string{first.Value}
	for p.match(lexer.DOT_TOKEN) {
		parts = append(parts, p.expect(lexer.IDENTIFIER_TOKEN).Value)
	}

	var dims []ast.Expression
	for p.match(lexer.OPEN_BRACKET) {
		dims = append(dims, p.parseArithmetic())
		p.expect(lexer.CLOSE_BRACKET)
	}

	return &ast.IdentifierExpr{
		Parts:    parts,
		Dims:     dims,
		Location: p.makeLocation(first.Start),
	}
}

// ----------------------------------------------------------------------------
// Helper methods
// ----------------------------------------------------------------------------

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF_TOKEN
}

func (p *Parser) peek() lexer.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) lexer.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TOKEN) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TOKEN) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or aborts the parse
func (p *Parser) expect(kind lexer.TOKEN) lexer.Token {
	if p.check(kind) {
		if kind == lexer.EOF_TOKEN {
			return p.peek()
		}
		return p.advance()
	}
	p.fail()
	return lexer.Token{}
}

// fail reports the current token as the error site and unwinds the parser.
// An ERROR token carries the lexical error message, which wins over the
// generic syntax message.
func (p *Parser) fail() {
	tok := p.peek()
	if tok.Kind == lexer.ERROR_TOKEN {
		p.diagnostics.Add(diagnostics.LexicalError(p.filepath, tok.Loc(), tok.Value))
	} else {
		p.diagnostics.Add(diagnostics.SyntaxError(p.filepath, tok.Loc(), tok.Value))
	}
	panic(bailout{})
}

// makeLocation creates a source location from start to the end of the last consumed token
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.previous().End
	if p.current == 0 {
		end = start
	}
	return *source.NewLocation(&start, &end)
}

// ParseSource tokenizes and parses src in one step
func ParseSource(filepath, src string, diag *diagnostics.DiagnosticBag) (*ast.Program, error) {
	return Parse(lexer.New(filepath, src).Tokenize(), filepath, diag)
}
