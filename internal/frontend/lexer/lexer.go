package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"

	"jander/internal/source"
)

// Lexical error messages, worded as the course's reference compiler reports them.
const (
	msgUnterminatedString  = "cadeia literal nao fechada"
	msgUnterminatedComment = "comentario nao fechado"
	msgUnknownSymbol       = "%s - simbolo nao identificado"
)

// LexError is a lexical error attached to a position
type LexError struct {
	Pos     source.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Tokenizer turns Jander source text into tokens. Lexical errors do not stop
// tokenization; they are emitted as ERROR tokens and collected in Errors.
type Tokenizer struct {
	filepath string
	src      string
	offset   int
	line     int
	column   int
	tokens   []Token
	Errors   []error
}

// New creates a tokenizer for the given file content
func New(filepath, content string) *Tokenizer {
	return &Tokenizer{
		filepath: filepath,
		src:      content,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0),
		Errors:   make([]error, 0),
	}
}

// Tokenize scans the whole input. The result always ends with an EOF token.
func (t *Tokenizer) Tokenize() []Token {
	for {
		t.skipWhitespace()
		if t.atEnd() {
			break
		}
		t.next()
	}
	pos := t.position()
	t.tokens = append(t.tokens, Token{Kind: EOF_TOKEN, Value: "EOF", Start: pos, End: pos})
	return t.tokens
}

// next scans a single token starting at the current offset
func (t *Tokenizer) next() {
	start := t.position()
	r := t.peek()

	switch {
	case r == '{':
		t.scanComment(start)
	case r == '"':
		t.scanString(start)
	case r >= '0' && r <= '9':
		t.scanNumber(start)
	case isIdentStart(r):
		t.scanIdentifier(start)
	default:
		t.scanSymbol(start)
	}
}

func (t *Tokenizer) scanComment(start source.Position) {
	t.advance() // {
	for !t.atEnd() {
		r := t.peek()
		if r == '\n' {
			break
		}
		t.advance()
		if r == '}' {
			return
		}
	}
	t.addError(start, msgUnterminatedComment)
}

func (t *Tokenizer) scanString(start source.Position) {
	t.advance() // opening quote
	for !t.atEnd() {
		r := t.peek()
		if r == '\n' {
			break
		}
		t.advance()
		if r == '"' {
			t.emit(STRING_TOKEN, start)
			return
		}
	}
	t.addError(start, msgUnterminatedString)
}

func (t *Tokenizer) scanNumber(start source.Position) {
	t.consumeDigits()

	// "1..3" is a range, not a real literal
	if t.peek() == '.' && isDigit(t.peekAt(1)) {
		t.advance()
		t.consumeDigits()
		t.emit(NUM_REAL_TOKEN, start)
		return
	}
	t.emit(NUM_INT_TOKEN, start)
}

func (t *Tokenizer) scanIdentifier(start source.Position) {
	for !t.atEnd() && isIdentContinue(t.peek()) {
		t.advance()
	}
	word := t.src[start.Index:t.offset]
	if kind, ok := LookupKeyword(word); ok {
		t.emit(kind, start)
		return
	}
	t.emit(IDENTIFIER_TOKEN, start)
}

func (t *Tokenizer) scanSymbol(start source.Position) {
	r := t.advance()

	switch r {
	case '<':
		switch t.peek() {
		case '-':
			t.advance()
			t.emit(ASSIGN_TOKEN, start)
		case '=':
			t.advance()
			t.emit(LESS_EQUAL_TOKEN, start)
		case '>':
			t.advance()
			t.emit(NOT_EQUAL_TOKEN, start)
		default:
			t.emit(LESS_TOKEN, start)
		}
	case '>':
		if t.peek() == '=' {
			t.advance()
			t.emit(GREATER_EQUAL_TOKEN, start)
			return
		}
		t.emit(GREATER_TOKEN, start)
	case '.':
		if t.peek() == '.' {
			t.advance()
			t.emit(RANGE_TOKEN, start)
			return
		}
		t.emit(DOT_TOKEN, start)
	case ':':
		t.emit(COLON_TOKEN, start)
	case ',':
		t.emit(COMMA_TOKEN, start)
	case '(':
		t.emit(OPEN_PAREN, start)
	case ')':
		t.emit(CLOSE_PAREN, start)
	case '[':
		t.emit(OPEN_BRACKET, start)
	case ']':
		t.emit(CLOSE_BRACKET, start)
	case '^':
		t.emit(CARET_TOKEN, start)
	case '&':
		t.emit(AMPERSAND_TOKEN, start)
	case '=':
		t.emit(EQUAL_TOKEN, start)
	case '+':
		t.emit(PLUS_TOKEN, start)
	case '-':
		t.emit(MINUS_TOKEN, start)
	case '*':
		t.emit(MUL_TOKEN, start)
	case '/':
		t.emit(DIV_TOKEN, start)
	case '%':
		t.emit(MOD_TOKEN, start)
	default:
		t.addError(start, fmt.Sprintf(msgUnknownSymbol, string(r)))
	}
}

// emit appends a token spanning from start to the current position
func (t *Tokenizer) emit(kind TOKEN, start source.Position) {
	t.tokens = append(t.tokens, Token{
		Kind:  kind,
		Value: t.src[start.Index:t.offset],
		Start: start,
		End:   t.position(),
	})
}

func (t *Tokenizer) addError(start source.Position, message string) {
	t.tokens = append(t.tokens, Token{
		Kind:  ERROR_TOKEN,
		Value: message,
		Start: start,
		End:   t.position(),
	})
	t.Errors = append(t.Errors, &LexError{Pos: start, Message: message})
}

// HasErrors reports whether any lexical error was found
func (t *Tokenizer) HasErrors() bool {
	return len(t.Errors) > 0
}

// FirstError returns the first lexical error, or nil
func (t *Tokenizer) FirstError() *LexError {
	if len(t.Errors) == 0 {
		return nil
	}
	var lexErr *LexError
	if errors.As(t.Errors[0], &lexErr) {
		return lexErr
	}
	return nil
}

func (t *Tokenizer) skipWhitespace() {
	for !t.atEnd() {
		switch t.peek() {
		case ' ', '\t', '\r', '\n':
			t.advance()
		default:
			return
		}
	}
}

func (t *Tokenizer) consumeDigits() {
	for !t.atEnd() && isDigit(t.peek()) {
		t.advance()
	}
}

func (t *Tokenizer) atEnd() bool {
	return t.offset >= len(t.src)
}

func (t *Tokenizer) peek() rune {
	return t.peekAt(0)
}

// peekAt looks n runes ahead without consuming anything
func (t *Tokenizer) peekAt(n int) rune {
	offset := t.offset
	for i := 0; ; i++ {
		if offset >= len(t.src) {
			return utf8.RuneError
		}
		r, size := utf8.DecodeRuneInString(t.src[offset:])
		if i == n {
			return r
		}
		offset += size
	}
}

// advance consumes one rune, tracking line and column
func (t *Tokenizer) advance() rune {
	r, size := utf8.DecodeRuneInString(t.src[t.offset:])
	t.offset += size
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	return r
}

func (t *Tokenizer) position() source.Position {
	return source.Position{Line: t.line, Column: t.column, Index: t.offset}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicodeid.IsIDStartUnicode(r)
}

func isIdentContinue(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicodeid.IsIDContinueUnicode(r)
}
