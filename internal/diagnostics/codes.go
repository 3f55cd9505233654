package diagnostics

// Lexer and parser
const (
	ErrLexical = "L0001"
	ErrSyntax  = "P0001"
)

// Semantic analysis
const (
	ErrRedeclaredSymbol       = "S0001"
	ErrUndeclaredIdentifier   = "S0002"
	ErrUndeclaredType         = "S0003"
	ErrUnknownType            = "S0004"
	ErrUnsupportedFeature     = "S0005"
	ErrIncompatibleAssignment = "S0006"
	ErrInvalidOperands        = "S0007"
	ErrUnknownConstruct       = "S0008"
)
