package parser

import "github.com/utkarsh5026/interpreter-sub002/internal/token"

// Operator precedence, lowest to highest binding power.
const (
	LOWEST int = iota
	ASSIGN       // = += -= ...  (right-associative, handled outside the Pratt loop)
	LOGICAL_OR   // ||
	LOGICAL_AND  // &&
	EQUALS       // == !=
	LESSGREATER  // < > <= >=
	SHIFT        // << >>
	SUM          // + -
	PRODUCT      // * / %
	PREFIX       // -x !x
	CALL         // fn(x)
	INDEX        // arr[x], obj.prop
)

var precedences = map[token.Type]int{
	token.OR:              LOGICAL_OR,
	token.AND:             LOGICAL_AND,
	token.EQ:              EQUALS,
	token.NOT_EQ:          EQUALS,
	token.LT:              LESSGREATER,
	token.GT:              LESSGREATER,
	token.LT_EQ:           LESSGREATER,
	token.GT_EQ:           LESSGREATER,
	token.SHL:             SHIFT,
	token.SHR:             SHIFT,
	token.PLUS:            SUM,
	token.MINUS:           SUM,
	token.SLASH:           PRODUCT,
	token.ASTERISK:        PRODUCT,
	token.PERCENT:         PRODUCT,
	token.LPAREN:          CALL,
	token.LBRACKET:        INDEX,
	token.DOT:             INDEX,
}

func precedenceOf(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

var assignmentOperators = map[token.Type]bool{
	token.ASSIGN:          true,
	token.PLUS_ASSIGN:     true,
	token.MINUS_ASSIGN:    true,
	token.ASTERISK_ASSIGN: true,
	token.SLASH_ASSIGN:    true,
	token.PERCENT_ASSIGN:  true,
}
