// Package calc evaluates plain arithmetic expressions for the
// calculate tool. Input is restricted to numbers, the four basic
// operators, parentheses, and whitespace before it ever reaches the
// expression engine, so the engine's richer syntax is not exposed.
package calc

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

var (
	validExpr   = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)
	exprPattern = regexp.MustCompile(`[0-9+\-*/().\s]+`)
)

// Eval evaluates an arithmetic expression and returns its value, an
// int for whole-number arithmetic or a float64 when division is
// involved. Unsupported characters, malformed syntax, and division by
// zero all return errors; Eval never panics on user input.
func Eval(expression string) (interface{}, error) {
	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return nil, fmt.Errorf("calc: empty expression")
	}
	if !validExpr.MatchString(trimmed) {
		return nil, fmt.Errorf("calc: expression contains unsupported characters")
	}

	result, err := expr.Eval(trimmed, nil)
	if err != nil {
		return nil, fmt.Errorf("calc: %w", err)
	}

	if f, ok := result.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return nil, fmt.Errorf("calc: division by zero")
	}

	return result, nil
}

// Extract pulls the first arithmetic-looking substring out of free
// text, for callers that receive expressions embedded in sentences
// ("calculate 2 + 3 for me"). Returns false if nothing usable is
// found.
func Extract(text string) (string, bool) {
	match := strings.TrimSpace(exprPattern.FindString(text))
	if match == "" || !strings.ContainsAny(match, "0123456789") {
		return "", false
	}
	return match, true
}
