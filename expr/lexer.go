// SPDX-License-Identifier: MIT

package expr

import (
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp     // + - * / ^
	tokLParen // (
	tokRParen // )
	tokLBrace // {
	tokRBrace // }
)

type token struct {
	kind tokenKind
	pos  int
	text string
	num  float64
}

// lex splits src into tokens. "**", "\cdot" and "\times" are normalized to
// the single-byte operators; a leading backslash on identifiers is dropped.
func lex(src string) ([]token, error) {
	var (
		toks []token
		i    int
	)
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start := i
			i = scanNumber(src, i)
			v, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, &ParseError{Input: src, Pos: start, Msg: "malformed number " + strconv.Quote(src[start:i])}
			}
			toks = append(toks, token{kind: tokNumber, pos: start, text: src[start:i], num: v})

		case isLetter(c) || c == '\\':
			start := i
			if c == '\\' {
				i++
			}
			nameStart := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			name := src[nameStart:i]
			if name == "" {
				return nil, &ParseError{Input: src, Pos: start, Msg: "dangling backslash"}
			}
			if c == '\\' && (name == "cdot" || name == "times") {
				toks = append(toks, token{kind: tokOp, pos: start, text: "*"})

				continue
			}
			toks = append(toks, token{kind: tokIdent, pos: start, text: name})

		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokOp, pos: i, text: "^"})
			i += 2

		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, pos: i, text: string(c)})
			i++

		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case c == '{':
			toks = append(toks, token{kind: tokLBrace, pos: i, text: "{"})
			i++
		case c == '}':
			toks = append(toks, token{kind: tokRBrace, pos: i, text: "}"})
			i++

		default:
			return nil, &ParseError{Input: src, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

// scanNumber consumes digits[.digits][(e|E)[+-]digits] starting at i.
// The exponent is only taken when digits follow, so "2e" is 2 times e.
func scanNumber(src string, i int) int {
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < len(src) && isDigit(src[j]) {
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c < unicode.MaxASCII && unicode.IsLetter(rune(c)) }
