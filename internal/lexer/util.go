package lexer

import (
	"unicode"
	"unicode/utf8"
)

// peekRune декодирует руну под курсором; size=0 в конце файла.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	if b := lx.cursor.Peek(); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}

// bumpRune съедает руну целиком (битый UTF-8 - по одному байту).
func (lx *Lexer) bumpRune() {
	_, size := lx.peekRune()
	for range size {
		lx.cursor.Bump()
	}
}

// Идентификаторы Kotlin: буквы Unicode, '_' и цифры (не в начале).
func isIdentStartByte(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return '0' <= b && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// isNumberAfterDot - ".5": точка, за которой цифра.
func (lx *Lexer) isNumberAfterDot() bool {
	return lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1))
}
