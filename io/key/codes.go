// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
)

// Texts of keys without a printable form.
const (
	TextBackspace  = "\u0008"
	TextTab        = "\t"
	TextReturn     = "\n"
	TextEscape     = "\u001b"
	TextBacktab    = "\u0019"
	TextDelete     = "\u007f"
	TextShift      = "\u0010"
	TextControl    = "\u0011"
	TextAlt        = "\u0012"
	TextAltGr      = "\u0013"
	TextCapsLock   = "\u0014"
	TextShiftR     = "\u0015"
	TextControlR   = "\u0016"
	TextMeta       = "\u0017"
	TextMetaR      = "\u0018"
	TextUpArrow    = "\uF700"
	TextDownArrow  = "\uF701"
	TextLeftArrow  = "\uF702"
	TextRightArrow = "\uF703"
	TextF1         = "\uF704"
	TextF2         = "\uF705"
	TextF3         = "\uF706"
	TextF4         = "\uF707"
	TextF5         = "\uF708"
	TextF6         = "\uF709"
	TextF7         = "\uF70A"
	TextF8         = "\uF70B"
	TextF9         = "\uF70C"
	TextF10        = "\uF70D"
	TextF11        = "\uF70E"
	TextF12        = "\uF70F"
	TextInsert     = "\uF727"
	TextHome       = "\uF729"
	TextEnd        = "\uF72B"
	TextPageUp     = "\uF72C"
	TextPageDown   = "\uF72D"
)

var specialTexts = map[key.Code]string{
	key.CodeDeleteBackspace: TextBackspace,
	key.CodeTab:             TextTab,
	key.CodeReturnEnter:     TextReturn,
	key.CodeKeypadEnter:     TextReturn,
	key.CodeEscape:          TextEscape,
	key.CodeDeleteForward:   TextDelete,
	key.CodeLeftShift:       TextShift,
	key.CodeRightShift:      TextShiftR,
	key.CodeLeftControl:     TextControl,
	key.CodeRightControl:    TextControlR,
	key.CodeLeftAlt:         TextAlt,
	key.CodeRightAlt:        TextAltGr,
	key.CodeCapsLock:        TextCapsLock,
	key.CodeLeftGUI:         TextMeta,
	key.CodeRightGUI:        TextMetaR,
	key.CodeUpArrow:         TextUpArrow,
	key.CodeDownArrow:       TextDownArrow,
	key.CodeLeftArrow:       TextLeftArrow,
	key.CodeRightArrow:      TextRightArrow,
	key.CodeF1:              TextF1,
	key.CodeF2:              TextF2,
	key.CodeF3:              TextF3,
	key.CodeF4:              TextF4,
	key.CodeF5:              TextF5,
	key.CodeF6:              TextF6,
	key.CodeF7:              TextF7,
	key.CodeF8:              TextF8,
	key.CodeF9:              TextF9,
	key.CodeF10:             TextF10,
	key.CodeF11:             TextF11,
	key.CodeF12:             TextF12,
	key.CodeInsert:          TextInsert,
	key.CodeHome:            TextHome,
	key.CodeEnd:             TextEnd,
	key.CodePageUp:          TextPageUp,
	key.CodePageDown:        TextPageDown,
}

// codeTexts covers what platforms deliver as control characters
// for shortcuts such as Ctrl+C.
var codeTexts = map[key.Code]string{
	key.Code1:                  "1",
	key.Code2:                  "2",
	key.Code3:                  "3",
	key.Code4:                  "4",
	key.Code5:                  "5",
	key.Code6:                  "6",
	key.Code7:                  "7",
	key.Code8:                  "8",
	key.Code9:                  "9",
	key.Code0:                  "0",
	key.CodeSpacebar:           " ",
	key.CodeApostrophe:         "'",
	key.CodeKeypadAsterisk:     "*",
	key.CodeBackslash:          "\\",
	key.CodeComma:              ",",
	key.CodeEqualSign:          "=",
	key.CodeKeypadEqualSign:    "=",
	key.CodeGraveAccent:        "`",
	key.CodeHyphenMinus:        "-",
	key.CodeKeypadHyphenMinus:  "-",
	key.CodeFullStop:           ".",
	key.CodeKeypadFullStop:     ".",
	key.CodeKeypadPlusSign:     "+",
	key.CodeSemicolon:          ";",
	key.CodeSlash:              "/",
	key.CodeKeypadSlash:        "/",
	key.CodeLeftSquareBracket:  "[",
	key.CodeRightSquareBracket: "]",
	key.CodeTab:                TextTab,
}

func init() {
	for c := key.CodeA; c <= key.CodeZ; c++ {
		codeTexts[c] = string(rune('a' + (c - key.CodeA)))
	}
}

// SpecialText returns the reserved text of a key without a
// printable form. Printable keys are reported through text
// input instead and have no special text.
func SpecialText(c key.Code) (string, bool) {
	t, ok := specialTexts[c]
	return t, ok
}

// CodeText returns the unmodified text a key produces on a
// US layout. It is used to recover the key behind a control
// character.
func CodeText(c key.Code) (string, bool) {
	t, ok := codeTexts[c]
	return t, ok
}

// IsControl reports whether s starts with a control character.
func IsControl(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsControl(r)
}
