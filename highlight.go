package aldo

import (
	"strings"
	"unicode"
)

// Syntax highlight tags, one per rendered byte.
const (
	hlNormal byte = iota
	hlNonprint
	hlComment
	hlMLComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

const (
	hlHighlightStrings = 1 << 0
	hlHighlightNumbers = 1 << 1
)

// Syntax defines a syntax highlighting scheme. A trailing `|` on a
// keyword marks it as second tier (types and the like), which gets a
// distinct color from control keywords.
type Syntax struct {
	FileType               string
	FileMatch              []string
	Keywords               []string
	SingleLineCommentStart string
	MultiLineCommentStart  string
	MultiLineCommentEnd    string
	Flags                  int
}

// HLDB is the built-in syntax highlight database.
var HLDB = []Syntax{
	{
		FileType:  "c",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Keywords: []string{
			// C keywords
			"auto", "break", "case", "continue", "default", "do", "else", "enum",
			"extern", "for", "goto", "if", "register", "return", "sizeof", "static",
			"struct", "switch", "typedef", "union", "volatile", "while", "NULL",
			// C++ keywords
			"alignas", "alignof", "and", "and_eq", "asm", "bitand", "bitor", "class",
			"compl", "constexpr", "const_cast", "deltype", "delete", "dynamic_cast",
			"explicit", "export", "false", "friend", "inline", "mutable", "namespace",
			"new", "noexcept", "not", "not_eq", "nullptr", "operator", "or", "or_eq",
			"private", "protected", "public", "reinterpret_cast", "static_assert",
			"static_cast", "template", "this", "thread_local", "throw", "true", "try",
			"typeid", "typename", "virtual", "xor", "xor_eq",
			// C types (trailing | means keyword2)
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|", "short|", "auto|", "const|", "bool|",
		},
		SingleLineCommentStart: "//",
		MultiLineCommentStart:  "/*",
		MultiLineCommentEnd:    "*/",
		Flags:                  hlHighlightStrings | hlHighlightNumbers,
	},
	{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "package", "range", "return",
			"select", "struct", "switch", "type", "var",
			// Types (keyword2)
			"bool|", "byte|", "complex64|", "complex128|", "error|",
			"float32|", "float64|", "int|", "int8|", "int16|", "int32|",
			"int64|", "rune|", "string|", "uint|", "uint8|", "uint16|",
			"uint32|", "uint64|", "uintptr|", "any|",
			// Constants
			"true|", "false|", "nil|", "iota|",
			// Built-in functions
			"append", "cap", "close", "copy", "delete", "len", "make",
			"new", "panic", "print", "println", "recover",
		},
		SingleLineCommentStart: "//",
		MultiLineCommentStart:  "/*",
		MultiLineCommentEnd:    "*/",
		Flags:                  hlHighlightStrings | hlHighlightNumbers,
	},
	{
		FileType:  "python",
		FileMatch: []string{".py"},
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally",
			"for", "from", "global", "if", "import", "in", "is", "lambda",
			"nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield",
			// Types / built-ins (keyword2)
			"True|", "False|", "None|",
			"int|", "float|", "str|", "bool|", "list|", "dict|", "set|",
			"tuple|", "bytes|", "type|", "object|", "range|",
			// Built-in functions
			"print", "len", "input", "open", "super", "self",
			"isinstance", "issubclass", "hasattr", "getattr", "setattr",
		},
		SingleLineCommentStart: "# ",
		Flags:                  hlHighlightStrings | hlHighlightNumbers,
	},
}

func isSeparator(c byte) bool {
	return c == 0 || c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
		strings.ContainsRune(",.()+-/*=~%<>[];", rune(c))
}

// updateSyntax re-classifies one row given whether a block comment is
// open on entry. It returns true when the row's trailing open-comment
// flag changed, meaning the next row must be re-classified too.
func updateSyntax(s *Syntax, row *Row, openComment bool) bool {
	row.hl = make([]byte, len(row.render))

	if s == nil {
		changed := row.hlOpenComment
		row.hlOpenComment = false
		return changed
	}

	keywords := s.Keywords
	scs := s.SingleLineCommentStart
	mcs := s.MultiLineCommentStart
	mce := s.MultiLineCommentEnd

	r := row.render
	i := 0
	for i < len(r) && (r[i] == ' ' || r[i] == '\t') {
		i++
	}

	prevSep := true
	inString := byte(0)
	inComment := openComment

	for i < len(r) {
		c := r[i]

		// A line comment claims the rest of the row.
		if scs != "" && inString == 0 && !inComment &&
			strings.HasPrefix(r[i:], scs) {
			for j := i; j < len(r); j++ {
				row.hl[j] = hlComment
			}
			break
		}

		// Block comments: the delimiters are consumed atomically.
		if inComment {
			row.hl[i] = hlMLComment
			if mce != "" && strings.HasPrefix(r[i:], mce) {
				for j := 0; j < len(mce); j++ {
					row.hl[i+j] = hlMLComment
				}
				i += len(mce)
				inComment = false
				prevSep = true
				continue
			}
			prevSep = false
			i++
			continue
		} else if mcs != "" && mce != "" && inString == 0 &&
			strings.HasPrefix(r[i:], mcs) {
			for j := 0; j < len(mcs); j++ {
				row.hl[i+j] = hlMLComment
			}
			i += len(mcs)
			inComment = true
			prevSep = false
			continue
		}

		// Strings, with a backslash escaping exactly the next byte.
		if s.Flags&hlHighlightStrings != 0 {
			if inString != 0 {
				row.hl[i] = hlString
				if c == '\\' && i+1 < len(r) {
					row.hl[i+1] = hlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = hlString
				i++
				prevSep = false
				continue
			}
		}

		// Non-printable bytes (tabs were expanded away by the render
		// pass).
		if c < 32 || (c >= 127 && !unicode.IsPrint(rune(c))) {
			row.hl[i] = hlNonprint
			i++
			prevSep = false
			continue
		}

		// Numbers: a digit after a separator or another number, or a
		// dot continuing a number.
		if s.Flags&hlHighlightNumbers != 0 {
			if (c >= '0' && c <= '9' && (prevSep || (i > 0 && row.hl[i-1] == hlNumber))) ||
				(c == '.' && i > 0 && row.hl[i-1] == hlNumber) {
				row.hl[i] = hlNumber
				i++
				prevSep = false
				continue
			}
		}

		// Keywords need a separator on both sides.
		if prevSep {
			matched := false
			for _, kw := range keywords {
				kw2 := strings.HasSuffix(kw, "|")
				if kw2 {
					kw = kw[:len(kw)-1]
				}
				klen := len(kw)
				if i+klen <= len(r) && r[i:i+klen] == kw &&
					(i+klen == len(r) || isSeparator(r[i+klen])) {
					hlType := byte(hlKeyword1)
					if kw2 {
						hlType = hlKeyword2
					}
					for j := 0; j < klen; j++ {
						row.hl[i+j] = hlType
					}
					i += klen
					matched = true
					break
				}
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	return changed
}

func syntaxToColor(hl byte) int {
	switch hl {
	case hlComment, hlMLComment:
		return 36 // cyan
	case hlKeyword1:
		return 33 // yellow
	case hlKeyword2:
		return 32 // green
	case hlString:
		return 35 // magenta
	case hlNumber:
		return 31 // red
	case hlMatch:
		return 34 // blue
	default:
		return 37 // white
	}
}

// selectSyntax picks the highlight scheme for a filename, matching
// dotted patterns as suffixes and anything else as a substring. It
// returns nil when nothing matches.
func selectSyntax(filename string) *Syntax {
	for i := range HLDB {
		s := &HLDB[i]
		for _, pattern := range s.FileMatch {
			if strings.HasPrefix(pattern, ".") {
				if strings.HasSuffix(filename, pattern) {
					return s
				}
			} else {
				if strings.Contains(filename, pattern) {
					return s
				}
			}
		}
	}
	return nil
}
