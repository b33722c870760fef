package content

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
)

// LanguageHint derives the editor language hint from a file name using the
// chroma lexer registry. Unknown extensions fall back to plain text.
func LanguageHint(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return "plaintext"
	}
	return lexer.Config().Name
}
