// Package profile maps configuration dialect tokens to the fixed line
// templates the engine uses to match and synthesize key lines.
//
// A key line has the shape
//
//	KeyPrefix + key + KeySuffix + ValuePrefix + value + ValueSuffix
//
// optionally preceded by Comment when the entry is disabled. Resolution
// never fails: unrecognized tokens fall back to the generic quoted
// assignment dialect (key='value'; with // comments).
package profile

import "github.com/joshuapare/confkit/internal/strutil"

// Dialect tokens recognized by Resolve.
const (
	TokenINI         = "ini"
	TokenPHP         = "php"
	TokenPHPDefine   = "php-define"
	TokenPHPUnquoted = "php-unquoted"
	TokenPHPVariable = "php-variable"
	TokenConf        = "conf"
	TokenCnf         = "cnf"
)

// Profile is the immutable marker template for one dialect.
type Profile struct {
	Comment     string
	KeyPrefix   string
	KeySuffix   string
	ValuePrefix string
	ValueSuffix string
}

// Generic is the fallback profile used for unrecognized extensions.
var Generic = Profile{
	Comment:     "//",
	KeySuffix:   "=",
	ValuePrefix: "'",
	ValueSuffix: "';",
}

var dialects = map[string]Profile{
	// name=value, ; comments
	TokenINI: {
		Comment:   ";",
		KeySuffix: "=",
	},
	// define('KEY','VALUE'); with // comments
	TokenPHP: {
		Comment:     "//",
		KeyPrefix:   "define('",
		KeySuffix:   "','",
		ValueSuffix: "');",
	},
	TokenPHPDefine: {
		Comment:     "//",
		KeyPrefix:   "define('",
		KeySuffix:   "','",
		ValueSuffix: "');",
	},
	// define('KEY',VALUE); for numeric/boolean constants
	TokenPHPUnquoted: {
		Comment:     "//",
		KeyPrefix:   "define('",
		KeySuffix:   "',",
		ValueSuffix: ");",
	},
	// $KEY = 'VALUE';
	TokenPHPVariable: {
		Comment:     "//",
		KeyPrefix:   "$",
		KeySuffix:   "=",
		ValuePrefix: "'",
		ValueSuffix: "';",
	},
	// Apache-style "Directive value", # comments
	TokenConf: {
		Comment:   "# ",
		KeySuffix: " ",
	},
	// MySQL-style name=value, # comments
	TokenCnf: {
		Comment:   "# ",
		KeySuffix: "=",
	},
}

// Resolve returns the Profile for an extension token. Unknown tokens
// resolve to Generic; resolution never fails.
func Resolve(token string) Profile {
	if p, ok := dialects[token]; ok {
		return p
	}
	return Generic
}

// Detect extracts the extension token from a file path, suitable for
// passing to Resolve. A path with no dot yields the path's base name
// itself, which simply resolves to Generic unless it happens to be a
// known token.
func Detect(path string) string {
	return strutil.LastSegment(strutil.LastSegment(path, "/"), ".")
}
