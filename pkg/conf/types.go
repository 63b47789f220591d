package conf

import "github.com/joshuapare/confkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/conf

// Options.
type (
	OpenOptions = types.OpenOptions
	SaveOptions = types.SaveOptions
)

// KeyLine describes one key-bearing line, as returned by Keys.
type KeyLine = types.KeyLine

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindIO       = types.ErrKindIO
	ErrKindEncoding = types.ErrKindEncoding
	ErrKindConflict = types.ErrKindConflict
	ErrKindState    = types.ErrKindState
)

// Sentinel errors.
var (
	ErrModifiedOnDisk      = types.ErrModifiedOnDisk
	ErrUnsupportedEncoding = types.ErrUnsupportedEncoding
	ErrNoDocument          = types.ErrNoDocument
)

// Input encoding names for OpenOptions.Encoding.
const (
	EncodingUTF8        = types.EncodingUTF8
	EncodingUTF16LE     = types.EncodingUTF16LE
	EncodingWindows1252 = types.EncodingWindows1252
)
