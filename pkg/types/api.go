package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO       ErrKind = iota // underlying filesystem failure
	ErrKindEncoding                // undecodable or unsupported input encoding
	ErrKindConflict                // destination changed on disk since load
	ErrKindState                   // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrModifiedOnDisk indicates the file changed between load and save.
	ErrModifiedOnDisk = &Error{Kind: ErrKindConflict, Msg: "file modified on disk since load"}
	// ErrUnsupportedEncoding indicates an input encoding we cannot decode.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindEncoding, Msg: "unsupported input encoding"}
	// ErrNoDocument indicates an editor operation before any load.
	ErrNoDocument = &Error{Kind: ErrKindState, Msg: "no document loaded"}
)

// -----------------------------------------------------------------------------
// Options & Results
// -----------------------------------------------------------------------------

// Input encoding names accepted by OpenOptions.Encoding. The empty string
// means UTF-8 with automatic BOM detection (UTF-8 and UTF-16LE BOMs).
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16LE     = "utf-16le"
	EncodingWindows1252 = "windows-1252"
)

// OpenOptions controls how a document is loaded and interpreted.
type OpenOptions struct {
	// Profile overrides the dialect token normally sniffed from the file
	// extension ("ini", "php", "conf", ...). Empty means sniff.
	Profile string

	// Encoding names the input encoding. Empty means UTF-8 with BOM
	// detection.
	Encoding string
}

// SaveOptions controls how a document is written back.
type SaveOptions struct {
	// Force skips the modified-on-disk conflict check.
	Force bool

	// NoLock skips the advisory file lock around the write.
	NoLock bool
}

// KeyLine describes one key-bearing line of the current block, as
// reported by key enumeration.
type KeyLine struct {
	Key       string // key token
	Value     string // value with dialect decoration stripped
	Index     int    // line index within the current block
	Commented bool   // line is disabled by the dialect comment prefix
}
