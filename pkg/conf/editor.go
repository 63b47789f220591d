package conf

import (
	"os"

	"github.com/joshuapare/confkit/internal/engine"
	"github.com/joshuapare/confkit/internal/profile"
	"github.com/joshuapare/confkit/internal/textio"
	"github.com/joshuapare/confkit/pkg/types"
)

// Editor owns one loaded document and the cursor state of the editing
// engine. It is the single entry point for all key and region
// operations. Not safe for concurrent use.
type Editor struct {
	eng      *engine.Engine
	path     string
	encoding string
	srcHash  uint64
	hasSrc   bool
}

// Path returns the source path of the document, empty for in-memory
// editors.
func (e *Editor) Path() string { return e.path }

// SetProfile switches the active dialect by token. Subsequent key
// operations match and synthesize lines with the new templates; the
// document itself is untouched.
func (e *Editor) SetProfile(token string) {
	e.eng.SetProfile(profile.Resolve(token))
}

// -----------------------------------------------------------------------------
// Regions
// -----------------------------------------------------------------------------

// Isolate scopes subsequent key operations to the lines strictly between
// the begin and end marker lines. See engine.Engine.Isolate for the
// occurrence-advance and failure semantics.
func (e *Editor) Isolate(begin, end string) bool { return e.eng.Isolate(begin, end) }

// Merge commits an isolated region back into the document and resets all
// cursors. Idempotent.
func (e *Editor) Merge() { e.eng.Merge() }

// CreateRegion appends a new delimited region at the end of the document
// and isolates its empty body.
func (e *Editor) CreateRegion(begin, end string) { e.eng.CreateRegion(begin, end) }

// RemoveRegion deletes the currently isolated region, markers included.
func (e *Editor) RemoveRegion() { e.eng.RemoveRegion() }

// Isolated reports whether a region is currently isolated.
func (e *Editor) Isolated() bool { return e.eng.Isolated() }

// -----------------------------------------------------------------------------
// Keys
// -----------------------------------------------------------------------------

// Find locates the next line carrying key in the current block. Repeated
// calls with the same key walk duplicate keys; see engine.Engine.Find.
func (e *Editor) Find(key string) bool { return e.eng.Find(key) }

// Get returns the value of the matched line.
func (e *Editor) Get() (string, bool) { return e.eng.Get() }

// GetDefault returns the value for key, or def when absent.
func (e *Editor) GetDefault(key, def string) string { return e.eng.GetDefault(key, def) }

// Set writes value for the current key context, overwriting the matched
// line or appending a new one.
func (e *Editor) Set(value string) { e.eng.Set(value) }

// SetKey creates or updates key with value.
func (e *Editor) SetKey(key, value string) { e.eng.SetKey(key, value) }

// Remove deletes the matched line.
func (e *Editor) Remove() { e.eng.Remove() }

// RemoveAll deletes every line matching key and returns the count.
func (e *Editor) RemoveAll(key string) int { return e.eng.RemoveAll(key) }

// IsCommented reports whether the matched line is commented out.
func (e *Editor) IsCommented() bool { return e.eng.IsCommented() }

// Comment disables the matched line.
func (e *Editor) Comment() { e.eng.Comment() }

// Uncomment re-enables the matched line.
func (e *Editor) Uncomment() { e.eng.Uncomment() }

// Keys enumerates the key-bearing lines of the current block.
func (e *Editor) Keys() []KeyLine { return e.eng.Keys() }

// -----------------------------------------------------------------------------
// Serialization
// -----------------------------------------------------------------------------

// Lines returns the full document (any isolated region folded in view
// only; engine state is unchanged).
func (e *Editor) Lines() []string { return e.eng.Lines() }

// String returns the document serialized with LF line endings.
func (e *Editor) String() string { return textio.JoinLines(e.eng.Lines()) }

// Bytes returns the serialized document.
func (e *Editor) Bytes() []byte { return []byte(e.String()) }

// Save merges and writes the document back to its source path. Unless
// opts.Force is set, Save fails with ErrModifiedOnDisk when the file
// content changed on disk since the load.
func (e *Editor) Save(opts SaveOptions) error {
	if e.path == "" {
		return ErrNoDocument
	}
	return e.save(e.path, opts, true)
}

// SaveTo merges and writes the document to a different destination path.
// No conflict check applies: the destination is not the tracked source.
func (e *Editor) SaveTo(path string, opts SaveOptions) error {
	return e.save(path, opts, false)
}

func (e *Editor) save(path string, opts SaveOptions, tracked bool) error {
	e.eng.Merge()

	if tracked && !opts.Force {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if !e.hasSrc || textio.Hash(data) != e.srcHash {
				return ErrModifiedOnDisk
			}
		case os.IsNotExist(err):
			if e.hasSrc {
				return ErrModifiedOnDisk
			}
		default:
			return &types.Error{Kind: types.ErrKindIO, Msg: "stat " + path, Err: err}
		}
	}

	hash, err := textio.Write(path, e.eng.Lines(), opts.NoLock)
	if err != nil {
		return err
	}
	if tracked {
		e.srcHash = hash
		e.hasSrc = true
	}
	return nil
}

// Reload discards the in-memory document and re-reads it from the source
// path, resetting all cursors.
func (e *Editor) Reload() error {
	if e.path == "" {
		return ErrNoDocument
	}
	src, err := textio.Read(e.path, e.encoding)
	if err != nil {
		return err
	}
	e.srcHash = src.Hash
	e.hasSrc = src.Exists
	e.eng.Reset(src.Lines)
	return nil
}
