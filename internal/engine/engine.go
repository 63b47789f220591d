package engine

import (
	"strings"

	"github.com/joshuapare/confkit/internal/profile"
	"github.com/joshuapare/confkit/internal/strutil"
)

// Engine edits one document of text lines by key. It keeps a three-way
// partition of the document (before / block / after) so edits can be
// scoped to a delimited region, and two pieces of cursor state: the
// isolation cursor (which occurrence of a marker pair the last Isolate
// selected) and the find cursor (where the last key search matched, and
// a shadow copy of the block used to walk duplicate keys).
//
// An Engine is not safe for concurrent use; every instance owns its
// document exclusively.
type Engine struct {
	prof profile.Profile

	block    []string
	before   []string
	after    []string
	isolated bool

	iso  isoCursor
	find findCursor
}

// isoCursor remembers the marker pair of the last Isolate call so that
// an identical consecutive call selects the next occurrence.
type isoCursor struct {
	begin, end string
	count      int
	active     bool
}

// findCursor remembers the last searched key and where it matched. The
// shadow slice is a copy of the block with already-matched lines blanked
// out, so repeated Find calls with the same key surface the next
// duplicate. index is -1 when there is no current match; hasKey reports
// whether a key context exists at all (a failed Find still establishes
// one, which is what lets Set append a brand-new line).
type findCursor struct {
	key    string
	index  int
	shadow []string
	hasKey bool
}

// New returns an Engine over an empty document.
func New(p profile.Profile) *Engine {
	e := &Engine{prof: p}
	e.resetFind()
	return e
}

// Profile returns the active format profile.
func (e *Engine) Profile() profile.Profile { return e.prof }

// SetProfile swaps the active format profile. It changes how subsequent
// find/get/set calls match and synthesize lines; the document itself is
// untouched.
func (e *Engine) SetProfile(p profile.Profile) { e.prof = p }

// Reset replaces the document with lines and clears all cursor and
// partition state. The slice is not copied; callers hand over ownership.
func (e *Engine) Reset(lines []string) {
	e.block = lines
	e.before, e.after = nil, nil
	e.isolated = false
	e.iso = isoCursor{}
	e.resetFind()
}

// Block returns the lines of the currently scoped region. The returned
// slice aliases engine state and must not be mutated by callers.
func (e *Engine) Block() []string { return e.block }

// Lines returns the full document: before + block + after. Unlike Merge
// it does not change engine state.
func (e *Engine) Lines() []string {
	if !e.isolated {
		return e.block
	}
	doc := make([]string, 0, len(e.before)+len(e.block)+len(e.after))
	doc = append(doc, e.before...)
	doc = append(doc, e.block...)
	doc = append(doc, e.after...)
	return doc
}

// Isolated reports whether a region is currently isolated.
func (e *Engine) Isolated() bool { return e.isolated }

// -----------------------------------------------------------------------------
// Region partitioning
// -----------------------------------------------------------------------------

// Isolate scopes subsequent key operations to the lines strictly between
// a begin marker line and the next end marker line after it. Markers
// match by exact line equality. Any currently isolated region is merged
// back first, committing its edits.
//
// Calling Isolate again with the same marker pair selects the next
// occurrence of the pair; a different pair restarts at the first
// occurrence. Empty markers disable isolation.
//
// On failure (marker absent, occurrences exhausted, or no end marker
// after the selected begin) the document is left unisolated and Isolate
// returns false.
func (e *Engine) Isolate(begin, end string) bool {
	e.commit()
	if begin == "" && end == "" {
		e.iso = isoCursor{}
		return false
	}
	if e.iso.active && e.iso.begin == begin && e.iso.end == end {
		e.iso.count++
	} else {
		e.iso = isoCursor{begin: begin, end: end, active: true}
	}

	var begins, ends []int
	for i, line := range e.block {
		if line == begin {
			begins = append(begins, i)
		}
		if line == end {
			ends = append(ends, i)
		}
	}
	if len(begins) == 0 || len(ends) == 0 || e.iso.count >= len(begins) {
		return false
	}

	b := begins[e.iso.count]
	stop := -1
	for _, i := range ends {
		if i > b {
			stop = i
			break
		}
	}
	if stop < 0 {
		return false
	}

	doc := e.block
	e.before = append([]string(nil), doc[:b+1]...)
	e.block = append([]string(nil), doc[b+1:stop]...)
	e.after = append([]string(nil), doc[stop:]...)
	e.isolated = true
	e.resetFind()
	return true
}

// Merge recombines before + block + after into the full document and
// clears all cursor state. Merging an already-unisolated document is a
// no-op beyond the cursor reset.
func (e *Engine) Merge() {
	e.commit()
	e.iso = isoCursor{}
}

// commit folds an isolated region back into the document and resets the
// find cursor, but leaves the isolation cursor alone so that consecutive
// Isolate calls with the same markers can advance to the next occurrence.
func (e *Engine) commit() {
	if e.isolated {
		doc := make([]string, 0, len(e.before)+len(e.block)+len(e.after))
		doc = append(doc, e.before...)
		doc = append(doc, e.block...)
		doc = append(doc, e.after...)
		e.block = doc
		e.before, e.after = nil, nil
		e.isolated = false
	}
	e.resetFind()
}

// CreateRegion appends a new delimited region at the end of the document
// and isolates its (empty) body, so subsequent Set calls fill it. Any
// current isolation is merged first.
func (e *Engine) CreateRegion(begin, end string) {
	e.commit()
	doc := e.block
	e.before = append(append(make([]string, 0, len(doc)+1), doc...), begin)
	e.block = nil
	e.after = []string{end}
	e.isolated = true
	e.resetFind()
}

// RemoveRegion deletes the currently isolated region from the document,
// including both of its marker lines. Without an active isolation it is
// a no-op.
func (e *Engine) RemoveRegion() {
	if !e.isolated {
		return
	}
	if n := len(e.before); n > 0 {
		e.before = e.before[:n-1]
	}
	if len(e.after) > 0 {
		e.after = e.after[1:]
	}
	e.block = nil
	e.commit()
}

// -----------------------------------------------------------------------------
// Key cursor
// -----------------------------------------------------------------------------

// Find searches the current block for a line carrying key. Matching is
// whitespace-insensitive: every whitespace rune is removed from both the
// candidate line and the composed target before the prefix test, so
// indentation and alignment never matter. Both the plain and the
// commented form of the target match.
//
// Repeated calls with the same key continue past earlier matches, so
// duplicate keys can be walked one Find at a time. A different key
// restarts the scan against the live block.
//
// A failed Find still establishes key context: a following Set will
// append a newly synthesized line for the key.
func (e *Engine) Find(key string) bool {
	if !e.find.hasKey || e.find.key != key {
		e.find.key = key
		e.find.hasKey = true
		e.find.shadow = append([]string(nil), e.block...)
	}

	target := strutil.DeleteSpace(e.prof.KeyPrefix + key + e.prof.KeySuffix)
	commented := strutil.DeleteSpace(e.prof.Comment) + target

	e.find.index = -1
	for i, line := range e.find.shadow {
		n := strutil.DeleteSpace(line)
		if n == "" {
			continue
		}
		if strings.HasPrefix(n, target) || strings.HasPrefix(n, commented) {
			e.find.index = i
			e.find.shadow[i] = ""
			return true
		}
	}
	return false
}

// matched returns the line index of the current match, or -1.
func (e *Engine) matched() int {
	if e.find.index < 0 || e.find.index >= len(e.block) {
		return -1
	}
	return e.find.index
}

// Get returns the value of the line matched by the last Find. The key
// template is stripped from the front of the line and the value
// decoration from both ends; what remains is the value. Without a
// current match Get returns ("", false).
func (e *Engine) Get() (string, bool) {
	i := e.matched()
	if i < 0 {
		return "", false
	}
	v := strutil.StripLeft(e.block[i], e.prof.KeyPrefix+e.find.key+e.prof.KeySuffix)
	if e.prof.ValuePrefix != "" && strutil.HasPrefix(v, e.prof.ValuePrefix) {
		v = v[len(e.prof.ValuePrefix):]
	}
	if e.prof.ValueSuffix != "" {
		v = strutil.StripRight(v, e.prof.ValueSuffix)
	}
	return v, true
}

// GetDefault looks key up and returns its value, or def when the key is
// absent.
func (e *Engine) GetDefault(key, def string) string {
	if e.Find(key) {
		if v, ok := e.Get(); ok {
			return v
		}
	}
	return def
}

// Set writes value for the key of the last Find. A matched line is
// overwritten in place; with key context but no match a new line is
// appended to the block and becomes the current match. Without any key
// context Set is a no-op.
func (e *Engine) Set(value string) {
	if !e.find.hasKey {
		return
	}
	line := e.prof.KeyPrefix + e.find.key + e.prof.KeySuffix +
		e.prof.ValuePrefix + value + e.prof.ValueSuffix
	if i := e.matched(); i >= 0 {
		e.block[i] = line
		return
	}
	e.block = append(e.block, line)
	e.find.index = len(e.block) - 1
}

// SetKey finds key and sets its value, creating the line when the key is
// absent. Create-or-update in one call.
func (e *Engine) SetKey(key, value string) {
	e.Find(key)
	e.Set(value)
}

// Remove deletes the matched line from the block. Without a current
// match it is a no-op. The match context is invalidated; Get/Set need a
// fresh Find afterwards.
func (e *Engine) Remove() {
	i := e.matched()
	if i < 0 {
		return
	}
	e.block = append(e.block[:i], e.block[i+1:]...)
	e.find.index = -1
}

// RemoveAll deletes every line matching key and returns the count. The
// find cursor is restarted before each scan so the indices stay valid
// while lines shift.
func (e *Engine) RemoveAll(key string) int {
	n := 0
	for {
		e.resetFind()
		if !e.Find(key) {
			return n
		}
		e.Remove()
		n++
	}
}

// IsCommented reports whether the matched line is disabled by the
// dialect comment prefix. Leading whitespace on the line and trailing
// whitespace in the prefix are ignored.
func (e *Engine) IsCommented() bool {
	i := e.matched()
	if i < 0 {
		return false
	}
	return strutil.HasPrefix(strutil.Trim(e.block[i]), strutil.Trim(e.prof.Comment))
}

// Comment disables the matched line by prepending the comment prefix.
// No-op without a match or when the line is already commented.
func (e *Engine) Comment() {
	i := e.matched()
	if i < 0 || e.IsCommented() {
		return
	}
	e.block[i] = e.prof.Comment + e.block[i]
}

// Uncomment re-enables the matched line by removing the leftmost
// occurrence of the comment prefix. When the prefix with its exact
// spacing is not present, the whitespace-trimmed form is removed
// instead, accommodating files with inconsistent spacing around the
// marker. No-op without a match or when the line is not commented.
func (e *Engine) Uncomment() {
	i := e.matched()
	if i < 0 || !e.IsCommented() {
		return
	}
	line := e.block[i]
	if strings.Contains(line, e.prof.Comment) {
		e.block[i] = strings.Replace(line, e.prof.Comment, "", 1)
		return
	}
	e.block[i] = strings.Replace(line, strutil.Trim(e.prof.Comment), "", 1)
}

func (e *Engine) resetFind() {
	e.find = findCursor{index: -1}
}
