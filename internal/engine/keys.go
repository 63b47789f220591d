package engine

import (
	"strings"

	"github.com/joshuapare/confkit/internal/strutil"
	"github.com/joshuapare/confkit/pkg/types"
)

// Keys enumerates the key-bearing lines of the current block in document
// order. A line qualifies when, after an optional comment prefix, it
// starts with the dialect key prefix and carries the key suffix. The
// enumeration is read-only and does not disturb the find cursor.
func (e *Engine) Keys() []types.KeyLine {
	var out []types.KeyLine
	for i, line := range e.block {
		s := strutil.Trim(line)
		if s == "" {
			continue
		}
		commented := false
		if c := strutil.Trim(e.prof.Comment); c != "" && strutil.HasPrefix(s, c) {
			commented = true
			s = strutil.Trim(s[len(c):])
		}
		if e.prof.KeyPrefix != "" {
			if !strutil.HasPrefix(s, e.prof.KeyPrefix) {
				continue
			}
			s = s[len(e.prof.KeyPrefix):]
		}
		sep := e.prof.KeySuffix
		if sep == "" {
			continue
		}
		j := strings.Index(s, sep)
		if j <= 0 {
			continue
		}
		key := strutil.Trim(s[:j])
		v := s[j+len(sep):]
		if e.prof.ValuePrefix != "" && strutil.HasPrefix(v, e.prof.ValuePrefix) {
			v = v[len(e.prof.ValuePrefix):]
		}
		if e.prof.ValueSuffix != "" {
			v = strutil.StripRight(v, e.prof.ValueSuffix)
		}
		out = append(out, types.KeyLine{
			Key:       key,
			Value:     v,
			Index:     i,
			Commented: commented,
		})
	}
	return out
}
