// Package conf edits structured text configuration files by key, without
// a grammar-aware parser. It handles ini-style files, Apache-style
// directives, MySQL option files, shell-variable assignments, and
// source-embedded key/value pairs such as define('KEY','VALUE');.
//
// # Overview
//
// A file is loaded into an Editor, which holds the document as a slice of
// lines. Keys are located by whitespace-insensitive, comment-aware prefix
// matching against per-dialect line templates; matched lines can be read,
// overwritten, removed, or comment-toggled, and the document is then
// serialized back to disk. This is line-oriented pattern matching, not
// AST construction: syntax is never validated, and values never span
// lines.
//
// # Opening a File
//
//	ed, err := conf.Open("config.inc.php", conf.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The dialect is sniffed from the file extension (ini, php, php-define,
// php-unquoted, php-variable, conf, cnf); anything else gets the generic
// quoted-assignment dialect. A missing file is not an error — it loads as
// an empty document, so create-then-save just works.
//
// # Editing by Key
//
//	ed.SetKey("DB_HOST", "localhost") // create or update
//	host := ed.GetDefault("DB_HOST", "127.0.0.1")
//
//	for ed.Find("Alias") {            // walk duplicate keys
//	    v, _ := ed.Get()
//	    ...
//	}
//
// # Delimited Regions
//
// Edits can be narrowed to the lines between a begin and an end marker
// line (exact match). Repeating Isolate with the same markers advances to
// the next region with those markers.
//
//	if ed.Isolate("# BEGIN app", "# END app") {
//	    ed.SetKey("enabled", "1")
//	}
//	ed.Merge()
//
// # Saving
//
//	err = ed.Save(conf.SaveOptions{})
//
// Save refuses to overwrite a file whose content changed on disk since
// the load (ErrModifiedOnDisk) unless Force is set, and holds an advisory
// lock for the duration of the write.
//
// An Editor is not safe for concurrent use; callers needing concurrent
// edits must serialize access or use one Editor per file.
package conf
