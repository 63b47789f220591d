package conf

import (
	"github.com/joshuapare/confkit/internal/engine"
	"github.com/joshuapare/confkit/internal/profile"
	"github.com/joshuapare/confkit/internal/textio"
)

// Open loads the config file at path for editing. A missing file loads
// as an empty document, so a following Save creates it.
//
// Example:
//
//	ed, err := conf.Open("/etc/app/config.inc.php", conf.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ed.SetKey("DB_HOST", "localhost")
//	err = ed.Save(conf.SaveOptions{})
func Open(path string, opts OpenOptions) (*Editor, error) {
	token := opts.Profile
	if token == "" {
		token = profile.Detect(path)
	}
	src, err := textio.Read(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	e := &Editor{
		eng:      engine.New(profile.Resolve(token)),
		path:     path,
		encoding: opts.Encoding,
		srcHash:  src.Hash,
		hasSrc:   src.Exists,
	}
	e.eng.Reset(src.Lines)
	return e, nil
}

// OpenBytes opens a document from an in-memory byte slice. The profile
// token must be given explicitly since there is no path to sniff; an
// empty token selects the generic dialect.
func OpenBytes(data []byte, opts OpenOptions) (*Editor, error) {
	text, err := textio.Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	e := &Editor{eng: engine.New(profile.Resolve(opts.Profile))}
	e.eng.Reset(textio.SplitLines(text))
	return e, nil
}

// New returns an Editor over an empty in-memory document using the given
// profile token ("" for generic). Use SaveTo to persist it.
func New(profileToken string) *Editor {
	return &Editor{eng: engine.New(profile.Resolve(profileToken))}
}
