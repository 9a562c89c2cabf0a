package logfacade

import (
	"github.com/Station-Manager/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// reencoder rewrites a materialised message before emission.
type reencoder func(string) (string, error)

// newReencoder returns a transform that reads the UTF-8 bytes of a message
// as if they were encoded in charset. Some log viewers decode files with a
// legacy code page; feeding them pre-garbled text makes accented characters
// come out right there and wrong everywhere else. The transform is not
// idempotent and is applied once per entry. An empty charset disables it.
func newReencoder(charset string) (reencoder, error) {
	const op errors.Op = "logfacade.newReencoder"
	if charset == emptyString {
		return nil, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgBadCharset)
	}
	return func(s string) (string, error) {
		if isASCII(s) {
			return s, nil
		}
		return enc.NewDecoder().String(s)
	}, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
