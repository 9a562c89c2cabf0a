package logfacade

// PublishError logs err at Error level, prefixed with extra when given and
// carrying its full cause chain, and returns the root cause so the caller
// can inspect or return it. A nil err logs nothing and returns nil.
func (f *Facade) PublishError(err error, extra string) error {
	if err == nil {
		return nil
	}
	root := rootCause(err)
	f.emit(call{
		level: ErrorLevel,
		err:   err,
		message: func() (string, error) {
			return FullMessage(err, extra, 0), nil
		},
	})
	return root
}

// FullMessage combines extra, the text of err and the text of its root
// cause when that differs. A positive maxLength truncates the result to
// that many runes.
func FullMessage(err error, extra string, maxLength int) string {
	msg := emptyString
	if err != nil {
		msg = err.Error()
		if root := rootCause(err); root != nil {
			if inner := root.Error(); inner != msg {
				msg += "\n" + inner
			}
		}
	}
	if extra != emptyString {
		if msg == emptyString {
			msg = extra
		} else {
			msg = extra + " " + msg
		}
	}
	if maxLength > 0 {
		if r := []rune(msg); len(r) > maxLength {
			msg = string(r[:maxLength])
		}
	}
	return msg
}
