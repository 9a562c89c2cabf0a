package logfacade

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// maxChainDepth guards error chain walks against cycles.
const maxChainDepth = 50

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// The traversal prefers Station-Manager DetailedError.Cause() and then
// falls back to stdlib errors.Unwrap.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxChainDepth {
		visited++

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		// repeated messages mean an unusual cycle
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// rootCause returns the innermost error of err's cause chain.
func rootCause(err error) error {
	for i := 0; err != nil && i < maxChainDepth; i++ {
		var next error
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			next = dErr.Cause()
		} else {
			next = stderrs.Unwrap(err)
		}
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// addErrorChain attaches err under key together with its full history:
// <key>_chain, <key>_root, <key>_history, <key>_ops and <key>_root_op.
func addErrorChain(event *zerolog.Event, key string, err error) {
	event.AnErr(key, err)
	chain, ops, root, rootOp := buildErrorChain(err)
	if len(chain) == 0 {
		return
	}
	event.Strs(key+"_chain", chain)
	event.Str(key+"_root", root)
	event.Str(key+"_history", joinChain(chain))
	event.Strs(key+"_ops", ops)
	if rootOp != emptyString {
		event.Str(key+"_root_op", rootOp)
	}
}
