// Package errors is the single errors import for wr-ai.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors, so
// stack traces and details such as git's stderr travel with every wrap, and
// defines the typed failures of the fetch, catalog, selection and merge
// layers. Each typed failure matches one sentinel through [Is]:
//
//	var nf *errors.NotFoundError
//	if errors.As(err, &nf) {
//	    fmt.Fprintln(os.Stderr, nf.Hint())
//	}
//
// [ExitCode] turns any chain into the process status: 0 for success and
// for [ErrCancelled], [ExitUser] for mistakes the user can fix, and
// [ExitSystem] for I/O, network and git failures. An [ExitError] anywhere in
// the chain overrides the mapping and may carry a suggestion for the user.
package errors
