package errors

import crdb "github.com/cockroachdb/errors"

// Wrapping helpers re-exported from cockroachdb/errors.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Errorf      = crdb.Errorf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
	Is          = crdb.Is
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	Mark        = crdb.Mark

	GetAllDetails = crdb.GetAllDetails
)

// Sentinels matched by ExitCode. The typed errors in this package report
// themselves as one of these through their Is methods.
var (
	ErrNotFound      = crdb.New("item not found")
	ErrInvalidConfig = crdb.New("invalid configuration")
	ErrFetch         = crdb.New("repository fetch failed")
	ErrPathTraversal = crdb.New("path traversal detected")
	ErrJSONParse     = crdb.New("invalid JSON")

	// ErrCancelled covers Ctrl-C, an aborted picker and a declined
	// confirmation. It exits 0.
	ErrCancelled = crdb.New("cancelled")
)
