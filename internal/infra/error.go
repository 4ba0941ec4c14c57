package infra

import (
	"errors"
	"log/slog"

	"wedding-rsvp/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Is lets the usecase layer match repository failures against the shared taxonomy.
func (e RepositoryError) Is(target error) bool {
	switch target {
	case errs.ErrNotFound:
		return e.Kind == KindNotFound
	case errs.ErrServerFault:
		return e.Kind != KindNotFound
	}
	return false
}

// WrapRepoErr logs and wraps err. Kind defaults to KindIOFailure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindIOFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
		err = errs.Wrap(err, msg)
	}
	slog.Error("Repository error: "+msg, logArgs...)

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      RepositoryErrorKind = "NOT_FOUND"
	KindIOFailure     RepositoryErrorKind = "IO_FAILURE"
	KindDecodeFailure RepositoryErrorKind = "DECODE_FAILURE"
	KindLockTimeout   RepositoryErrorKind = "LOCK_TIMEOUT"
)
