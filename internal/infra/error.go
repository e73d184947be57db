package infra

import (
	"context"
	"errors"

	"campsite-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound    RepositoryErrorKind = "NOT_FOUND"
	KindConflict    RepositoryErrorKind = "CONFLICT"
	KindUnavailable RepositoryErrorKind = "UNAVAILABLE"
	KindTimeout     RepositoryErrorKind = "TIMEOUT"
	KindDBFailure   RepositoryErrorKind = "DB_FAILURE"
)

// Postgres error codes the repositories care about.
const (
	pgErrCodeExclusionViolation   = "23P01"
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

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

func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else if err != nil {
		k = classify(err)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// classify maps driver-level failures onto repository kinds so the usecase
// layer can distinguish losing a race (Conflict) from transient store trouble
// (Unavailable) without importing pgx.
func classify(err error) RepositoryErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation, pgErrCodeUniqueViolation:
			return KindConflict
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return KindUnavailable
		}
	}

	if pgconn.SafeToRetry(err) {
		return KindUnavailable
	}

	return KindDBFailure
}
