package infra

import (
	"errors"
	"log/slog"

	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/shared"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

// Is lets use cases test repository failures against the shared sentinels
// without importing this package.
func (e RepositoryError) Is(target error) bool {
	switch target {
	case shared.ErrNotFound:
		return e.Kind == KindNotFound
	case shared.ErrDuplicate:
		return e.Kind == KindDuplicateKey
	case shared.ErrReferenceMissing:
		return e.Kind == KindForeignKeyViolated
	default:
		return false
	}
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// WrapRepoErr classifies err and logs it once. Missing rows are expected
// and logged at debug level only.
func WrapRepoErr(msg string, err error) error {
	kind := classify(err)

	if kind == KindNotFound {
		slog.Debug("Repository lookup missed: "+msg, slog.String("kind", string(kind)))
	} else {
		slog.Error("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.String("error", errString(err)),
		)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func NotFoundErr(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErrForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
