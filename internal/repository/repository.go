// Package repository contains the PostgreSQL data access layer. Every
// repository holds the shared pgxpool and exposes context-aware methods.
package repository

import (
	"errors"
	"time"

	apperrors "github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/errors"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches
const uniqueViolation = "23505"

// observe records duration and outcome of a database operation
func observe(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(metrics.MeasureDuration(start))
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
}

// errNoRows lets Exec-based paths reuse the ErrNoRows → not-found mapping
func errNoRows() error {
	return pgx.ErrNoRows
}

// mapError converts pgx-layer errors into the application error taxonomy
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFoundError(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ConflictError(resource + " already exists")
	}
	return err
}
