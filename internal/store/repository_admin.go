package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/jackc/pgerrcode"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository]. It handles admin account creation and lookup
// against the "admins" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the
// provided database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new admin record and returns the fully
// populated [models.Admin] with the server-assigned AdminID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin, admin.Username, admin.PasswordHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrUsernameAlreadyExists
		default:
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&admin.AdminID, &admin.Username, &admin.PasswordHash); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Admin{}, ErrUsernameAlreadyExists
		}
		return models.Admin{}, err
	}

	return admin, nil
}

// FindAdminByUsername retrieves the admin record whose username matches
// the given value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoAdminWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var foundAdmin models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByUsername, username)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.FindAdminByUsername").Msg("error: row is nil")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundAdmin.AdminID, &foundAdmin.Username, &foundAdmin.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrNoAdminWasFound
		}

		log.Err(err).Str("func", "*adminRepository.FindAdminByUsername").Msg("error: scanning error")
		return models.Admin{}, err
	}

	return foundAdmin, nil
}
