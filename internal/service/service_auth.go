package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-student-desk/internal/config"
	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/store"
	"github.com/MKhiriev/go-student-desk/internal/utils"
	"github.com/MKhiriev/go-student-desk/models"
)

// authService is the concrete implementation of AuthService.
// It handles admin bootstrap, credential verification for both roles,
// JWT token lifecycle, and principal resolution, using the admin and
// student repositories for persistence and bcrypt for password hashing.
type authService struct {
	// adminRepository is the data-access layer used to create and look
	// up admin accounts.
	adminRepository store.AdminRepository

	// studentRepository is the data-access layer used to look up
	// student accounts by email.
	studentRepository store.StudentRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// allowAdminSignup gates the unauthenticated admin bootstrap
	// operation. Off by default; intended for first-run provisioning.
	allowAdminSignup bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(admins store.AdminRepository, students store.StudentRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository:   admins,
		studentRepository: students,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		allowAdminSignup:  cfg.AllowAdminSignup,
		logger:            logger,
	}
}

// RegisterAdmin creates a new admin account from the bootstrap operation.
//
// It validates that both Username and Password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the AdminRepository.
//
// Returns the persisted admin (with a server-assigned AdminID) or:
//   - ErrAdminSignupDisabled if the bootstrap switch is off.
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterAdmin(ctx context.Context, admin models.AdminCreate) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if !a.allowAdminSignup {
		log.Warn().Str("username", admin.Username).Msg("admin signup attempted while disabled")
		return models.Admin{}, ErrAdminSignupDisabled
	}

	if admin.Username == "" || admin.Password == "" {
		log.Error().Str("username", admin.Username).Msg("invalid admin data provided")
		return models.Admin{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(admin.Password)
	if err != nil {
		log.Err(err).Msg("admin password hashing failed")
		return models.Admin{}, fmt.Errorf("admin password hashing failed: %w", err)
	}

	registeredAdmin, err := a.adminRepository.CreateAdmin(ctx, models.Admin{
		Username:     admin.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", admin.Username).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return registeredAdmin, nil
}

// LoginAdmin authenticates an admin by username and password.
//
// Returns the authenticated admin record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. admin
//     not found — see store.ErrNoAdminWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) LoginAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid admin credentials provided")
		return models.Admin{}, ErrInvalidDataProvided
	}

	foundAdmin, err := a.adminRepository.FindAdminByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("admin search by username failed")
		return models.Admin{}, fmt.Errorf("admin search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundAdmin.PasswordHash) {
		log.Error().Int64("id", foundAdmin.AdminID).Str("username", username).Msg("wrong password")
		return models.Admin{}, ErrWrongPassword
	}

	return foundAdmin, nil
}

// LoginStudent authenticates a student by email and password.
//
// Returns the authenticated student record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. student
//     not found — see store.ErrNoStudentWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) LoginStudent(ctx context.Context, email, password string) (models.Student, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid student credentials provided")
		return models.Student{}, ErrInvalidDataProvided
	}

	foundStudent, err := a.studentRepository.FindStudentByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("student search by email failed")
		return models.Student{}, fmt.Errorf("student search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundStudent.PasswordHash) {
		log.Error().Int64("id", foundStudent.StudentID).Str("email", email).Msg("wrong password")
		return models.Student{}, ErrWrongPassword
	}

	return foundStudent, nil
}

// CreateToken issues a signed JWT for the given subject and role.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, subject string, role models.Role) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal is the shared guard algorithm for both roles.
//
// It decodes and validates the token, requires the role claim to equal
// requiredRole, and looks up the account behind the subject claim
// (admins by username, students by email). A token that validates
// structurally but references a deleted account is still rejected: the
// store is re-queried on every request, never cached.
//
// Every failure along the path is reported as ErrUnauthorized; callers
// must not leak the distinction to the end user.
func (a *authService) ResolvePrincipal(ctx context.Context, tokenString string, requiredRole models.Role) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.Principal{}, ErrUnauthorized
	}

	if token.Role() != requiredRole {
		log.Error().
			Str("required_role", requiredRole.String()).
			Str("token_role", token.Role().String()).
			Msg("role claim does not match required role")
		return models.Principal{}, ErrUnauthorized
	}

	switch requiredRole {
	case models.RoleAdmin:
		admin, err := a.adminRepository.FindAdminByUsername(ctx, token.Subject())
		if err != nil {
			log.Err(err).Str("username", token.Subject()).Msg("admin behind token not found")
			return models.Principal{}, ErrUnauthorized
		}
		return models.Principal{ID: admin.AdminID, Subject: admin.Username, Role: models.RoleAdmin}, nil

	case models.RoleStudent:
		student, err := a.studentRepository.FindStudentByEmail(ctx, token.Subject())
		if err != nil {
			log.Err(err).Str("email", token.Subject()).Msg("student behind token not found")
			return models.Principal{}, ErrUnauthorized
		}
		return models.Principal{ID: student.StudentID, Subject: student.Email, Role: models.RoleStudent}, nil

	default:
		return models.Principal{}, ErrUnauthorized
	}
}
