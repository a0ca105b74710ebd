package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rhu-patient-portal/config"
	"rhu-patient-portal/internal/converter"
	"rhu-patient-portal/internal/delivery/dto"
	"rhu-patient-portal/internal/delivery/http/middleware"
	"rhu-patient-portal/internal/domain/entity"
	"rhu-patient-portal/internal/domain/repository"
	"rhu-patient-portal/internal/service"
	"rhu-patient-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is temporarily locked due to repeated failed logins")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionExpired     = errors.New("session has expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	authCfg     config.AuthConfig
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	patientRepo repository.PatientRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	audit       service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	authCfg config.AuthConfig,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		authCfg:     authCfg,
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		audit:       audit,
	}
}

// RegisterPatient creates a portal account plus its patient profile in one
// transaction. This is a front-desk action, not patient self-service.
func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	role, err := u.roleRepo.FindByName(u.db.WithContext(ctx), entity.RolePatient)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.New("patient role is not seeded")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := true
	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   role.ID,
		IsActive: &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		UserID:           user.ID,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		BarangayID:       req.BarangayID,
		Allergies:        req.Allergies,
		BloodType:        req.BloodType,
		PhilHealthNumber: req.PhilHealthNumber,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		u.audit.LogCreate(ctx, u.db.WithContext(ctx), &actorID, entity.AuditActionPatientRegister, "patient", user.ID.String(), map[string]interface{}{
			"email":     user.Email,
			"full_name": user.FullName,
		})
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      entity.RolePatient,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Login verifies credentials with account lockout: repeated failures lock
// the account for the configured window. The failure counter and lockout
// stamp persist on the user row so they survive restarts.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if user.IsLocked(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, u.recordFailedAttempt(ctx, db, user, now)
	}

	// Successful login resets the failure counter.
	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		user.ResetLoginAttempts()
		if err := u.userRepo.Update(db, user); err != nil {
			u.log.Warnf("Failed to reset login attempts for %s: %+v", user.ID, err)
		}
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.audit.LogCreate(ctx, db, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), map[string]interface{}{
		"email": user.Email,
	})

	return tokens, nil
}

func (u *authUsecase) recordFailedAttempt(ctx context.Context, db *gorm.DB, user *entity.User, now time.Time) error {
	locked := user.RegisterFailedLogin(now, u.authCfg.MaxLoginAttempts, u.authCfg.LockoutDuration)

	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to record failed login for %s: %+v", user.ID, err)
	}

	if locked {
		u.audit.LogUpdate(ctx, db, &user.ID, entity.AuditActionUserLockout, "user", user.ID.String(), nil, map[string]interface{}{
			"locked_until": user.LockedUntil,
		})
		return ErrAccountLocked
	}
	return ErrInvalidCredentials
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// The session record's TTL is the server-side session window.
	sessionKey := middleware.SessionKey(user.ID, accessTokenID)
	refreshKey := refreshSessionKey(user.ID, refreshTokenID)

	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh session in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionExpired
	}

	if err := u.redisClient.Del(ctx, middleware.SessionKey(userID, accessTokenID)).Err(); err != nil {
		u.log.Warnf("Failed to delete session key: %+v", err)
		return err
	}

	u.audit.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, "user", userID.String(), nil)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := refreshSessionKey(claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh session in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrSessionExpired
	}

	// Rotate: the old refresh session is gone once new tokens are issued.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh session: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every live session for the user.
func (u *authUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionExpired
	}

	db := u.db.WithContext(ctx)
	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash new password: %+v", err)
		return err
	}

	if err := u.userRepo.UpdatePassword(db, userID, string(hashedPassword)); err != nil {
		u.log.Warnf("Failed to update password for %s: %+v", userID, err)
		return err
	}

	u.revokeAllSessions(ctx, userID)

	u.audit.LogUpdate(ctx, db, &userID, entity.AuditActionPasswordChange, "user", userID.String(), nil, nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionExpired
	}

	db := u.db.WithContext(ctx)
	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.IsPatient() {
		patient, err := u.patientRepo.FindByUserID(db, userID)
		if err == nil && patient != nil {
			response.Patient = converter.PatientToResponse(patient)
		}
	}

	return response, nil
}

func (u *authUsecase) revokeAllSessions(ctx context.Context, userID uuid.UUID) {
	for _, pattern := range []string{
		middleware.SessionKey(userID, "*"),
		refreshSessionKey(userID, "*"),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list session keys for %s: %+v", userID, err)
			continue
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to revoke sessions for %s: %+v", userID, err)
			}
		}
	}
}

func refreshSessionKey(userID uuid.UUID, tokenID string) string {
	return "refresh:" + userID.String() + ":" + tokenID
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
