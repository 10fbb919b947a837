package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	sessionports "bazaar/contexts/identity-access/session-service/ports"
	"bazaar/contexts/identity-access/user-directory/domain/entities"
	domainerrors "bazaar/contexts/identity-access/user-directory/domain/errors"
	"bazaar/contexts/identity-access/user-directory/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Now() time.Time { return time.Now().UTC() }

func (r *Repository) CreateUser(ctx context.Context, user entities.DirectoryUser) error {
	row, err := userModelFromEntity(user)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrEmailConflict
		}
		return err
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.DirectoryUser, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DirectoryUser{}, domainerrors.ErrUserNotFound
		}
		return entities.DirectoryUser{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListUsers(ctx context.Context, filter ports.UserFilter) (ports.UserPage, error) {
	tx := r.db.WithContext(ctx).Model(&userModel{})
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.PendingOnly {
		tx = tx.Where("is_approved = ?", false)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(email) LIKE ? OR LOWER(display_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ports.UserPage{}, err
	}

	var rows []userModel
	err := tx.Order("email ASC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return ports.UserPage{}, err
	}

	page := ports.UserPage{Total: int(total)}
	for _, row := range rows {
		user, err := row.toEntity()
		if err != nil {
			return ports.UserPage{}, err
		}
		page.Items = append(page.Items, user)
	}
	return page, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.DirectoryUser) error {
	permissions, err := json.Marshal(user.Permissions)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", strings.TrimSpace(user.UserID)).
		Updates(map[string]any{
			"role":        user.Role,
			"is_approved": user.IsApproved,
			"permissions": string(permissions),
			"updated_at":  user.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) CountByRole(ctx context.Context, role string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("role = ?", role).
		Count(&total).
		Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// GetProfile implements the session-service ProfileStore port.
func (r *Repository) GetProfile(ctx context.Context, userID string) (sessionports.Profile, error) {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return sessionports.Profile{}, err
	}
	return sessionports.Profile{
		Role:        user.Role,
		IsApproved:  user.IsApproved,
		Permissions: user.Permissions,
	}, nil
}

type userModel struct {
	UserID      string    `gorm:"column:user_id;primaryKey"`
	Email       string    `gorm:"column:email;uniqueIndex"`
	DisplayName string    `gorm:"column:display_name"`
	Role        string    `gorm:"column:role"`
	IsApproved  bool      `gorm:"column:is_approved"`
	Permissions string    `gorm:"column:permissions;type:jsonb"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "directory_users" }

func userModelFromEntity(user entities.DirectoryUser) (userModel, error) {
	permissions, err := json.Marshal(user.Permissions)
	if err != nil {
		return userModel{}, err
	}
	return userModel{
		UserID:      strings.TrimSpace(user.UserID),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsApproved:  user.IsApproved,
		Permissions: string(permissions),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}, nil
}

func (m userModel) toEntity() (entities.DirectoryUser, error) {
	permissions := map[string]string{}
	if m.Permissions != "" {
		if err := json.Unmarshal([]byte(m.Permissions), &permissions); err != nil {
			return entities.DirectoryUser{}, err
		}
	}
	return entities.DirectoryUser{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        m.Role,
		IsApproved:  m.IsApproved,
		Permissions: permissions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
