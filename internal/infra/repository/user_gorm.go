package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return mapError(r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error)
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":          u.Name,
			"email":         u.Email,
			"password_hash": u.PasswordHash,
			"updated_at":    u.UpdatedAt,
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	out := &models.Cascade{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&u, id).Error; err != nil {
			return err
		}

		var petIDs []uint
		if err := tx.Model(&models.Pet{}).
			Where("owner_id = ?", id).
			Order("id ASC").
			Pluck("id", &petIDs).Error; err != nil {
			return err
		}

		if err := deletePets(tx, petIDs, out); err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, mapError(err)
	}

	return out, nil
}

func (r *UserGormRepository) List(ctx context.Context, f user.ListFilter) ([]models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ user.Repository = (*UserGormRepository)(nil)
