package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type VetGormRepository struct {
	db *gorm.DB
}

func NewVetGormRepository(db *gorm.DB) *VetGormRepository {
	return &VetGormRepository{db: db}
}

func (r *VetGormRepository) Create(ctx context.Context, v *models.Veterinarian) error {
	return mapError(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VetGormRepository) FindByID(ctx context.Context, id uint) (*models.Veterinarian, error) {
	var v models.Veterinarian
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &v, nil
}

func (r *VetGormRepository) FindByEmail(ctx context.Context, email string) (*models.Veterinarian, error) {
	var v models.Veterinarian
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&v).Error; err != nil {
		return nil, mapError(err)
	}
	return &v, nil
}

func (r *VetGormRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Veterinarian{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VetGormRepository) Update(ctx context.Context, v *models.Veterinarian) error {
	v.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Veterinarian{}).
		Where("id = ?", v.ID).
		Updates(map[string]any{
			"name":          v.Name,
			"specialty":     v.Specialty,
			"email":         v.Email,
			"password_hash": v.PasswordHash,
			"updated_at":    v.UpdatedAt,
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VetGormRepository) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	out := &models.Cascade{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v models.Veterinarian
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&v, id).Error; err != nil {
			return err
		}

		var apIDs []uint
		if err := tx.Model(&models.Appointment{}).
			Where("vet_id = ?", id).
			Order("id ASC").
			Pluck("id", &apIDs).Error; err != nil {
			return err
		}

		if err := deleteAppointments(tx, apIDs, out); err != nil {
			return err
		}

		return tx.Delete(&models.Veterinarian{}, id).Error
	})
	if err != nil {
		return nil, mapError(err)
	}

	return out, nil
}

// Compile-time check
var _ vet.Repository = (*VetGormRepository)(nil)
