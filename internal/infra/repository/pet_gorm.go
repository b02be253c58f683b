package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type PetGormRepository struct {
	db *gorm.DB
}

func NewPetGormRepository(db *gorm.DB) *PetGormRepository {
	return &PetGormRepository{db: db}
}

func (r *PetGormRepository) Create(ctx context.Context, p *models.Pet) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PetGormRepository) FindByID(ctx context.Context, id uint) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PetGormRepository) Update(ctx context.Context, p *models.Pet) error {
	p.UpdatedAt = time.Now()

	// map para gravar também age = 0
	res := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":       p.Name,
			"species":    p.Species,
			"age":        p.Age,
			"owner_id":   p.OwnerID,
			"updated_at": p.UpdatedAt,
		})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PetGormRepository) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	out := &models.Cascade{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Pet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&p, id).Error; err != nil {
			return err
		}
		return deletePets(tx, []uint{id}, out)
	})
	if err != nil {
		return nil, mapError(err)
	}

	return out, nil
}

func (r *PetGormRepository) List(ctx context.Context, f pet.ListFilter) ([]models.Pet, error) {
	q := r.db.WithContext(ctx).Model(&models.Pet{})

	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
	}
	if species := strings.ToLower(strings.TrimSpace(f.Species)); species != "" {
		q = q.Where("LOWER(species) = ?", species)
	}

	var pets []models.Pet
	if err := q.Order("id ASC").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// Compile-time check
var _ pet.Repository = (*PetGormRepository)(nil)
