package repository

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

// --------------------------------------------------
// Cascatas explícitas (sempre dentro de tx)
// --------------------------------------------------

func deletePets(tx *gorm.DB, petIDs []uint, out *models.Cascade) error {
	if len(petIDs) == 0 {
		return nil
	}

	var apIDs []uint
	if err := tx.Model(&models.Appointment{}).
		Where("pet_id IN ?", petIDs).
		Order("id ASC").
		Pluck("id", &apIDs).Error; err != nil {
		return err
	}

	if err := deleteAppointments(tx, apIDs, out); err != nil {
		return err
	}

	if err := tx.Where("id IN ?", petIDs).Delete(&models.Pet{}).Error; err != nil {
		return err
	}
	out.PetIDs = append(out.PetIDs, petIDs...)
	return nil
}

func deleteAppointments(tx *gorm.DB, ids []uint, out *models.Cascade) error {
	if len(ids) == 0 {
		return nil
	}

	if err := tx.Where("id IN ?", ids).Delete(&models.Appointment{}).Error; err != nil {
		return err
	}
	out.AppointmentIDs = append(out.AppointmentIDs, ids...)
	return nil
}
