package repository

import (
	"context"

	"github.com/danieltechTI/ReiBurguer/internal/models"

	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo { return &contactRepo{db: db} }

func (r *contactRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contactRepo) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	var list []models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}
