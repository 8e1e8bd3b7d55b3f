package service

import (
	"context"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"go.uber.org/zap"
)

type ContactService struct {
	contacts repository.ContactRepo
	now      func() time.Time
	log      *zap.Logger
}

func NewContactService(contacts repository.ContactRepo, log *zap.Logger) *ContactService {
	return &ContactService{contacts: contacts, now: time.Now, log: log}
}

func (s *ContactService) Create(ctx context.Context, name, email, phone, message string) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.contacts.Create(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("contact message received", zap.String("email", email))
	return m, nil
}
