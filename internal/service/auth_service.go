package service

import (
	"context"
	"strings"
	"time"

	"github.com/danieltechTI/ReiBurguer/internal/models"
	"github.com/danieltechTI/ReiBurguer/internal/repository"

	"go.uber.org/zap"
)

type AuthService struct {
	customers repository.CustomerRepo
	hasher    PasswordHasher
	tokens    TokenProvider

	accessTTL time.Duration
	now       func() time.Time

	log *zap.Logger
}

func NewAuthService(
	customers repository.CustomerRepo,
	hasher PasswordHasher,
	tokens TokenProvider,
	accessTTL time.Duration,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		customers: customers,
		hasher:    hasher,
		tokens:    tokens,
		accessTTL: accessTTL,
		now:       time.Now,
		log:       log,
	}
}

// Register creates a customer account. Emails are deduplicated
// case-insensitively; a second registration with the same email is a
// conflict, never a second account.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.customers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleCustomer,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info("customer registered", zap.String("email", email))
	return c, nil
}

// Login verifies credentials and issues an access token. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	if customer == nil || !s.hasher.Compare(customer.PasswordHash, password) {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	access, exp, err := s.tokens.SignAccess(ctx, customer.ID, string(customer.Role), s.accessTTL)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return access, exp, customer, nil
}

// Profile returns the account of the authenticated customer.
func (s *AuthService) Profile(ctx context.Context) (*models.Customer, error) {
	id, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}
