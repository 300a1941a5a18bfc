package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ciao-api/internal/domain"
)

// VerificationTokenRepository defines the interface for email verification token data access
type VerificationTokenRepository interface {
	// Replace removes any existing tokens for the email and stores the new one
	Replace(ctx context.Context, token *domain.VerificationToken) error
	FindByToken(ctx context.Context, token string) (*domain.VerificationToken, error)
	Delete(ctx context.Context, token *domain.VerificationToken) error
	DeleteByEmail(ctx context.Context, email string) error
}

// verificationTokenRepositoryImpl is the GORM implementation of VerificationTokenRepository
type verificationTokenRepositoryImpl struct {
	db *gorm.DB
}

// NewVerificationTokenRepository creates a new instance of VerificationTokenRepository
func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepositoryImpl{db: db}
}

// Replace rotates the verification token for an email: older tokens become invalid
func (r *verificationTokenRepositoryImpl) Replace(ctx context.Context, token *domain.VerificationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", token.Email).
			Delete(&domain.VerificationToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// FindByToken finds a verification token by its value, returning nil when absent
func (r *verificationTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	var vt domain.VerificationToken
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&vt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vt, nil
}

// Delete removes a consumed token
func (r *verificationTokenRepositoryImpl) Delete(ctx context.Context, token *domain.VerificationToken) error {
	if err := r.db.WithContext(ctx).Delete(token).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByEmail removes all tokens issued for an email
func (r *verificationTokenRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&domain.VerificationToken{}).Error; err != nil {
		return err
	}
	return nil
}
