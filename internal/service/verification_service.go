package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CodeNotifier delivers a freshly issued verification code to the guest.
// Delivery is best-effort; the issuer never fails because of it.
type CodeNotifier interface {
	SendVerificationCode(ctx context.Context, email, fullName, code string) error
}

type VerificationService interface {
	RequestCode(ctx context.Context, fullName, email, phone string) (*models.VerificationCode, error)
}

type verificationService struct {
	repo     repository.VerificationRepository
	notifier CodeNotifier
	logger   *logrus.Logger
	cooldown time.Duration
	expiry   time.Duration
}

func NewVerificationService(repo repository.VerificationRepository, notifier CodeNotifier, logger *logrus.Logger, cooldown, expiry time.Duration) VerificationService {
	return &verificationService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		cooldown: cooldown,
		expiry:   expiry,
	}
}

func (s *verificationService) RequestCode(ctx context.Context, fullName, email, phone string) (*models.VerificationCode, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if fullName == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: full name, email, and phone are required", ErrValidation)
	}

	last, err := s.repo.FindLatestByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up previous code: %w", err)
	}
	if last != nil && time.Since(last.CreatedAt) < s.cooldown {
		return nil, ErrRateLimited
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	row := &models.VerificationCode{
		Email:     email,
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(s.expiry),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("store verification code: %w", err)
	}

	go s.deliver(email, fullName, code)

	return row, nil
}

// deliver runs outside the request; a failed notification leaves the code
// valid and writes it to the operational log as the fallback channel.
func (s *verificationService) deliver(email, fullName, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if s.notifier != nil {
		err := s.notifier.SendVerificationCode(ctx, email, fullName, code)
		if err == nil {
			return
		}
		s.logger.WithFields(logrus.Fields{"email": email}).
			WithError(err).Warn("verification code delivery failed, falling back to log")
	}
	s.logger.WithFields(logrus.Fields{"email": email, "code": code}).
		Info("verification code issued")
}

// generateCode returns a uniformly random 6-digit code, zero padded.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
