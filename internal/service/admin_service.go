package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cybertcm/internal/repository"
)

var (
	ErrBadPassphrase  = errors.New("passphrase incorrect")
	ErrWeakPassphrase = errors.New("passphrase too short")
	ErrAdminNotSeeded = errors.New("admin credentials not seeded")
)

const minPassphraseLen = 4

// AdminService guards the operator surface behind a single shared
// passphrase, stored as a bcrypt hash.
type AdminService struct {
	creds  repository.AdminCredentialRepository
	jwt    *JWTService
	logger *zap.Logger
}

func NewAdminService(creds repository.AdminCredentialRepository, jwt *JWTService, logger *zap.Logger) *AdminService {
	return &AdminService{creds: creds, jwt: jwt, logger: logger}
}

// EnsureDefault seeds the credential row with the given passphrase when no
// hash is stored yet. An existing hash is never overwritten.
func (s *AdminService) EnsureDefault(ctx context.Context, passphrase string) error {
	_, err := s.creds.GetHash(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("read admin credentials: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default passphrase: %w", err)
	}
	if err := s.creds.SetHash(ctx, string(hash)); err != nil {
		return fmt.Errorf("seed admin credentials: %w", err)
	}
	s.logger.Warn("admin passphrase seeded with default, change it")
	return nil
}

// Login verifies the passphrase and issues a token pair.
func (s *AdminService) Login(ctx context.Context, passphrase string) (TokenPair, error) {
	if err := s.verify(ctx, passphrase); err != nil {
		return TokenPair{}, err
	}
	return s.jwt.GeneratePair()
}

func (s *AdminService) Refresh(refreshToken string) (TokenPair, error) {
	return s.jwt.RefreshPair(refreshToken)
}

func (s *AdminService) Logout(refreshToken string) error {
	return s.jwt.RevokeRefresh(refreshToken)
}

// ChangePassphrase replaces the stored hash after verifying the current
// passphrase.
func (s *AdminService) ChangePassphrase(ctx context.Context, current, next string) error {
	if err := s.verify(ctx, current); err != nil {
		return err
	}
	next = strings.TrimSpace(next)
	if len(next) < minPassphraseLen {
		return ErrWeakPassphrase
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash passphrase: %w", err)
	}
	if err := s.creds.SetHash(ctx, string(hash)); err != nil {
		return fmt.Errorf("store passphrase: %w", err)
	}
	s.logger.Info("admin passphrase changed")
	return nil
}

func (s *AdminService) verify(ctx context.Context, passphrase string) error {
	hash, err := s.creds.GetHash(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAdminNotSeeded
		}
		return fmt.Errorf("read admin credentials: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) != nil {
		return ErrBadPassphrase
	}
	return nil
}
