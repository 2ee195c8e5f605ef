package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gizemabali/retaildiscountsapi/internal/clock"
	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/hashing"
	"github.com/gizemabali/retaildiscountsapi/internal/repository"
)

// ErrRegistrationFailed marks a write that produced no document id.
var ErrRegistrationFailed = errors.New("registration failed")

// UserService registers user accounts in the user index
type UserService struct {
	index     repository.SearchIndex
	userIndex string
	clk       clock.Clock
	hasher    hashing.Hasher
}

func NewUserService(index repository.SearchIndex, userIndex string, clk clock.Clock, hasher hashing.Hasher) *UserService {
	return &UserService{index: index, userIndex: userIndex, clk: clk, hasher: hasher}
}

// Register stamps the account creation date, replaces the plaintext password
// with its digest and persists the record. Only the hash is ever stored.
func (s *UserService) Register(ctx context.Context, user domain.UserDetails) error {
	if user.Username == "" || user.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrMalformedRequest)
	}
	record := user
	record.AccountCreationDate = clock.Format(s.clk.Now())
	record.Password = s.hasher.Hash(user.Password)

	id, err := s.index.Index(ctx, s.userIndex, record, "")
	if err != nil {
		return fmt.Errorf("index user record: %w", err)
	}
	if id == "" {
		return ErrRegistrationFailed
	}
	return nil
}
