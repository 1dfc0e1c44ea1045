package auth

import (
	"errors"
	"time"

	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	sessionpkg "github.com/genesis-zm/genesis-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and establishes a server-side session. bcrypt's
// comparison is constant-time; unknown username and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(username, password, ip, ua string) (string, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Auth("Invalid credentials. Access denied.")
		}
		return "", apperr.Storage(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", apperr.Auth("Invalid credentials. Access denied.")
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})

	token, _, err := sessionpkg.Issue(s.db, &u, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", apperr.Storage(err)
	}
	return token, nil
}

// Logout revokes the session row backing the presented token.
func (s *Service) Logout(userID uint, sessionID string) error {
	if err := sessionpkg.Revoke(s.db, userID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperr.Storage(err)
	}
	return nil
}

// ChangePassword re-verifies the old password before overwriting the stored
// hash. An established session alone is never trusted for this mutation, and
// a wrong old password leaves the hash untouched. Other sessions are revoked
// on success.
func (s *Service) ChangePassword(userID uint, sessionID, oldPwd, newPwd string) error {
	if newPwd == "" {
		return apperr.Validation("new password is required")
	}

	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Auth("Invalid credentials. Access denied.")
		}
		return apperr.Storage(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPwd)); err != nil {
		return apperr.Auth("Current password is incorrect.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Storage(err)
	}
	if err := s.db.Model(&u).Update("password", string(hash)).Error; err != nil {
		return apperr.Storage(err)
	}
	_ = sessionpkg.RevokeAllExcept(s.db, userID, sessionID)
	return nil
}
