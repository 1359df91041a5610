package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

// Claims 登录令牌声明
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// RegisterInput 注册请求
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	ListTitle string
	Slug      string
}

// AuthService 注册登录与令牌签发
type AuthService struct {
	db       *gorm.DB
	users    *repository.GormUserRepository
	lists    *repository.GormGiftListRepository
	jwtCfg   config.JWTConfig
	security config.SecurityConfig
}

// NewAuthService 创建认证服务
func NewAuthService(db *gorm.DB, users *repository.GormUserRepository, lists *repository.GormGiftListRepository, jwtCfg config.JWTConfig, security config.SecurityConfig) *AuthService {
	return &AuthService{db: db, users: users, lists: lists, jwtCfg: jwtCfg, security: security}
}

// Register 创建用户及其礼物清单，返回用户与登录令牌
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: email", ErrInvalidArgument)
	}
	if name == "" {
		return nil, "", fmt.Errorf("%w: name", ErrInvalidArgument)
	}
	minLength := s.security.PasswordPolicy.MinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(input.Password) < minLength {
		return nil, "", ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password failed: %w", err)
	}

	slug, err := s.resolveSlug(input.Slug, name)
	if err != nil {
		return nil, "", err
	}
	title := strings.TrimSpace(input.ListTitle)
	if title == "" {
		title = name
	}

	user := &models.User{Email: email, PasswordHash: string(hash), Name: name}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(user); err != nil {
			return err
		}
		list := &models.GiftList{
			UserID:              user.ID,
			Slug:                slug,
			Title:               title,
			FeeMode:             constants.FeeModePassToGuest,
			AllowPublicMessages: true,
			Active:              true,
		}
		return s.lists.WithTx(tx).Create(list)
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 校验凭证并签发令牌
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken 签发登录令牌
func (s *AuthService) IssueToken(userID uint) (string, error) {
	expireHours := s.jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

// ParseToken 解析并校验令牌，返回用户 ID
func (s *AuthService) ParseToken(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将任意标题转为 URL 友好的 slug
func Slugify(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}

func (s *AuthService) resolveSlug(requested, name string) (string, error) {
	slug := Slugify(requested)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		slug = "lista"
	}
	if _, err := s.lists.FindBySlug(slug); errors.Is(err, gorm.ErrRecordNotFound) {
		return slug, nil
	} else if err != nil {
		return "", err
	}
	// slug 已被占用，补随机后缀重试一次，仍冲突则报错
	candidate := fmt.Sprintf("%s-%s", slug, uuid.NewString()[:8])
	if _, err := s.lists.FindBySlug(candidate); errors.Is(err, gorm.ErrRecordNotFound) {
		return candidate, nil
	} else if err != nil {
		return "", err
	}
	return "", ErrSlugTaken
}
