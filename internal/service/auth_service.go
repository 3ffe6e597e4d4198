package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/penta-book/internal/model"
	"github.com/d60-Lab/penta-book/internal/repository"
)

// 主体角色
const (
	RoleBuyer = "buyer"
	RoleShop  = "shop"
)

// Principal 已认证主体，由中间件解出并显式传入各核心操作
type Principal struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

// BuyerRegistration 买家注册入参
type BuyerRegistration struct {
	Username     string
	DOB          string
	Email        string
	PhoneNumber  string
	Password     string
	BuyerAddress string
}

// ShopRegistration 店铺注册入参
type ShopRegistration struct {
	ShopName        string
	OwnerName       string
	ShopPhone       string
	ShopAddress     string
	ShopEmail       string
	ShopDescription string
	Password        string
}

// AuthService 账号注册与登录
type AuthService interface {
	RegisterBuyer(ctx context.Context, reg BuyerRegistration) (*model.Buyer, error)
	LoginBuyer(ctx context.Context, username, password string) (string, *Principal, error)
	RegisterShop(ctx context.Context, reg ShopRegistration) (*model.Shop, error)
	LoginShop(ctx context.Context, shopName, password string) (string, *Principal, error)

	// ParseToken 校验 JWT 并还原主体
	ParseToken(tokenString string) (*Principal, error)
}

type authService struct {
	buyerRepo repository.BuyerRepository
	shopRepo  repository.ShopRepository
	secret    []byte
	expire    time.Duration
}

func NewAuthService(buyerRepo repository.BuyerRepository, shopRepo repository.ShopRepository,
	secret string, expire time.Duration) AuthService {
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return &authService{
		buyerRepo: buyerRepo,
		shopRepo:  shopRepo,
		secret:    []byte(secret),
		expire:    expire,
	}
}

func (s *authService) RegisterBuyer(ctx context.Context, reg BuyerRegistration) (*model.Buyer, error) {
	if _, err := s.buyerRepo.GetByUsername(ctx, reg.Username); err == nil {
		return nil, fmt.Errorf("username %q: %w", reg.Username, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	buyer := &model.Buyer{
		Username:     reg.Username,
		DOB:          reg.DOB,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		Password:     string(hash),
		BuyerAddress: reg.BuyerAddress,
	}
	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username or email taken: %w", ErrConflict)
		}
		return nil, err
	}
	return buyer, nil
}

func (s *authService) LoginBuyer(ctx context.Context, username, password string) (string, *Principal, error) {
	buyer, err := s.buyerRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUnauthenticated
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(buyer.Password), []byte(password)) != nil {
		return "", nil, ErrUnauthenticated
	}
	p := &Principal{ID: buyer.BuyerID, Role: RoleBuyer, Name: buyer.Username}
	token, err := s.issueToken(p)
	return token, p, err
}

func (s *authService) RegisterShop(ctx context.Context, reg ShopRegistration) (*model.Shop, error) {
	if _, err := s.shopRepo.GetByName(ctx, reg.ShopName); err == nil {
		return nil, fmt.Errorf("shop %q: %w", reg.ShopName, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	shop := &model.Shop{
		ShopName:        reg.ShopName,
		OwnerName:       reg.OwnerName,
		ShopPhone:       reg.ShopPhone,
		ShopAddress:     reg.ShopAddress,
		ShopEmail:       reg.ShopEmail,
		ShopDescription: reg.ShopDescription,
		Password:        string(hash),
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("shop name, email or phone taken: %w", ErrConflict)
		}
		return nil, err
	}
	return shop, nil
}

func (s *authService) LoginShop(ctx context.Context, shopName, password string) (string, *Principal, error) {
	shop, err := s.shopRepo.GetByName(ctx, shopName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUnauthenticated
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(shop.Password), []byte(password)) != nil {
		return "", nil, ErrUnauthenticated
	}
	p := &Principal{ID: shop.ShopID, Role: RoleShop, Name: shop.ShopName}
	token, err := s.issueToken(p)
	return token, p, err
}

func (s *authService) issueToken(p *Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", p.ID),
		"role": p.Role,
		"name": p.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) ParseToken(tokenString string) (*Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}
	sub, _ := claims["sub"].(string)
	var id int64
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil || id <= 0 {
		return nil, ErrUnauthenticated
	}
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	return &Principal{ID: id, Role: role, Name: name}, nil
}
