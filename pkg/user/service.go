package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amiskov/folio/pkg/common"
	"github.com/amiskov/folio/pkg/logger"
)

type IRepo interface {
	UserExists(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, uid string) (*User, error)
	Add(ctx context.Context, u *User) (string, error)
}

type ISessionManager interface {
	CreateToken(*User) (string, error)
}

var errFieldsRequired = errors.New("name, email and password are required")

type service struct {
	repo IRepo
	sm   ISessionManager
}

func NewService(r IRepo, sm ISessionManager) *service {
	return &service{
		repo: r,
		sm:   sm,
	}
}

func (s *service) LoginUser(ctx context.Context, email, password string) (usr *User, token string, err error) {
	usr, err = s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Log(ctx).Infof("user: can't get the user by email `%s`, %v", email, err)
		return nil, ``, ErrBadCredentials
	}
	if !common.CheckPass(password, usr.Password) {
		logger.Log(ctx).Infof("user: wrong password for `%s`", email)
		return nil, ``, ErrBadCredentials
	}

	token, err = s.sm.CreateToken(usr)
	if err != nil {
		logger.Log(ctx).Errorf("user: can't create JWT token from user: %v", err)
		return nil, ``, err
	}
	return usr, token, nil
}

func (s *service) RegUser(ctx context.Context, name, email, password string) (*User, string, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ``, errFieldsRequired
	}

	userExists, err := s.repo.UserExists(ctx, email)
	if err != nil {
		return nil, ``, err
	}
	if userExists {
		logger.Log(ctx).Infof("user: `%s` already exists", email)
		return nil, ``, fmt.Errorf("can't add `%s`, %w", email, ErrUserAlreadyExists)
	}

	usr := &User{
		Name:     name,
		Email:    email,
		Password: common.HashPass(password, common.RandStringRunes(common.SaltLen)),
		// ID is assigned by the repo
	}
	usr.ID, err = s.repo.Add(ctx, usr)
	if err != nil {
		logger.Log(ctx).Errorf("user: can't add user to repo: %v", err)
		return nil, ``, err
	}

	token, err := s.sm.CreateToken(usr)
	if err != nil {
		logger.Log(ctx).Errorf("user: can't create JWT token from user: %v", err)
		return nil, ``, err
	}
	return usr, token, nil
}

func (s *service) GetUser(ctx context.Context, uid string) (*User, error) {
	return s.repo.GetByID(ctx, uid)
}
