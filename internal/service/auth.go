package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"go-license-manager/internal/domain"
	"go-license-manager/internal/validate"
	"go-license-manager/pkg/utils"
)

// 连续失败 3 次锁定，解锁只能走 cmd/unlock
const maxFailedLogins = 3

// MsgBadLogin 对未知邮箱 / 密码错误 / 已锁定统一返回同一段文案，
// 避免通过报错差异探测账号是否存在
const MsgBadLogin = "Incorrect login details, please try again or contact your system administrator."

type TokenIssuer interface {
	Issue(uid, role string) (string, error)
}

type AuthService struct {
	store domain.Store
	jwter TokenIssuer
	log   *zap.Logger
}

func NewAuthService(store domain.Store, jwter TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{store: store, jwter: jwter, log: log}
}

type LoginResult struct {
	Success           bool
	LockedOut         bool
	AttemptsRemaining int
	Token             string
	User              *domain.User
}

// Login 读计数-判定-写回全部在一个事务里，并发打同一账号时计数不丢
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if u == nil {
			return nil // 统一失败，外层不区分
		}
		if u.Locked {
			// 锁定期间不做密码校验，正确密码同样拒绝
			res.LockedOut = true
			return nil
		}
		if utils.CheckPassword(password, u.PasswordHash) {
			u.FailedLoginAttempts = 0
			if err := tx.Users().Update(ctx, u); err != nil {
				return err
			}
			res.Success = true
			res.User = u
			return nil
		}
		u.FailedLoginAttempts++
		if u.FailedLoginAttempts >= maxFailedLogins {
			u.Locked = true
			res.LockedOut = true
		}
		res.AttemptsRemaining = maxFailedLogins - u.FailedLoginAttempts
		if res.AttemptsRemaining < 0 {
			res.AttemptsRemaining = 0
		}
		return tx.Users().Update(ctx, u)
	})
	if err != nil {
		return LoginResult{}, err
	}
	if !res.Success {
		// 对外文案完全一致，Kind 仅供日志/测试区分
		if res.LockedOut {
			s.log.Info("login rejected", zap.String("email", email), zap.Bool("locked", true))
			return res, Locked(MsgBadLogin)
		}
		return res, Unauthorized(MsgBadLogin)
	}
	tok, err := s.jwter.Issue(fmt.Sprint(res.User.ID), roleOf(res.User))
	if err != nil {
		return LoginResult{}, err
	}
	res.Token = tok
	return res, nil
}

// Register 顺序：邮箱占用 → 姓名 → 密码 → 邮箱长度，第一条失败即返回
func (s *AuthService) Register(ctx context.Context, email, firstName, lastName, password, confirm string) (LoginResult, error) {
	var created *domain.User
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		existing, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return Duplicate("Email already exists.")
		}
		if err := validate.PersonName(firstName, lastName); err != nil {
			return Validation(err.Error())
		}
		if err := validate.Password(password, confirm, firstName, lastName); err != nil {
			return Validation(err.Error())
		}
		if err := validate.Email(email); err != nil {
			return Validation(err.Error())
		}
		u := &domain.User{
			Email:        email,
			FirstName:    firstName,
			LastName:     lastName,
			PasswordHash: utils.HashPassword(password),
		}
		if err := tx.Users().Create(ctx, u); err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		return LoginResult{}, err
	}
	tok, err := s.jwter.Issue(fmt.Sprint(created.ID), roleOf(created))
	if err != nil {
		return LoginResult{}, err
	}
	s.log.Info("account created", zap.String("email", created.Email))
	return LoginResult{Success: true, Token: tok, User: created}, nil
}

// UnlockAll 批量解锁：所有 locked=true 的账户清零计数并解锁，返回解锁数。
// 未锁定的账户不动。
func (s *AuthService) UnlockAll(ctx context.Context) (int, error) {
	count := 0
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		users, err := tx.Users().FindLocked(ctx)
		if err != nil {
			return err
		}
		for i := range users {
			u := &users[i]
			u.Locked = false
			u.FailedLoginAttempts = 0
			if err := tx.Users().Update(ctx, u); err != nil {
				return err
			}
			s.log.Info("user unlocked", zap.String("email", u.Email))
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CurrentUser 会话网关用：按 token 里的 id 取当前身份
func (s *AuthService) CurrentUser(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFound("User not found.")
	}
	return u, nil
}

func roleOf(u *domain.User) string {
	if u.Admin {
		return "admin"
	}
	return "user"
}
