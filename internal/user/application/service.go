// Package application 用户应用服务
package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/novamart/storefront/internal/user/domain"
	"github.com/novamart/storefront/pkg/logger"
)

// LoginCommand 登录命令
type LoginCommand struct {
	Email    string
	Password string
}

// RegisterCommand 注册命令
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult 登录或注册成功后的会话与用户信息
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// UserApplicationService 用户应用服务
type UserApplicationService struct {
	users     domain.UserRepository
	sessions  domain.SessionRepository
	publisher domain.EventPublisher
}

// NewUserApplicationService 创建用户应用服务
func NewUserApplicationService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	publisher domain.EventPublisher,
) *UserApplicationService {
	return &UserApplicationService{
		users:     users,
		sessions:  sessions,
		publisher: publisher,
	}
}

// Login 按邮箱登录。演示环境不校验口令：
// 邮箱含 admin 的账户授予管理员角色，首次出现的邮箱即时建档。
func (s *UserApplicationService) Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		role := domain.RoleUser
		if strings.Contains(email, "admin") {
			role = domain.RoleAdmin
		}
		user = &domain.User{
			ID:       "U-" + uuid.NewString(),
			Name:     "John Doe",
			Email:    email,
			Role:     role,
			JoinDate: time.Now().Format("2006-01-02"),
			Status:   domain.StatusActive,
		}
		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	if user.IsBlocked() {
		return nil, domain.ErrUserBlocked
	}

	session := &domain.Session{Token: uuid.NewString(), UserID: user.ID}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, "user.logged_in", user.ID, domain.UserLoggedInEvent{
		UserID: user.ID,
		Email:  user.Email,
	}); err != nil {
		logger.Error(ctx, "Failed to publish login event", "user_id", user.ID, "error", err)
	}

	return &AuthResult{Token: session.Token, User: user}, nil
}

// Register 注册新用户并直接建立会话
func (s *UserApplicationService) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	role := domain.Role(cmd.Role)
	switch role {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleEmployee, domain.RoleSeller:
	default:
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:       "U-" + uuid.NewString(),
		Name:     cmd.Name,
		Email:    email,
		Role:     role,
		JoinDate: time.Now().Format("2006-01-02"),
		Status:   domain.StatusActive,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	session := &domain.Session{Token: uuid.NewString(), UserID: user.ID}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, "user.registered", user.ID, domain.UserRegisteredEvent{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}); err != nil {
		logger.Error(ctx, "Failed to publish register event", "user_id", user.ID, "error", err)
	}

	return &AuthResult{Token: session.Token, User: user}, nil
}

// Logout 吊销会话令牌，重复登出视为成功
func (s *UserApplicationService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		logger.Debug(ctx, "Logout with unknown token", "error", err)
	}
	return nil
}

// CurrentUser 按会话令牌取当前用户
func (s *UserApplicationService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, session.UserID)
}

// ListUsers 列出全部用户
func (s *UserApplicationService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
