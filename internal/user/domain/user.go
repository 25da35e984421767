// Package domain 用户与会话的领域模型
package domain

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("email already registered")
	// ErrSessionNotFound 会话不存在或已失效
	ErrSessionNotFound = errors.New("session not found")
	// ErrUserBlocked 账户已被封禁
	ErrUserBlocked = errors.New("user is blocked")
)

// Role 用户角色
type Role string

const (
	RoleUser     Role = "USER"
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleSeller   Role = "SELLER"
)

// Status 账户状态
type Status string

const (
	StatusActive  Status = "Active"
	StatusBlocked Status = "Blocked"
)

// User 用户实体
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	JoinDate   string `json:"join_date"`
	Status     Status `json:"status"`
	Department string `json:"department,omitempty"`
}

// IsBlocked 账户是否被封禁
func (u *User) IsBlocked() bool {
	return u.Status == StatusBlocked
}

// Session 登录会话，令牌随登录签发、登出吊销
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// UserRepository 用户仓储接口
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// SessionRepository 会话仓储接口
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
