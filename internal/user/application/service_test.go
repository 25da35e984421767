package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamart/storefront/internal/user/domain"
	"github.com/novamart/storefront/internal/user/infrastructure/persistence/memory"
)

type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	p.topics = append(p.topics, topic)
	return nil
}

func newService() (*UserApplicationService, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewUserApplicationService(memory.NewUserRepository(), memory.NewSessionRepository(), pub)
	return svc, pub
}

func TestLogin_ExistingUser(t *testing.T) {
	svc, pub := newService()

	result, err := svc.Login(context.Background(), LoginCommand{Email: "sarah@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "U2", result.User.ID)
	assert.Equal(t, domain.RoleUser, result.User.Role)
	assert.NotEmpty(t, result.Token)
	assert.Contains(t, pub.topics, "user.logged_in")
}

func TestLogin_AdminEmailGrantsAdminRole(t *testing.T) {
	svc, _ := newService()

	result, err := svc.Login(context.Background(), LoginCommand{Email: "admin@shop.io", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestLogin_UnknownEmailCreatesAccount(t *testing.T) {
	svc, _ := newService()

	result, err := svc.Login(context.Background(), LoginCommand{Email: "new@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, result.User.Role)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), RegisterCommand{
		Name:  "Sarah Again",
		Email: "SARAH@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_DefaultsToUserRole(t *testing.T) {
	svc, pub := newService()

	result, err := svc.Register(context.Background(), RegisterCommand{
		Name:  "New Shopper",
		Email: "shopper@example.com",
		Role:  "SUPERUSER",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, result.User.Role)
	assert.Equal(t, domain.StatusActive, result.User.Status)
	assert.Contains(t, pub.topics, "user.registered")
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _ := newService()
	result, err := svc.Login(context.Background(), LoginCommand{Email: "sarah@example.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Token))

	_, err = svc.CurrentUser(context.Background(), result.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// 重复登出不报错
	assert.NoError(t, svc.Logout(context.Background(), result.Token))
}

func TestCurrentUser_ValidToken(t *testing.T) {
	svc, _ := newService()
	result, err := svc.Login(context.Background(), LoginCommand{Email: "john@nova.com", Password: "secret"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), result.Token)

	require.NoError(t, err)
	assert.Equal(t, "U1", user.ID)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}
