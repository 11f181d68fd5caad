package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLoginSameUser(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()

	reg, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", reg.User.Email)
	assert.Equal(t, "user", reg.User.Role)

	login, err := svc.Login(&LoginRequest{Email: "A@X.com", Password: "secret1"})
	require.NoError(t, err)

	c1, err := f.tokens.ValidateToken(reg.Token)
	require.NoError(t, err)
	c2, err := f.tokens.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, c1.UserID, c2.UserID)
	assert.Equal(t, reg.User.ID, c1.UserID)
}

func TestRegisterDuplicateCaseFolded(t *testing.T) {
	svc := newFixture(t).auth()

	_, err := svc.Register(&RegisterRequest{Email: "dup@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Email: "DUP@X.COM", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	svc := newFixture(t).auth()

	var vErr *ValidationError
	_, err := svc.Register(&RegisterRequest{Password: "secret1"})
	assert.ErrorAs(t, err, &vErr)
	_, err = svc.Register(&RegisterRequest{Email: "a@x.com"})
	assert.ErrorAs(t, err, &vErr)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc := newFixture(t).auth()
	_, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, errWrongPass := svc.Login(&LoginRequest{Email: "a@x.com", Password: "nope"})
	_, errNoUser := svc.Login(&LoginRequest{Email: "ghost@x.com", Password: "secret1"})

	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestForgotPasswordUnknownEmailSendsNothing(t *testing.T) {
	f := newFixture(t)
	err := f.auth().ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ghost@x.com"})
	require.NoError(t, err)
	assert.Empty(t, f.mail.sent)
}

func TestForgotPasswordMailFailureIsHidden(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	_, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	f.mail.fail = true
	assert.NoError(t, svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "a@x.com"}))
}

// resetTokenFrom pulls the token out of the reset link in the last email.
func resetTokenFrom(t *testing.T, f *fixture) string {
	t.Helper()
	require.NotEmpty(t, f.mail.sent)
	msg := f.mail.sent[len(f.mail.sent)-1]
	idx := strings.Index(msg.Text, "http://")
	require.GreaterOrEqual(t, idx, 0)
	link, err := url.Parse(strings.TrimSpace(msg.Text[idx:]))
	require.NoError(t, err)
	assert.Equal(t, "/reset-password", link.Path)
	assert.Equal(t, "app.local", link.Host)
	return link.Query().Get("token")
}

func TestResetPasswordFlow(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &ForgotPasswordRequest{Email: "a@x.com"}))

	token := resetTokenFrom(t, f)
	assert.Len(t, token, 64)

	stored, err := f.users.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetPasswordToken)
	assert.NotEqual(t, token, *stored.ResetPasswordToken)

	require.NoError(t, svc.ResetPassword(ctx, &ResetPasswordRequest{Token: token, Email: "a@x.com", Password: "newpass"}))

	_, err = svc.Login(&LoginRequest{Email: "a@x.com", Password: "newpass"})
	assert.NoError(t, err)
	_, err = svc.Login(&LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, err = f.users.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Nil(t, stored.ResetPasswordToken)
	assert.Nil(t, stored.ResetPasswordExpires)
	assert.Equal(t, "InventoryPro - Password changed", f.mail.sent[len(f.mail.sent)-1].Subject)

	// tokens are single use
	err = svc.ResetPassword(ctx, &ResetPasswordRequest{Token: token, Email: "a@x.com", Password: "again"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPasswordRejectsBadTokens(t *testing.T) {
	f := newFixture(t)
	svc := f.auth().(*authService)
	ctx := context.Background()

	_, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(&RegisterRequest{Email: "b@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &ForgotPasswordRequest{Email: "a@x.com"}))
	token := resetTokenFrom(t, f)

	cases := []*ResetPasswordRequest{
		{Token: "deadbeef", Email: "a@x.com", Password: "x"},
		{Token: token, Email: "b@x.com", Password: "x"},
		{Token: token, Email: "ghost@x.com", Password: "x"},
	}
	for _, req := range cases {
		assert.ErrorIs(t, svc.ResetPassword(ctx, req), ErrInvalidResetToken)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err = svc.ResetPassword(ctx, &ResetPasswordRequest{Token: token, Email: "a@x.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPasswordConfirmationFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.Register(&RegisterRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, &ForgotPasswordRequest{Email: "a@x.com"}))
	token := resetTokenFrom(t, f)

	f.mail.fail = true
	assert.NoError(t, svc.ResetPassword(ctx, &ResetPasswordRequest{Token: token, Email: "a@x.com", Password: "newpass"}))
}

func TestMe(t *testing.T) {
	svc := newFixture(t).auth()
	reg, err := svc.Register(&RegisterRequest{Name: " Ann ", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	me, err := svc.Me(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", me.Name)
}
