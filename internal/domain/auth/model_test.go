package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/domain/auth"
)

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, auth.Credentials{Email: "sam@example.com", Password: "hunter2"}.Validate())
	require.ErrorIs(t, auth.Credentials{Email: "", Password: "x"}.Validate(), auth.ErrEmailRequired)
	require.ErrorIs(t, auth.Credentials{Email: "not-an-email", Password: "x"}.Validate(), auth.ErrEmailRequired)
	require.ErrorIs(t, auth.Credentials{Email: "sam@example.com"}.Validate(), auth.ErrPasswordRequired)
}

func TestRegistrationValidate(t *testing.T) {
	valid := auth.Registration{FullName: "Sam Doe", Email: "sam@example.com", Password: "hunter2"}
	require.NoError(t, valid.Validate())

	reg := valid
	reg.FullName = "  "
	require.ErrorIs(t, reg.Validate(), auth.ErrFullNameRequired)

	reg = valid
	reg.Email = "nope"
	require.ErrorIs(t, reg.Validate(), auth.ErrEmailRequired)

	reg = valid
	reg.Password = ""
	require.ErrorIs(t, reg.Validate(), auth.ErrPasswordRequired)

	reg = valid
	reg.Password = "short"
	require.ErrorIs(t, reg.Validate(), auth.ErrPasswordTooShort)
}
