package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/domain/types"
)

func TestAccountValidate(t *testing.T) {
	t.Run("empty login is an error", func(t *testing.T) {
		gt.Error(t, (&model.Account{Type: types.AccountTypeUser}).Validate())
	})

	t.Run("unrecognized account type is not an error", func(t *testing.T) {
		gt.NoError(t, (&model.Account{Login: "corp", Type: types.AccountType("Enterprise")}).Validate())
	})

	t.Run("user and organization accounts pass", func(t *testing.T) {
		gt.NoError(t, (&model.Account{Login: "tester", Type: types.AccountTypeUser}).Validate())
		gt.NoError(t, (&model.Account{Login: "acme", Type: types.AccountTypeOrganization}).Validate())
	})
}

func TestNewAccountSection(t *testing.T) {
	section := model.NewAccountSection(&model.Account{
		Login:     "acme",
		AvatarURL: "https://avatars.example/acme",
		HTMLURL:   "https://github.com/acme",
		Type:      types.AccountTypeOrganization,
	})

	gt.V(t, section.Name).Equal("acme")
	gt.V(t, section.Avatar).Equal("https://avatars.example/acme")
	gt.V(t, section.URL).Equal("https://github.com/acme")
	gt.A(t, section.Repos).Length(0)
}
