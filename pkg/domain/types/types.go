package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	AccountType         string
	Permission          string
	RequestID           string
)

const (
	AccountTypeUser         AccountType = "User"
	AccountTypeOrganization AccountType = "Organization"
)

const (
	PermissionAdmin Permission = "admin"
	PermissionWrite Permission = "write"
	PermissionRead  Permission = "read"
	PermissionNone  Permission = "none"
)

// Writable is true for permission levels that qualify a repository for
// the catalog.
func (x Permission) Writable() bool {
	return x == PermissionAdmin || x == PermissionWrite
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
