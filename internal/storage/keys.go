package storage

import "fmt"

const (
	UsersKey   = "users"
	SessionKey = "currentSession"
)

func UserDataKey(accountID string) string {
	return "userData_" + accountID
}

func ReflectionKey(accountID string, week int) string {
	return fmt.Sprintf("verification-%s-week%d", accountID, week)
}
