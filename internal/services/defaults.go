package services

import "github.com/jjudge-oj/accountseed/types"

// PasswordSource produces initial account passwords.
type PasswordSource interface {
	Generate() string
}

// FillDefaults assigns the default role and a fresh password to every
// account in place, replacing whatever the input carried. No other
// field is touched.
func FillDefaults(accounts []types.Account, passwords PasswordSource) {
	for i := range accounts {
		accounts[i].Role = types.DefaultRole
		accounts[i].Password = passwords.Generate()
	}
}
