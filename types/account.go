package types

// Account represents one row of an account provisioning file.
// It carries the identity fields handed to the downstream importer
// together with the credentials and role filled in by provisioning.
type Account struct {
	// Email is the account's primary human-readable identifier.
	// It is carried through unchanged and never validated.
	Email string

	// Username is the login name of the account.
	// It is carried through unchanged and never validated.
	Username string

	// Password is the plaintext initial password.
	// Any value present in the input is discarded on load.
	Password string

	// DisplayedName is the optional display name of the account.
	// An absent column and an empty cell both load as "".
	DisplayedName string

	// Role is the authorization level of the account.
	// It is RoleUnset when the input did not carry a role.
	Role Role
}
