package identity

// Identity is the resolved caller of an authenticated procedure.
// It comes from the external identity provider, not from the local store.
type Identity struct {
	ID    string
	Email string
}

// IsZero reports whether the identity carries neither an id nor an email,
// which counts as an unresolved caller.
func (i *Identity) IsZero() bool {
	return i == nil || (i.ID == "" && i.Email == "")
}
