package interfaces

type IPasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}
