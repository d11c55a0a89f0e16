package token

type OneTimeTokenRepo interface {
	Upsert(t *OneTimeToken) error
	Delete(token string) error
	Get(token string) (*OneTimeToken, error)
	GetByEmail(email, purpose string) (*OneTimeToken, error)
}
