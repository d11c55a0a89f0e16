package tokenfakerepo

import (
	"sync"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/token"
)

var _ token.OneTimeTokenRepo = (*FakeTokenRepo)(nil)

type FakeTokenRepo struct {
	tokens map[string]*token.OneTimeToken
	emails map[string]string // email+purpose to token
	lock   sync.RWMutex
}

func NewFakeTokensRepo() token.OneTimeTokenRepo {
	return &FakeTokenRepo{
		tokens: make(map[string]*token.OneTimeToken),
		emails: make(map[string]string),
	}
}

func emailKey(email, purpose string) string {
	return purpose + ":" + email
}

func (tr *FakeTokenRepo) Upsert(t *token.OneTimeToken) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	stored := *t
	tr.tokens[t.Token] = &stored
	tr.emails[emailKey(t.Email, string(t.Purpose))] = t.Token
	return nil
}

func (tr *FakeTokenRepo) Delete(tok string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	t, ok := tr.tokens[tok]
	if !ok {
		return apperrors.ErrNotFound
	}
	key := emailKey(t.Email, string(t.Purpose))
	if tr.emails[key] == tok {
		delete(tr.emails, key)
	}
	delete(tr.tokens, tok)
	return nil
}

func (tr *FakeTokenRepo) Get(tok string) (*token.OneTimeToken, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	t, ok := tr.tokens[tok]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (tr *FakeTokenRepo) GetByEmail(email, purpose string) (*token.OneTimeToken, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	tok, ok := tr.emails[emailKey(email, purpose)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := *tr.tokens[tok]
	return &c, nil
}
