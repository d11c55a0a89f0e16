package sessions

import "github.com/jrsteele09/go-blog-client/users"

// Session pairs the current tokens with the signed-in user. Tokens are opaque
// strings and are never parsed by the client.
type Session struct {
	AccessToken  string      // Short-lived bearer credential for API calls
	RefreshToken string      // Longer-lived credential, only sent to /auth/refresh
	User         *users.User // Nil until the profile has been fetched
}

// Live reports whether the session holds an access token.
func (s *Session) Live() bool {
	return s != nil && s.AccessToken != ""
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}
