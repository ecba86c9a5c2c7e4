// Package session holds the client-side persistent storage of the logged-in
// user's record: one serialized value under a fixed key.
package session

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// Key is the fixed name the session record is stored under.
const Key = "user"

// Storage is the persistent storage behind the auth context. An absent key
// means logged out.
type Storage interface {
	// Get returns the stored record. present is true when something is
	// stored under Key, even if it cannot be read back.
	Get(r *http.Request) (value string, present bool)
	Set(w http.ResponseWriter, r *http.Request, value string) error
	Remove(w http.ResponseWriter, r *http.Request) error
}

// CookieStorage keeps the record in an authenticated and encrypted cookie.
type CookieStorage struct {
	store *sessions.CookieStore
	name  string
}

// NewCookieStorage creates a storage writing cookie name. hashKey
// authenticates the cookie, blockKey encrypts it.
func NewCookieStorage(name string, hashKey, blockKey []byte, maxAge time.Duration, secure bool) *CookieStorage {
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.MaxAge(int(maxAge.Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return &CookieStorage{store: store, name: name}
}

func (c *CookieStorage) Get(r *http.Request) (string, bool) {
	sess, err := c.store.Get(r, c.name)
	if err != nil {
		// Cookie exists but does not decode: tampered or signed with old keys.
		if _, cerr := r.Cookie(c.name); cerr == nil {
			return "", true
		}
		return "", false
	}
	v, ok := sess.Values[Key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", true
	}
	return s, true
}

func (c *CookieStorage) Set(w http.ResponseWriter, r *http.Request, value string) error {
	// An undecodable cookie still yields a fresh session to overwrite it with.
	sess, err := c.store.Get(r, c.name)
	if sess == nil {
		return err
	}
	// The session is cached per request: undo a Remove made earlier in it.
	sess.Options.MaxAge = c.store.Options.MaxAge
	sess.Values[Key] = value
	return sess.Save(r, w)
}

func (c *CookieStorage) Remove(w http.ResponseWriter, r *http.Request) error {
	sess, err := c.store.Get(r, c.name)
	if sess == nil {
		return err
	}
	delete(sess.Values, Key)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
