package gearpress

import (
	"errors"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned by SignIn for an unknown email or a
// password that does not match.
var ErrBadCredentials = errors.New("invalid email or password")

// Authenticator verifies email/password credentials against the accounts
// table. Passwords are stored as bcrypt hashes only.
type Authenticator struct {
	store *Store
}

// NewAuthenticator creates an Authenticator backed by the given Store.
func NewAuthenticator(store *Store) *Authenticator {
	return &Authenticator{store: store}
}

// SeedAccount ensures an account exists for email with the given password.
// Called at startup with the configured admin credentials.
func (a *Authenticator) SeedAccount(email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return a.store.UpsertAccount(email, string(hash))
}

// SignIn checks the credentials. Unknown accounts and wrong passwords both
// return ErrBadCredentials so the two cases are indistinguishable to a caller.
func (a *Authenticator) SignIn(email, password string) error {
	hash, err := a.store.GetAccountHash(email)
	if err != nil {
		if err == ErrNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return ErrBadCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost a full bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gearpress-no-such-account"), bcrypt.DefaultCost)

const sessionName = "admin_session"

// IsAdmin reports whether the request carries a valid signed-in session.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	auth, ok := sess.Values["authenticated"].(bool)
	return ok && auth
}

// setAdminSession marks the request's session as signed in.
func setAdminSession(c echo.Context, email string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values["authenticated"] = true
	sess.Values["email"] = email
	return sess.Save(c.Request(), c.Response())
}

// clearAdminSession expires the session cookie, signing the user out.
func clearAdminSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
