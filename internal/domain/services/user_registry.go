package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ersonp/jackut/internal/domain/entities"
)

// Reserved attribute keys answered from the account itself rather than the profile.
const (
	AttributeName  = "name"
	AttributeLogin = "login"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// registration holds the raw input of a new account.
type registration struct {
	Login    string `validate:"required"`
	Name     string `validate:"required"`
	Password string `validate:"required"`
}

// check maps validation failures to domain errors. Identifier problems win
// over credential problems.
func (r registration) check() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validating registration")
	}

	credential := false
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Login", "Name":
			return errors.Wrapf(entities.ErrInvalidIdentifier, "field %s", strings.ToLower(fe.Field()))
		case "Password":
			credential = true
		}
	}
	if credential {
		return entities.ErrInvalidCredential
	}
	return errors.Wrap(err, "validating registration")
}

// UserRegistry holds the registered users, keyed by login.
type UserRegistry struct {
	users []*entities.User
	index map[string]*entities.User
}

// NewUserRegistry creates a registry seeded with users (usually loaded from storage).
func NewUserRegistry(users []*entities.User) *UserRegistry {
	r := &UserRegistry{}
	r.Replace(users)
	return r
}

// Replace discards the current users and installs users instead.
func (r *UserRegistry) Replace(users []*entities.User) {
	r.users = make([]*entities.User, 0, len(users))
	r.index = make(map[string]*entities.User, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		if u.Profile == nil {
			u.Profile = entities.NewProfile()
		}
		r.users = append(r.users, u)
		r.index[u.Login] = u
	}
}

// Register creates a new account. Logins and display names share a single
// namespace: a new account is rejected when an existing login equals either
// its login or its name.
func (r *UserRegistry) Register(name, password, login string) (*entities.User, error) {
	if err := (registration{Login: login, Name: name, Password: password}).check(); err != nil {
		return nil, err
	}

	if _, ok := r.index[login]; ok {
		return nil, errors.Wrapf(entities.ErrDuplicateAccount, "login %q", login)
	}
	if _, ok := r.index[name]; ok {
		return nil, errors.Wrapf(entities.ErrDuplicateAccount, "name %q", name)
	}

	u := entities.NewUser(login, name, password, timeNow())
	r.users = append(r.users, u)
	r.index[login] = u
	return u, nil
}

// FindByLogin resolves a login to its user.
func (r *UserRegistry) FindByLogin(login string) (*entities.User, error) {
	u, ok := r.index[login]
	if !ok {
		return nil, errors.Wrapf(entities.ErrUserNotFound, "login %q", login)
	}
	return u, nil
}

// Exists reports whether login is registered.
func (r *UserRegistry) Exists(login string) bool {
	_, ok := r.index[login]
	return ok
}

// Remove drops u from the registry. Relationship cleanup is the caller's job.
func (r *UserRegistry) Remove(u *entities.User) {
	delete(r.index, u.Login)
	for i, existing := range r.users {
		if existing == u {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return
		}
	}
}

// All returns the registered users in registration order.
func (r *UserRegistry) All() []*entities.User {
	out := make([]*entities.User, len(r.users))
	copy(out, r.users)
	return out
}

// Len returns the number of registered users.
func (r *UserRegistry) Len() int {
	return len(r.users)
}

// Reset removes every user.
func (r *UserRegistry) Reset() {
	r.Replace(nil)
}

// Attribute returns a profile attribute of login. The reserved keys "name"
// and "login" are always set.
func (r *UserRegistry) Attribute(login, key string) (string, error) {
	u, err := r.FindByLogin(login)
	if err != nil {
		return "", err
	}

	switch key {
	case AttributeName:
		return u.Name, nil
	case AttributeLogin:
		return u.Login, nil
	}

	v, ok := u.Profile.Attribute(key)
	if !ok || v == "" {
		return "", errors.Wrapf(entities.ErrAttributeNotSet, "attribute %q", key)
	}
	return v, nil
}

// SetAttribute stores a free-text profile attribute. Blank and reserved keys
// are rejected, as are whitespace-only values. An empty value clears the
// attribute.
func (r *UserRegistry) SetAttribute(login, key, value string) error {
	u, err := r.FindByLogin(login)
	if err != nil {
		return err
	}

	if strings.TrimSpace(key) == "" || key == AttributeName || key == AttributeLogin {
		return errors.Wrapf(entities.ErrInvalidAttribute, "attribute %q", key)
	}
	if value != "" && strings.TrimSpace(value) == "" {
		return errors.Wrapf(entities.ErrInvalidAttribute, "blank value for %q", key)
	}

	u.Profile.SetAttribute(key, value)
	return nil
}
