package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/solveighty/restaurant-mechita/entity"
	"github.com/solveighty/restaurant-mechita/repository"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	user, err := svc.Register(RegisterIn{
		Username: "alice",
		Name:     "Alice",
		Password: "hunter22",
		Phone:    "555-0100",
		Email:    "Alice@Example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, entity.RoleCustomer, user.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))

	// by username and by email
	token, _, err := svc.Login("alice", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	_, _, err = svc.Login("alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("alice", "wrong")
	require.Error(t, err)
	_, _, err = svc.Login("nobody", "hunter22")
	require.Error(t, err)
}

func TestRegisterWithoutPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	alice, err := svc.Register(RegisterIn{
		Username: "alice", Name: "Alice", Password: "hunter22", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.Nil(t, alice.Phone)

	// a second phone-less account must not collide on the phone index
	bob, err := svc.Register(RegisterIn{
		Username: "bob", Name: "Bob", Password: "hunter22", Email: "bob@example.com",
	})
	require.NoError(t, err)
	require.Nil(t, bob.Phone)

	// clearing a phone later behaves the same way
	empty := ""
	got, err := svc.UpdateProfile(alice.ID, UpdateProfileIn{Phone: &empty})
	require.NoError(t, err)
	require.Nil(t, got.Phone)
}

func TestRegisterConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	_, err := svc.Register(RegisterIn{
		Username: "alice", Name: "Alice", Password: "hunter22",
		Phone: "555-0100", Email: "alice@example.com",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   RegisterIn
		want error
	}{
		{"duplicate username", RegisterIn{Username: "alice", Password: "x", Phone: "555-0101", Email: "a2@example.com"}, ErrUsernameTaken},
		{"duplicate phone", RegisterIn{Username: "bob", Password: "x", Phone: "555-0100", Email: "b@example.com"}, ErrPhoneTaken},
		{"duplicate email", RegisterIn{Username: "carol", Password: "x", Phone: "555-0102", Email: "alice@example.com"}, ErrEmailTaken},
	}
	for _, tc := range tests {
		_, err := svc.Register(tc.in)
		require.ErrorIs(t, err, tc.want, tc.name)
		require.True(t, IsConflict(err), tc.name)
	}
}

func TestUpdateProfileConflictsWithOtherUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	alice, err := svc.Register(RegisterIn{
		Username: "alice", Password: "hunter22", Phone: "555-0100", Email: "alice@example.com",
	})
	require.NoError(t, err)
	_, err = svc.Register(RegisterIn{
		Username: "bob", Password: "hunter22", Phone: "555-0101", Email: "bob@example.com",
	})
	require.NoError(t, err)

	taken := "bob"
	_, err = svc.UpdateProfile(alice.ID, UpdateProfileIn{Username: &taken})
	require.ErrorIs(t, err, ErrUsernameTaken)

	// keeping your own values is not a conflict
	same := "alice"
	newName := "Alice B."
	got, err := svc.UpdateProfile(alice.ID, UpdateProfileIn{Username: &same, Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Alice B.", got.Name)

	_, err = svc.UpdateProfile(9999, UpdateProfileIn{Name: &newName})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour)

	alice, err := svc.Register(RegisterIn{
		Username: "alice", Password: "hunter22", Phone: "555-0100", Email: "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(alice.ID))
	require.ErrorIs(t, svc.DeleteAccount(alice.ID), ErrNotFound)
}
