package services

import (
	"testing"
	"time"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewStaffRepository(db), "test-secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.StaffUser{
		Username: "dad", Password: string(hash), Role: "admin",
	}).Error)

	token, user, err := svc.Login("dad", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "dad", user.Username)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "dad", claims["username"])

	// wrong password and unknown user fail identically
	_, _, badPass := svc.Login("dad", "nope")
	_, _, noUser := svc.Login("ghost", "s3cret")
	require.Error(t, badPass)
	require.Error(t, noUser)
	assert.Equal(t, badPass.Error(), noUser.Error())
}
