package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_SixDigitRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateOrderID_FourDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := GenerateOrderID()
		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, CheckPasswordHash("pw1", hash))
	assert.False(t, CheckPasswordHash("pw2", hash))
}

func TestPasswordHash_LongPasswords(t *testing.T) {
	long := strings.Repeat("p", 73)
	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash(long, hash))

	prefix := strings.Repeat("q", 72)
	hash, err = HashPassword(prefix)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash(prefix, hash))
	assert.False(t, CheckPasswordHash(prefix+"EXTRA", hash))
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	type body struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	errs := ValidateStruct(body{Identifier: "a@b.com"})
	assert.Equal(t, map[string]string{"password": "This field is required"}, errs)
	assert.Equal(t, "password: This field is required", FormatValidationErrors(errs))
	assert.Nil(t, ValidateStruct(body{Identifier: "a@b.com", Password: "x"}))
}
