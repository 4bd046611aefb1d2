// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast
var testParams = Argon2Params{MemoryKiB: 8 * 1024, Iterations: 1, Threads: 1}

func TestNewArgon2idHasher_Defaults(t *testing.T) {
	h := NewArgon2idHasher(Argon2Params{})

	assert.Equal(t, Argon2Params{
		MemoryKiB:  DefaultMemoryKiB,
		Iterations: DefaultIterations,
		Threads:    DefaultThreads,
		SaltLen:    DefaultSaltLen,
		KeyLen:     DefaultKeyLen,
	}, h.Params())
}

func TestArgon2idHasher_HashFormat(t *testing.T) {
	h := NewArgon2idHasher(testParams)

	encoded, err := h.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"), encoded)
	assert.Len(t, strings.Split(encoded, "$"), 6)
	assert.NotContains(t, encoded, "correct horse")
}

func TestArgon2idHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewArgon2idHasher(testParams)

	first, err := h.HashPassword("same-password")
	require.NoError(t, err)
	second, err := h.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.VerifyPassword(first, "same-password"))
	assert.True(t, h.VerifyPassword(second, "same-password"))
}

func TestArgon2idHasher_EmptyPassword(t *testing.T) {
	h := NewArgon2idHasher(testParams)

	_, err := h.HashPassword("")
	require.ErrorIs(t, err, ErrEmptyPassword)

	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok)
	assert.Equal(t, "AUTH_EMPTY_PASSWORD", oopsErr.Code())
}

func TestArgon2idHasher_Verify(t *testing.T) {
	h := NewArgon2idHasher(testParams)
	encoded, err := h.HashPassword("hunter22")
	require.NoError(t, err)

	// a hash produced with other parameters still verifies
	other := NewArgon2idHasher(Argon2Params{MemoryKiB: 4 * 1024, Iterations: 2, Threads: 2})

	tests := []struct {
		name     string
		encoded  string
		password string
		want     bool
	}{
		{name: "match", encoded: encoded, password: "hunter22", want: true},
		{name: "mismatch", encoded: encoded, password: "hunter23", want: false},
		{name: "empty password", encoded: encoded, password: "", want: false},
		{name: "empty hash", encoded: "", password: "hunter22", want: false},
		{name: "garbage", encoded: "not-a-hash", password: "hunter22", want: false},
		{name: "wrong algorithm", encoded: strings.Replace(encoded, "argon2id", "argon2i", 1), password: "hunter22", want: false},
		{name: "wrong version", encoded: strings.Replace(encoded, "v=19", "v=16", 1), password: "hunter22", want: false},
		{name: "bad params", encoded: strings.Replace(encoded, "m=8192,t=1,p=1", "m=x,t=1,p=1", 1), password: "hunter22", want: false},
		{name: "zero threads", encoded: strings.Replace(encoded, "p=1", "p=0", 1), password: "hunter22", want: false},
		{name: "huge memory", encoded: strings.Replace(encoded, "m=8192", "m=99999999", 1), password: "hunter22", want: false},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=8192,t=1,p=1$!!!$AAAA", password: "hunter22", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.VerifyPassword(tt.encoded, tt.password))
		})
	}

	t.Run("foreign params", func(t *testing.T) {
		foreign, err := other.HashPassword("hunter22")
		require.NoError(t, err)
		assert.True(t, h.VerifyPassword(foreign, "hunter22"))
	})
}
