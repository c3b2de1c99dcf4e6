// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	suite.Suite
}

func (suite *AuthSuite) TestZeroValue() {
	var a Auth
	suite.False(a.IsSet())
	suite.Equal(AuthNone, a.Type())
	suite.Empty(a.User())
	suite.Empty(a.Password())
	suite.False(a.Preemptive())
}

func (suite *AuthSuite) TestBasic() {
	var a Auth
	suite.Require().NoError(a.Basic("joe", "secret", true))
	suite.True(a.IsSet())
	suite.Equal(AuthBasic, a.Type())
	suite.Equal("joe", a.User())
	suite.Equal("secret", a.Password())
	suite.True(a.Preemptive())
}

func (suite *AuthSuite) TestDigest() {
	var a Auth
	suite.Require().NoError(a.Digest("joe", "", false))
	suite.Equal(AuthDigest, a.Type())
	suite.Equal("joe", a.User())
	suite.Empty(a.Password())
	suite.False(a.Preemptive())
}

func (suite *AuthSuite) TestLastWriteWins() {
	var a Auth
	suite.Require().NoError(a.Basic("user", "pw", true))
	suite.Require().NoError(a.Digest("user", "pw", false))
	suite.Equal(AuthDigest, a.Type())
	suite.False(a.Preemptive())

	suite.Require().NoError(a.Basic("other", "pw2", false))
	suite.Equal(AuthBasic, a.Type())
	suite.Equal("other", a.User())
	suite.Equal("pw2", a.Password())
}

func (suite *AuthSuite) TestMissingCredentials() {
	var a Auth
	suite.Require().NoError(a.Basic("user", "pw", true))

	suite.ErrorIs(a.Basic("", "pw", false), ErrMissingCredentials)
	suite.ErrorIs(a.Digest("", "pw", false), ErrMissingCredentials)

	// a failed call leaves the previous settings intact
	suite.Equal(AuthBasic, a.Type())
	suite.Equal("user", a.User())
}

func (suite *AuthSuite) TestEmptyPassword() {
	var a Auth
	suite.Require().NoError(a.Basic("user", "", true))
	suite.Equal(AuthBasic, a.Type())
	suite.Empty(a.Password())

	suite.Require().NoError(a.Digest("user", "", true))
	suite.Equal(AuthDigest, a.Type())
	suite.Empty(a.Password())
}

func (suite *AuthSuite) TestNone() {
	var a Auth
	suite.Require().NoError(a.Basic("user", "pw", true))
	a.None()
	suite.True(a.IsSet())
	suite.Equal(AuthNone, a.Type())
	suite.Empty(a.User())
	suite.False(a.Preemptive())
}

func (suite *AuthSuite) TestAuthTypeText() {
	testData := []struct {
		text     string
		expected AuthType
	}{
		{text: "", expected: AuthNone},
		{text: "none", expected: AuthNone},
		{text: "Basic", expected: AuthBasic},
		{text: "DIGEST", expected: AuthDigest},
	}

	for _, record := range testData {
		suite.Run(record.text, func() {
			var at AuthType
			suite.Require().NoError(at.UnmarshalText([]byte(record.text)))
			suite.Equal(record.expected, at)
		})
	}

	suite.Run("Unknown", func() {
		var at AuthType
		suite.Error(at.UnmarshalText([]byte("ntlm")))
	})

	suite.Run("Marshal", func() {
		text, err := AuthDigest.MarshalText()
		suite.NoError(err)
		suite.Equal("digest", string(text))
		suite.Equal("unknown", AuthType(-1).String())
	})
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}
