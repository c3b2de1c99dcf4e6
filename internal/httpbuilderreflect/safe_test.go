// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderreflect

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type SafeSuite struct {
	suite.Suite
}

func (suite *SafeSuite) TestNotNillable() {
	suite.Equal(123, Safe(123, 456))
	suite.Equal("", Safe("", "default"))
}

func (suite *SafeSuite) TestPointer() {
	def := zap.NewNop()
	suite.Same(def, Safe[*zap.Logger](nil, def))

	candidate := zap.NewExample()
	suite.Same(candidate, Safe(candidate, def))
}

func (suite *SafeSuite) TestNilInterface() {
	var candidate http.RoundTripper
	suite.Equal(http.DefaultTransport, Safe(candidate, http.DefaultTransport))
}

func (suite *SafeSuite) TestTypedNilInterface() {
	var candidate http.RoundTripper = (*http.Transport)(nil)
	suite.Equal(http.DefaultTransport, Safe(candidate, http.DefaultTransport))
}

func (suite *SafeSuite) TestUninitializedFunc() {
	var candidate http.HandlerFunc
	actual := Safe[http.Handler](candidate, http.DefaultServeMux)
	suite.Same(http.DefaultServeMux, actual)
}

func TestSafe(t *testing.T) {
	suite.Run(t, new(SafeSuite))
}
