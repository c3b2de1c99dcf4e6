// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilder

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
)

type URIBuilderSuite struct {
	suite.Suite
}

func (suite *URIBuilderSuite) newURIBuilder(uri string) *URIBuilder {
	ub, err := NewURIBuilder(uri)
	suite.Require().NoError(err)
	suite.Require().NotNil(ub)
	return ub
}

func (suite *URIBuilderSuite) TestAbsolute() {
	ub := suite.newURIBuilder("https://joe:pw@example.com:8443/api/v1?b=2&a=1#frag")
	suite.Equal("https", ub.Scheme())
	suite.Equal("example.com", ub.Host())
	suite.Equal("8443", ub.Port())
	suite.Equal("/api/v1", ub.Path())
	suite.Equal("frag", ub.Fragment())
	suite.Equal(url.Values{"a": {"1"}, "b": {"2"}}, ub.Query())
	suite.Require().NotNil(ub.User())
	suite.Equal("joe", ub.User().Username())
	suite.Equal("https://joe:pw@example.com:8443/api/v1?a=1&b=2#frag", ub.String())
}

func (suite *URIBuilderSuite) TestMalformed() {
	testData := []string{
		"http://[::1",
		"://missing-scheme",
		"http://exa mple.com/",
		"http:opaque",
		"http:///nohost",
		"/path with space",
		"http://example.com/%zz",
	}

	for _, uri := range testData {
		suite.Run(uri, func() {
			ub := suite.newURIBuilder("http://original.com/")

			err := ub.SetURI(uri)
			suite.ErrorIs(err, ErrMalformedURI)

			var mue *MalformedURIError
			suite.Require().ErrorAs(err, &mue)
			suite.Equal(uri, mue.URI)
			suite.Contains(mue.Error(), "malformed URI")

			// the builder is untouched
			suite.Equal("http://original.com/", ub.String())
		})
	}
}

func (suite *URIBuilderSuite) TestSetNilURL() {
	suite.Run("Empty", func() {
		ub := new(URIBuilder)
		suite.Same(ub, ub.SetURL(nil))
		suite.Empty(ub.String())
	})

	suite.Run("Existing", func() {
		ub := suite.newURIBuilder("https://example.com/api")
		suite.Same(ub, ub.SetURL(nil))
		suite.Equal("https://example.com/api", ub.String())
	})
}

func (suite *URIBuilderSuite) TestFluent() {
	ub := new(URIBuilder)
	ub.SetScheme("HTTP").
		SetHost("localhost").
		SetPort(8080).
		SetPath("/base").
		AppendPath("/widgets/", "", "42").
		SetQueryParam("q", "x", "y").
		AddQueryParam("q", "z").
		SetFragment("top")

	suite.Equal("http://localhost:8080/base/widgets/42?q=x&q=y&q=z#top", ub.String())

	ub.SetPort(0)
	suite.Equal("http://localhost/base/widgets/42?q=x&q=y&q=z#top", ub.String())
}

func (suite *URIBuilderSuite) TestIPv6() {
	ub := suite.newURIBuilder("http://[::1]:9000/x")
	suite.Equal("::1", ub.Host())
	suite.Equal("http://[::1]:9000/x", ub.String())

	ub.SetPort(0)
	suite.Equal("http://[::1]/x", ub.String())
}

func (suite *URIBuilderSuite) TestSetQueryStruct() {
	type params struct {
		Color string `url:"color"`
		Count int    `url:"count,omitempty"`
	}

	ub := suite.newURIBuilder("http://example.com/?color=red&size=big")
	suite.Require().NoError(ub.SetQueryStruct(params{Color: "blue"}))
	suite.Equal(url.Values{"color": {"blue"}, "size": {"big"}}, ub.Query())

	suite.Error(ub.SetQueryStruct(123))
}

func (suite *URIBuilderSuite) TestChild() {
	parent := suite.newURIBuilder("https://example.com/api?token=abc&page=1")

	suite.Run("Inherits", func() {
		child := parent.child()
		suite.Equal("https://example.com/api?page=1&token=abc", child.String())
	})

	suite.Run("Overrides", func() {
		child := parent.child()
		child.AppendPath("users").SetQueryParam("page", "2").AddQueryParam("token", "def")

		suite.Equal("https://example.com/api/users?page=2&token=abc&token=def", child.String())
		suite.Equal("https://example.com/api?page=1&token=abc", parent.String())
	})

	suite.Run("Relative", func() {
		child := parent.child()
		suite.Require().NoError(child.SetURI("../other?x=1"))
		suite.Equal("https://example.com/other?x=1", child.String())
		suite.Equal("https://example.com/api?page=1&token=abc", parent.String())
	})

	suite.Run("Absolute", func() {
		child := parent.child()
		suite.Require().NoError(child.SetURI("http://other.com:81"))
		suite.Equal("http://other.com:81", child.String())
	})

	suite.Run("ReplaceQuery", func() {
		child := parent.child()
		child.SetQuery(url.Values{"only": {"this"}})
		suite.Equal("https://example.com/api?only=this", child.String())
	})
}

func (suite *URIBuilderSuite) TestClone() {
	original := suite.newURIBuilder("http://joe@example.com/?a=1")
	clone := original.clone()
	clone.SetQueryParam("a", "2").SetHost("changed.com")

	suite.Equal("http://joe@example.com/?a=1", original.String())
	suite.Equal("http://joe@changed.com/?a=2", clone.String())
}

func TestURIBuilder(t *testing.T) {
	suite.Run(t, new(URIBuilderSuite))
}
