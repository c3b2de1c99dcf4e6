// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"crypto/md5"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DigestSuite struct {
	suite.Suite
}

func (suite *DigestSuite) TestParseAuthParams() {
	testData := []struct {
		text     string
		expected map[string]string
	}{
		{
			text:     "",
			expected: map[string]string{},
		},
		{
			text:     `realm="a, b", qop="auth,auth-int", Algorithm=MD5`,
			expected: map[string]string{"realm": "a, b", "qop": "auth,auth-int", "algorithm": "MD5"},
		},
		{
			text:     `nonce="esc\"aped", stale=true,opaque="x"`,
			expected: map[string]string{"nonce": `esc"aped`, "stale": "true", "opaque": "x"},
		},
		{
			text:     `realm="unterminated`,
			expected: map[string]string{"realm": "unterminated"},
		},
	}

	for _, record := range testData {
		suite.Run(record.text, func() {
			suite.Equal(record.expected, parseAuthParams(record.text))
		})
	}
}

func (suite *DigestSuite) TestParseDigestChallenge() {
	suite.Run("Found", func() {
		h := http.Header{}
		h.Add("WWW-Authenticate", `Basic realm="other"`)
		h.Add("WWW-Authenticate", `Digest realm="r", nonce="n", opaque="o", qop="auth-int, auth", algorithm=SHA-256`)

		dc, ok := parseDigestChallenge(h)
		suite.Require().True(ok)
		suite.Equal(
			digestChallenge{realm: "r", nonce: "n", opaque: "o", algorithm: "SHA-256", qop: "auth"},
			*dc,
		)
	})

	suite.Run("NoQop", func() {
		h := http.Header{}
		h.Set("WWW-Authenticate", `digest realm="r", nonce="n"`)

		dc, ok := parseDigestChallenge(h)
		suite.Require().True(ok)
		suite.Empty(dc.qop)
	})

	suite.Run("AuthIntOnly", func() {
		h := http.Header{}
		h.Set("WWW-Authenticate", `Digest realm="r", nonce="n", qop="auth-int"`)

		dc, ok := parseDigestChallenge(h)
		suite.Require().True(ok)
		suite.Equal("auth-int", dc.qop)
	})

	suite.Run("Missing", func() {
		h := http.Header{}
		h.Set("WWW-Authenticate", `Basic realm="r"`)
		_, ok := parseDigestChallenge(h)
		suite.False(ok)

		h.Set("WWW-Authenticate", `Digest realm="r"`)
		_, ok = parseDigestChallenge(h)
		suite.False(ok, "a nonce is required")
	})
}

func (suite *DigestSuite) TestAuthorizationRFC2617() {
	dc := digestChallenge{
		realm:  "testrealm@host.com",
		nonce:  "dcd98b7102dd2f0e8b11d0f600bfb0c093",
		opaque: "5ccc069c403ebaf9f0171e9517f40e41",
		qop:    "auth",
	}

	request := httptest.NewRequest("GET", "http://www.nowhere.org/dir/index.html", nil)
	value, err := dc.authorization(request, "Mufasa", "Circle Of Life", 1, "0a4f113b")
	suite.Require().NoError(err)
	suite.Equal(
		`Digest username="Mufasa", realm="testrealm@host.com", nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", `+
			`uri="/dir/index.html", response="6629fae49393a05397450978507c4ef1", `+
			`opaque="5ccc069c403ebaf9f0171e9517f40e41", qop=auth, nc=00000001, cnonce="0a4f113b"`,
		value,
	)
}

func (suite *DigestSuite) TestAuthorizationRFC7616() {
	testData := []struct {
		algorithm string
		response  string
	}{
		{algorithm: "MD5", response: "8ca523f5e9506fed4657c9700eebdbec"},
		{algorithm: "SHA-256", response: "753927fa0e85d155564e2e272a28d1802ca10daf4496794697cf8db5856cb6c1"},
	}

	for _, record := range testData {
		suite.Run(record.algorithm, func() {
			dc := digestChallenge{
				realm:     "http-auth@example.org",
				nonce:     "7ypf/xlj9XXwfDPEoM4URrv/xwf94BcCAzFZH4GiTo0v",
				opaque:    "FQhe/qaU925kfnzjCev0ciny7QMkPqMAFRtzCUYo5tdS",
				algorithm: record.algorithm,
				qop:       "auth",
			}

			request := httptest.NewRequest("GET", "http://www.example.org/dir/index.html", nil)
			value, err := dc.authorization(request, "Mufasa", "Circle of Life", 1, "f2/wE4q74E6zIJEtWaHKaf5wv/H5QzzpXusqGemxURZJ")
			suite.Require().NoError(err)
			suite.Contains(value, `response="`+record.response+`"`)
			suite.Contains(value, "algorithm="+record.algorithm)
		})
	}
}

func (suite *DigestSuite) TestAuthorizationNoQop() {
	dc := digestChallenge{realm: "r", nonce: "n"}
	request := httptest.NewRequest("GET", "http://example.com/x?y=1", nil)

	value, err := dc.authorization(request, "u", "p", 1, "c")
	suite.Require().NoError(err)
	suite.Contains(value, `uri="/x?y=1"`)
	suite.NotContains(value, "qop=")
	suite.NotContains(value, "cnonce=")
	suite.NotContains(value, "opaque=")
}

func (suite *DigestSuite) TestSession() {
	request := httptest.NewRequest("GET", "http://example.com/", nil)

	plain, err := digestChallenge{realm: "r", nonce: "n", qop: "auth", algorithm: "MD5"}.authorization(request, "u", "p", 1, "c")
	suite.Require().NoError(err)

	session, err := digestChallenge{realm: "r", nonce: "n", qop: "auth", algorithm: "MD5-sess"}.authorization(request, "u", "p", 1, "c")
	suite.Require().NoError(err)

	response := func(v string) string {
		_, rest, _ := strings.Cut(v, `response="`)
		r, _, _ := strings.Cut(rest, `"`)
		return r
	}

	suite.Len(response(plain), 32)
	suite.Len(response(session), 32)
	suite.NotEqual(response(plain), response(session))
}

func (suite *DigestSuite) TestSessionNoQop() {
	request := httptest.NewRequest("GET", "http://example.com/y", nil)
	dc := digestChallenge{realm: "r", nonce: "n", algorithm: "MD5-sess"}

	value, err := dc.authorization(request, "u", "p", 1, "c")
	suite.Require().NoError(err)
	suite.Contains(value, `, nc=00000001, cnonce="c"`)
	suite.NotContains(value, "qop=")

	ha1 := hexDigest(md5.New, hexDigest(md5.New, "u", "r", "p"), "n", "c")
	expected := hexDigest(md5.New, ha1, "n", hexDigest(md5.New, "GET", "/y"))
	suite.Contains(value, `response="`+expected+`"`)
}

func (suite *DigestSuite) TestUnsupportedQop() {
	h := http.Header{}
	h.Set("WWW-Authenticate", `Digest realm="r", nonce="n", qop="auth-int"`)
	dc, ok := parseDigestChallenge(h)
	suite.Require().True(ok)

	request := httptest.NewRequest("GET", "http://example.com/", nil)
	value, err := dc.authorization(request, "u", "p", 1, "c")
	suite.Empty(value)

	var udqe *UnsupportedDigestQopError
	suite.Require().ErrorAs(err, &udqe)
	suite.Equal(`unsupported digest qop "auth-int"`, udqe.Error())
}

func (suite *DigestSuite) TestUnsupportedAlgorithm() {
	request := httptest.NewRequest("GET", "http://example.com/", nil)
	_, err := digestChallenge{nonce: "n", algorithm: "SHA-512-256"}.authorization(request, "u", "p", 1, "c")

	var udae *UnsupportedDigestAlgorithmError
	suite.Require().ErrorAs(err, &udae)
	suite.Equal(`unsupported digest algorithm "SHA-512-256"`, udae.Error())
}

func (suite *DigestSuite) TestCnonce() {
	first, second := newCnonce(), newCnonce()
	suite.Len(first, 32)
	suite.NotEqual(first, second)
}

func (suite *DigestSuite) TestNonces() {
	var dn digestNonces

	_, _, ok := dn.next("example.com")
	suite.False(ok)

	dn.store("example.com", digestChallenge{nonce: "first"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dn.next("example.com")
		}()
	}

	wg.Wait()

	dc, nc, ok := dn.next("example.com")
	suite.True(ok)
	suite.Equal("first", dc.nonce)
	suite.Equal(uint32(11), nc)

	dn.store("example.com", digestChallenge{nonce: "second"})
	dc, nc, ok = dn.next("example.com")
	suite.True(ok)
	suite.Equal("second", dc.nonce)
	suite.Equal(uint32(1), nc, "a new challenge restarts the nonce count")
}

func TestDigest(t *testing.T) {
	suite.Run(t, new(DigestSuite))
}
