// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuilderclient

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// UnsupportedDigestAlgorithmError is returned when a server's digest challenge
// names an algorithm this package cannot compute.
type UnsupportedDigestAlgorithmError struct {
	Algorithm string
}

func (udae *UnsupportedDigestAlgorithmError) Error() string {
	return "unsupported digest algorithm " + strconv.Quote(udae.Algorithm)
}

// UnsupportedDigestQopError is returned when a server's digest challenge offers
// only qop values other than auth, such as auth-int.
type UnsupportedDigestQopError struct {
	Qop string
}

func (udqe *UnsupportedDigestQopError) Error() string {
	return "unsupported digest qop " + strconv.Quote(udqe.Qop)
}

// digestChallenge is the parsed form of a WWW-Authenticate: Digest header.
type digestChallenge struct {
	realm     string
	nonce     string
	opaque    string
	algorithm string

	// qop is "auth" when the server offers it, blank when the server offers
	// no qop at all, and the offered list when none of it is supported
	qop string
}

// parseAuthParams parses the comma-separated auth-params of a challenge.
// Keys are lowercased.  Quoted values are unescaped.
func parseAuthParams(s string) map[string]string {
	params := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " \t,")
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return params
		}

		key := strings.ToLower(strings.TrimSpace(s[:eq]))
		s = strings.TrimLeft(s[eq+1:], " \t")

		var value string
		if strings.HasPrefix(s, `"`) {
			var o strings.Builder
			i := 1
			for ; i < len(s) && s[i] != '"'; i++ {
				if s[i] == '\\' && i+1 < len(s) {
					i++
				}

				o.WriteByte(s[i])
			}

			if i < len(s) {
				i++
			}

			value, s = o.String(), s[i:]
		} else {
			end := strings.IndexByte(s, ',')
			if end < 0 {
				end = len(s)
			}

			value, s = strings.TrimSpace(s[:end]), s[end:]
		}

		params[key] = value
	}
}

// parseDigestChallenge returns the first digest challenge in a response's headers.
func parseDigestChallenge(h http.Header) (*digestChallenge, bool) {
	for _, v := range h.Values("WWW-Authenticate") {
		scheme, rest, _ := strings.Cut(strings.TrimSpace(v), " ")
		if !strings.EqualFold(scheme, "Digest") {
			continue
		}

		params := parseAuthParams(rest)
		if len(params["nonce"]) == 0 {
			continue
		}

		dc := &digestChallenge{
			realm:     params["realm"],
			nonce:     params["nonce"],
			opaque:    params["opaque"],
			algorithm: params["algorithm"],
		}

		dc.qop = strings.TrimSpace(params["qop"])
		for _, qop := range strings.Split(params["qop"], ",") {
			if strings.EqualFold(strings.TrimSpace(qop), "auth") {
				dc.qop = "auth"
			}
		}

		return dc, true
	}

	return nil, false
}

func digestHash(algorithm string) (newHash func() hash.Hash, session bool, err error) {
	switch strings.ToUpper(algorithm) {
	case "", "MD5":
		newHash = md5.New

	case "MD5-SESS":
		newHash, session = md5.New, true

	case "SHA-256":
		newHash = sha256.New

	case "SHA-256-SESS":
		newHash, session = sha256.New, true

	default:
		err = &UnsupportedDigestAlgorithmError{Algorithm: algorithm}
	}

	return
}

func hexDigest(newHash func() hash.Hash, parts ...string) string {
	h := newHash()
	io.WriteString(h, strings.Join(parts, ":"))
	return hex.EncodeToString(h.Sum(nil))
}

func newCnonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// authorization computes the Authorization header value answering this
// challenge for a request.  nc is the nonce count, starting at 1.
//
// The cnonce and nc are sent whenever they contribute to the response: with
// qop=auth, and with a -sess algorithm.
func (dc digestChallenge) authorization(request *http.Request, user, password string, nc uint32, cnonce string) (string, error) {
	if len(dc.qop) > 0 && dc.qop != "auth" {
		return "", &UnsupportedDigestQopError{Qop: dc.qop}
	}

	newHash, session, err := digestHash(dc.algorithm)
	if err != nil {
		return "", err
	}

	uri := request.URL.RequestURI()
	ha1 := hexDigest(newHash, user, dc.realm, password)
	if session {
		ha1 = hexDigest(newHash, ha1, dc.nonce, cnonce)
	}

	ha2 := hexDigest(newHash, request.Method, uri)
	count := fmt.Sprintf("%08x", nc)

	var response string
	if dc.qop == "auth" {
		response = hexDigest(newHash, ha1, dc.nonce, count, cnonce, dc.qop, ha2)
	} else {
		response = hexDigest(newHash, ha1, dc.nonce, ha2)
	}

	var o strings.Builder
	fmt.Fprintf(&o, `Digest username=%q, realm=%q, nonce=%q, uri=%q`, user, dc.realm, dc.nonce, uri)
	if len(dc.algorithm) > 0 {
		o.WriteString(", algorithm=")
		o.WriteString(dc.algorithm)
	}

	fmt.Fprintf(&o, `, response=%q`, response)
	if len(dc.opaque) > 0 {
		fmt.Fprintf(&o, `, opaque=%q`, dc.opaque)
	}

	switch {
	case dc.qop == "auth":
		fmt.Fprintf(&o, `, qop=auth, nc=%s, cnonce=%q`, count, cnonce)

	case session:
		fmt.Fprintf(&o, `, nc=%s, cnonce=%q`, count, cnonce)
	}

	return o.String(), nil
}

// digestNonces remembers the last digest challenge of each host, along with its
// nonce count, so that preemptive digest authentication can reuse it.
type digestNonces struct {
	lock       sync.Mutex
	challenges map[string]*nonceState
}

type nonceState struct {
	challenge digestChallenge
	count     uint32
}

// store replaces the challenge for a host, resetting its nonce count.
func (dn *digestNonces) store(host string, dc digestChallenge) {
	dn.lock.Lock()
	if dn.challenges == nil {
		dn.challenges = make(map[string]*nonceState)
	}

	dn.challenges[host] = &nonceState{challenge: dc}
	dn.lock.Unlock()
}

// next returns the stored challenge for a host with its next nonce count.
func (dn *digestNonces) next(host string) (dc digestChallenge, nc uint32, ok bool) {
	dn.lock.Lock()
	defer dn.lock.Unlock()

	var ns *nonceState
	if ns, ok = dn.challenges[host]; ok {
		ns.count++
		dc, nc = ns.challenge, ns.count
	}

	return
}
