// Copyright (c) Acedya
// SPDX-License-Identifier: MPL-2.0

package secretserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/acedya/tss-credential-plugin/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategyDirect, StrategyDelegated}

func newTestResolver(t *testing.T, strategy Strategy, timeout time.Duration) *Resolver {
	t.Helper()
	r, err := NewResolver(Config{Strategy: strategy, HTTPTimeout: timeout})
	require.NoError(t, err)
	return r
}

func fakeParams(baseURL, domain string) ConnectionParameters {
	return ConnectionParameters{
		BaseURL:  baseURL,
		Username: testhelpers.FakeUsername,
		Password: testhelpers.FakePassword,
		Domain:   domain,
	}
}

// forEachStrategy runs fn once per authentication strategy; both must behave
// identically.
func forEachStrategy(t *testing.T, fn func(t *testing.T, strategy Strategy)) {
	for _, s := range strategies {
		t.Run(string(s), func(t *testing.T) { fn(t, s) })
	}
}

func TestResolve_BaseURLMakesNoRequest(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), "CORP"), SelectorBaseURL)
		require.NoError(t, err)
		assert.Equal(t, srv.BaseURL(), got)
		assert.Empty(t, srv.Requests(), "base_url must not contact the server")
	})
}

func TestResolve_Token(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		for _, sel := range []OutputSelector{SelectorToken, ""} {
			got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), sel)
			require.NoError(t, err)
			assert.Equal(t, "T", got)
		}

		reqs := srv.Requests()
		require.Len(t, reqs, 2, "every call authenticates again")
		req := reqs[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, testhelpers.FakeBaseURLPath+TokenPath, req.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", req.ContentType)
		assert.Equal(t, DefaultUserAgent, req.UserAgent)
		assert.Equal(t, "password", req.Form.Get("grant_type"))
		assert.Equal(t, testhelpers.FakeUsername, req.Form.Get("username"))
		assert.Equal(t, testhelpers.FakePassword, req.Form.Get("password"))
	})
}

func TestResolve_DomainHandling(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		_, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
		require.NoError(t, err)
		body := srv.LastRequest(t).RawBody
		if strings.Contains(body, "domain") {
			t.Fatalf("domain must be omitted when absent, body: %s", body)
		}

		_, err = r.Resolve(context.Background(), fakeParams(srv.BaseURL(), "CORP"), SelectorToken)
		require.NoError(t, err)
		assert.Contains(t, srv.LastRequest(t).RawBody, "domain=CORP")
	})
}

func TestResolve_TrailingSlashStripped(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		_, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL()+"/", ""), SelectorToken)
		require.NoError(t, err)
		assert.Equal(t, testhelpers.FakeBaseURLPath+TokenPath, srv.LastRequest(t).Path)
	})
}

func TestResolve_HTTPFailure(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"bad password s3cret"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
		require.Error(t, err)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrAuthentication))
		assert.Equal(t, KindHTTPFailure, KindOf(err))

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "invalid_grant")
		assert.NotContains(t, err.Error(), testhelpers.FakePassword)
	})
}

func TestResolve_ErrorBodyNotParsedAsToken(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusUnauthorized, `{"access_token":"should-not-be-used"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
		require.Error(t, err)
		assert.Empty(t, got)
		assert.True(t, errors.Is(err, ErrAuthentication))
		assert.NotContains(t, err.Error(), "should-not-be-used")
	})
}

func TestResolve_ProtocolErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		kind Kind
	}{
		{"missing access_token", `{"token_type":"bearer"}`, KindMissingTokenField},
		{"invalid json", `not-json`, KindInvalidResponseBody},
		{"wrong type", `{"access_token":123}`, KindWrongTokenType},
	}
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				srv := testhelpers.NewTokenServer(t, http.StatusOK, c.body)
				r := newTestResolver(t, s, 0)

				got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
				require.Error(t, err)
				assert.Empty(t, got)
				assert.True(t, errors.Is(err, ErrProtocol))
				assert.Equal(t, c.kind, KindOf(err))
				assert.NotContains(t, err.Error(), testhelpers.FakePassword)
				if c.kind == KindMissingTokenField {
					assert.Contains(t, err.Error(), "token_type")
				}
			})
		}
	})
}

func TestResolve_OversizedBodyIsTruncated(t *testing.T) {
	srv := testhelpers.NewTokenServer(t, http.StatusOK, testhelpers.BuildLargeBody())
	r := newTestResolver(t, StrategyDirect, 0)

	_, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
	require.Error(t, err)
	assert.Equal(t, KindInvalidResponseBody, KindOf(err))
	assert.NotContains(t, err.Error(), "PWD")
}

func TestResolve_UnknownSelector(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		_, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), OutputSelector("unknown_key"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, KindUnknownSelector, KindOf(err))
		assert.Contains(t, err.Error(), "unknown_key")
		assert.Empty(t, srv.Requests())
	})
}

func TestResolve_MissingFieldsBeforeAnything(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		r := newTestResolver(t, s, 0)
		for _, sel := range []OutputSelector{SelectorToken, SelectorBaseURL, "unknown_key"} {
			_, err := r.Resolve(context.Background(), ConnectionParameters{BaseURL: "https://x", Username: "u"}, sel)
			require.Error(t, err)
			assert.Equal(t, KindMissingField, KindOf(err), "selector %q", sel)
			assert.Contains(t, err.Error(), FieldPassword)
		}
	})
}

func TestResolve_Timeout(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServerFunc(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		})
		r := newTestResolver(t, s, 50*time.Millisecond)

		_, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), ""), SelectorToken)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTransport))
		assert.Equal(t, KindTimeout, KindOf(err))
		assert.NotContains(t, err.Error(), testhelpers.FakePassword)
	})
}

func TestResolve_ContextDeadline(t *testing.T) {
	srv := testhelpers.NewTokenServerFunc(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	r := newTestResolver(t, StrategyDirect, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := r.Resolve(ctx, fakeParams(srv.BaseURL(), ""), SelectorToken)
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestResolve_ConnectionFailure(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		baseURL := srv.BaseURL()
		srv.Close()
		r := newTestResolver(t, s, time.Second)

		_, err := r.Resolve(context.Background(), fakeParams(baseURL, ""), SelectorToken)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTransport))
		assert.Equal(t, KindConnectionFailure, KindOf(err))
	})
}

func TestResolve_Scenario(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"abc.def.ghi"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.Resolve(context.Background(), ConnectionParameters{
			BaseURL:  srv.BaseURL(),
			Username: "appuser",
			Password: "s3cret",
			Domain:   "MYDOMAIN",
		}, SelectorToken)
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", got)
		assert.Equal(t, "MYDOMAIN", srv.LastRequest(t).Form.Get("domain"))
	})
}

func TestResolve_PasswordNeverLeaks(t *testing.T) {
	const password = "pa55-w0rd!"
	bodies := map[int]string{
		http.StatusOK:                  `{"token_type":"bearer"}`,
		http.StatusBadRequest:          `{"error":"invalid_grant","error_description":"password pa55-w0rd! rejected"}`,
		http.StatusInternalServerError: `pa55-w0rd!`,
	}
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		for status, body := range bodies {
			srv := testhelpers.NewTokenServer(t, status, body)
			r := newTestResolver(t, s, 0)
			p := ConnectionParameters{BaseURL: srv.BaseURL(), Username: "appuser", Password: password}

			for _, sel := range []OutputSelector{SelectorToken, SelectorBaseURL, OutputSelector(password)} {
				got, err := r.Resolve(context.Background(), p, sel)
				assert.NotContains(t, got, password)
				if err != nil {
					assert.NotContains(t, err.Error(), password)
				}
			}
			all, err := r.ResolveAll(context.Background(), p)
			require.Error(t, err)
			assert.Nil(t, all)
			assert.NotContains(t, err.Error(), password)
		}
	})
}

func TestResolveAll(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.ResolveAll(context.Background(), fakeParams(srv.BaseURL(), "CORP"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{OutputToken: "T", OutputServerURL: srv.BaseURL()}, got)
	})
}

func TestNewResolver_Config(t *testing.T) {
	r, err := NewResolver(Config{})
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, r.Strategy())

	r, err = NewResolver(Config{Strategy: "Delegated"})
	require.NoError(t, err)
	assert.Equal(t, StrategyDelegated, r.Strategy())

	_, err = NewResolver(Config{Strategy: "sdk"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sdk")

	_, err = NewResolver(Config{HTTPTimeout: -time.Second})
	require.Error(t, err)
}

func TestNewResolver_CustomClientNotMutated(t *testing.T) {
	client := &http.Client{}
	_, err := NewResolver(Config{HTTPClient: client, HTTPTimeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Zero(t, client.Timeout)
}

func TestToken_KeepsExpiry(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T","token_type":"bearer","expires_in":1200}`)
		r := newTestResolver(t, s, 0)

		before := time.Now()
		tok, err := r.Token(context.Background(), fakeParams(srv.BaseURL(), "CORP"))
		require.NoError(t, err)
		assert.Equal(t, "T", tok.AccessToken)
		assert.Equal(t, "bearer", tok.TokenType)
		assert.WithinDuration(t, before.Add(1200*time.Second), tok.Expiry, 5*time.Second)
		assert.Equal(t, "CORP", srv.LastRequest(t).Form.Get("domain"))
	})
}

func TestToken_NoExpiryAdvertised(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"T"}`)
		r := newTestResolver(t, s, 0)

		tok, err := r.Token(context.Background(), fakeParams(srv.BaseURL(), ""))
		require.NoError(t, err)
		assert.True(t, tok.Expiry.IsZero())
	})
}

func TestToken_ValidatesFirst(t *testing.T) {
	r := newTestResolver(t, StrategyDirect, 0)
	tok, err := r.Token(context.Background(), ConnectionParameters{BaseURL: "https://x"})
	require.Error(t, err)
	assert.Nil(t, tok)
	assert.Equal(t, KindMissingField, KindOf(err))
}

func TestResolve_BlankDomainTreatedAsAbsent(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		srv := testhelpers.NewTokenServer(t, http.StatusOK, `{"access_token":"abc.def.ghi"}`)
		r := newTestResolver(t, s, 0)

		got, err := r.Resolve(context.Background(), fakeParams(srv.BaseURL(), "  "), SelectorToken)
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", got)
		assert.NotContains(t, srv.LastRequest(t).Form, "domain")

		_, err = r.Resolve(context.Background(), fakeParams(srv.BaseURL(), " CORP "), SelectorToken)
		require.NoError(t, err)
		assert.Equal(t, "CORP", srv.LastRequest(t).Form.Get("domain"))
	})
}
