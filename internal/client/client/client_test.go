package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
	"github.com/dmitrijs2005/codeshack/internal/testutil/fakeapi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token(context.Context) (string, error) { return string(t), nil }

type failingToken struct{}

func (failingToken) Token(context.Context) (string, error) { return "", errors.New("store closed") }

func newClient(api *fakeapi.Server, token string) *Client {
	return New(Options{BaseURL: api.URL, Tokens: staticToken(token)})
}

func lastRequest(t *testing.T, api *fakeapi.Server) fakeapi.Request {
	t.Helper()
	reqs := api.Requests()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

func TestDo_NoTokenOmitsAuthorization(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")

	_, err := c.Login(context.Background(), "nobody@x.io", "secret1")
	require.Error(t, err)

	req := lastRequest(t, api)
	assert.Empty(t, req.Authorization)
	assert.Equal(t, "application/json", req.ContentType)
	assert.NotEmpty(t, req.RequestID)
}

func TestDo_TokenSentVerbatimAsBearer(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "abc.def")

	_, _ = c.GetDoubts(context.Background(), 1, 10)

	assert.Equal(t, "Bearer abc.def", lastRequest(t, api).Authorization)
}

func TestDo_ContentTypeOnBodylessRequests(t *testing.T) {
	api := fakeapi.New(t)
	u := api.SeedUser("Jo", "jo@x.io", "secret1", models.RoleJunior, false)
	c := newClient(api, api.TokenFor(u.ID))

	_, err := c.GetDoubtStats(context.Background())
	require.NoError(t, err)

	req := lastRequest(t, api)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "application/json", req.ContentType)
}

func TestDo_RequestIDsAreUnique(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")
	ctx := context.Background()

	_, _ = c.Login(ctx, "a@x.io", "x")
	_, _ = c.Login(ctx, "a@x.io", "x")

	reqs := api.Requests()
	require.Len(t, reqs, 2)
	assert.NotEqual(t, reqs[0].RequestID, reqs[1].RequestID)
}

func TestDo_ServerRejectionCarriesMessage(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")

	res, err := c.Login(context.Background(), "missing@x.io", "secret1")
	require.Error(t, err)
	assert.Equal(t, AuthResult{}, res)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusUnauthorized, re.Status)
	assert.Equal(t, "Invalid email or password", re.Message)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, errors.Is(err, ErrUnavailable))
}

func TestDo_MissingTokenIsUnauthorized(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")

	page, err := c.GetDoubts(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Empty(t, page.Items)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Not authorized, no token", Message(err))
}

func TestDo_NonJSONErrorUsesFallback(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")
	api.FailNext(0, "")

	_, err := c.GetDoubtStats(context.Background())

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusBadGateway, re.Status)
	assert.Equal(t, FallbackMessage, re.Message)
}

func TestDo_SuccessFalseOn2xxIsRejected(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/doubts/stats/overview", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"data":{"totalDoubts":7},"message":"not today"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	st, err := c.GetDoubtStats(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.DoubtStats{}, st)
	assert.Equal(t, "not today", Message(err))
}

func TestDo_SuccessFalseWithoutMessageUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	err := New(Options{BaseURL: srv.URL}).DeleteDoubt(context.Background(), "d1")
	assert.Equal(t, FallbackMessage, Message(err))
}

func TestDo_MalformedSuccessBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).GetAdminStats(context.Background())
	require.Error(t, err)

	var re *RequestError
	assert.False(t, errors.As(err, &re))
	assert.Equal(t, FallbackMessage, Message(err))
}

func TestDo_NetworkFailure(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")
	api.Close()

	_, err := c.GetDoubtStats(context.Background())
	require.Error(t, err)

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, FallbackMessage, Message(err))
}

func TestDo_TokenLookupFailure(t *testing.T) {
	api := fakeapi.New(t)
	c := New(Options{BaseURL: api.URL, Tokens: failingToken{}})

	_, err := c.GetDoubtStats(context.Background())
	require.Error(t, err)
	assert.Empty(t, api.Requests())
}

func TestDo_ContextCancelled(t *testing.T) {
	api := fakeapi.New(t)
	c := newClient(api, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetDoubtStats(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_TrailingSlashInBaseURL(t *testing.T) {
	api := fakeapi.New(t)
	c := New(Options{BaseURL: api.URL + "/"})

	_, _ = c.Login(context.Background(), "a@x.io", "secret1")

	assert.Equal(t, "/users/login", lastRequest(t, api).Path)
}

func TestDo_DedupSharesInFlightGET(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"success":true,"data":{"totalActions":3}}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Dedup: true})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]models.AdminStats, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = c.GetAdminStats(ctx)
	}()
	<-arrived

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = c.GetAdminStats(ctx)
	}()
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 3, results[0].TotalActions)
	assert.Equal(t, 3, results[1].TotalActions)
}

func TestDo_DedupCancelledCallerDoesNotFailOthers(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"success":true,"data":{"totalActions":7}}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Dedup: true})
	firstCtx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	var firstErr, secondErr error
	var second models.AdminStats

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = c.GetAdminStats(firstCtx)
	}()
	<-arrived

	wg.Add(1)
	go func() {
		defer wg.Done()
		second, secondErr = c.GetAdminStats(context.Background())
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, context.Canceled)
	require.NoError(t, secondErr)
	assert.Equal(t, 7, second.TotalActions)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDo_WithoutDedupEveryCallHitsServer(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	for range 3 {
		_, err := c.GetAdminStats(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestDo_RateLimitedClientStillCompletes(t *testing.T) {
	api := fakeapi.New(t)
	c := New(Options{BaseURL: api.URL, RateLimit: 1000})

	for range 3 {
		_, _ = c.Login(context.Background(), "a@x.io", "secret1")
	}
	assert.Len(t, api.Requests(), 3)
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{BaseURL: "http://localhost:5000/api/"})
	assert.Equal(t, "http://localhost:5000/api", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Nil(t, c.limiter)

	c = New(Options{Timeout: time.Second, RateLimit: 0.5})
	assert.Equal(t, time.Second, c.httpClient.Timeout)
	require.NotNil(t, c.limiter)
	assert.Equal(t, 1, c.limiter.Burst())
}

func TestPageQuery(t *testing.T) {
	assert.Equal(t, "", pageQuery(0, 0, nil))
	assert.Equal(t, "?limit=5&page=2", pageQuery(2, 5, nil))
	assert.Equal(t, "?actionType=ban_user&limit=20&page=1",
		pageQuery(1, 20, map[string][]string{"actionType": {"ban_user"}}))
}
