package ingest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidaraiorek/launchboard/internal/fetcher"
	"github.com/deidaraiorek/launchboard/internal/ingest"
	"github.com/deidaraiorek/launchboard/internal/query"
)

const (
	launchesJSON   = `[{"id":"l1","name":"Starlink-15","success":true,"upcoming":false,"rocket":"r1","launchpad":"p1","flight_number":101,"date_utc":"2020-10-24T15:31:00.000Z"}]`
	rocketsJSON    = `[{"id":"r1","name":"Falcon 9","company":"SpaceX"}]`
	launchpadsJSON = `[{"id":"p1","full_name":"Cape Canaveral Space Force Station Space Launch Complex 40","region":"Florida","locality":"Cape Canaveral"}]`
)

type apiServer struct {
	mu       sync.Mutex
	requests []string
	failing  string
}

func (a *apiServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := r.URL.Path[len("/v4/"):]

	a.mu.Lock()
	a.requests = append(a.requests, endpoint)
	a.mu.Unlock()

	if endpoint == a.failing {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch endpoint {
	case ingest.EndpointLaunches:
		w.Write([]byte(launchesJSON))
	case ingest.EndpointRockets:
		w.Write([]byte(rocketsJSON))
	case ingest.EndpointLaunchpads:
		w.Write([]byte(launchpadsJSON))
	default:
		http.NotFound(w, r)
	}
}

func (a *apiServer) requested() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

func newLoader(t *testing.T, api *apiServer, concurrent bool) *ingest.Loader {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	f := fetcher.New(fetcher.Config{BaseURL: srv.URL + "/v4/"})
	return ingest.New(f, ingest.Config{Concurrent: concurrent})
}

func TestLoadSequential(t *testing.T) {
	api := &apiServer{}
	s, err := newLoader(t, api, false).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, []string{"launches", "rockets", "launchpads"}, api.requested())

	r, ok := s.Rocket("r1")
	require.True(t, ok)
	assert.Equal(t, "Falcon 9", r.Name)

	lp, ok := s.Launchpad("p1")
	require.True(t, ok)
	assert.Equal(t, "Florida", lp.Region)

	require.Len(t, s.Launches(), 1)
	assert.True(t, s.Launches()[0].Succeeded())
	assert.Equal(t, "Showing 1 launches", query.NewFacade(s).Status())
}

func TestLoadConcurrent(t *testing.T) {
	api := &apiServer{}
	s, err := newLoader(t, api, true).Load(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"launches", "rockets", "launchpads"}, api.requested())
	c := s.Counts()
	assert.Equal(t, 1, c.Launches)
	assert.Equal(t, 1, c.Rockets)
	assert.Equal(t, 1, c.Launchpads)
}

func TestRocketFailureAbortsStartup(t *testing.T) {
	for _, concurrent := range []bool{false, true} {
		api := &apiServer{failing: ingest.EndpointRockets}
		s, err := newLoader(t, api, concurrent).Load(context.Background())

		require.Error(t, err)
		assert.Nil(t, s, "no store may be published on failure")
		assert.True(t, errors.Is(err, ingest.ErrUnavailable))

		var statusErr *fetcher.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	}
}

func TestSequentialFailureStopsLaterFetches(t *testing.T) {
	api := &apiServer{failing: ingest.EndpointRockets}
	_, err := newLoader(t, api, false).Load(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"launches", "rockets"}, api.requested())
}

type stubSource struct {
	err error
}

func (s stubSource) FetchJSON(ctx context.Context, endpoint string, v any) error {
	return s.err
}

func TestLoadWrapsSourceError(t *testing.T) {
	cause := errors.New("connection reset")
	_, err := ingest.New(stubSource{err: cause}, ingest.Config{}).Load(context.Background())

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ingest.ErrUnavailable)
	assert.Contains(t, err.Error(), "launches")
}
