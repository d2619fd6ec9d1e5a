package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/models"
)

// Function-field fakes for the service seams. Tests assign only the
// functions they expect the handler to call.

type authServiceMock struct {
	register     func(ctx context.Context, username, password string) (models.User, error)
	authenticate func(ctx context.Context, creds models.Credentials) (models.User, error)
	issueToken   func(ctx context.Context, user models.User) (models.Token, error)
	parseToken   func(ctx context.Context, signedToken string) (models.Token, error)
	getUser      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.register(ctx, username, password)
}

func (m *authServiceMock) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.authenticate(ctx, creds)
}

func (m *authServiceMock) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.issueToken(ctx, user)
}

func (m *authServiceMock) ParseToken(ctx context.Context, signedToken string) (models.Token, error) {
	return m.parseToken(ctx, signedToken)
}

func (m *authServiceMock) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUser(ctx, userID)
}

type recordServiceMock struct {
	listAll       func(ctx context.Context) ([]models.Record, error)
	getByPostcode func(ctx context.Context, postcode string) (models.RecordLookup, error)
	create        func(ctx context.Context, record models.Record) error
	update        func(ctx context.Context, update models.RecordUpdate) error
	delete        func(ctx context.Context, postcode string) error
}

func (m *recordServiceMock) ListAll(ctx context.Context) ([]models.Record, error) {
	return m.listAll(ctx)
}

func (m *recordServiceMock) GetByPostcode(ctx context.Context, postcode string) (models.RecordLookup, error) {
	return m.getByPostcode(ctx, postcode)
}

func (m *recordServiceMock) Create(ctx context.Context, record models.Record) error {
	return m.create(ctx, record)
}

func (m *recordServiceMock) Update(ctx context.Context, update models.RecordUpdate) error {
	return m.update(ctx, update)
}

func (m *recordServiceMock) Delete(ctx context.Context, postcode string) error {
	return m.delete(ctx, postcode)
}

// newTestServer mounts a fully wired router on top of the given service
// fakes and returns a live test server.
func newTestServer(t *testing.T, auth service.AuthService, records service.RecordService) *httptest.Server {
	t.Helper()

	handler := NewHandler(&service.Services{AuthService: auth, RecordService: records}, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)
	return srv
}

// allowAllAuth returns an auth fake whose tokens always parse to the given
// user. Used by record mutation tests that are not about authentication.
func allowAllAuth(userID int64) *authServiceMock {
	return &authServiceMock{
		parseToken: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
		getUser: func(_ context.Context, id int64) (models.User, error) {
			return models.User{UserID: id, Username: "frodo"}, nil
		},
	}
}

func doRequest(t *testing.T, method, url, body string, configure ...func(*http.Request)) *http.Response {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
	}
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	for _, c := range configure {
		c(req)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("executing request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
