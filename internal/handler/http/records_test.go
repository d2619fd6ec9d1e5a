package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanhoyal/go-carbon-api/internal/adapter"
	"github.com/seanhoyal/go-carbon-api/internal/store"
	"github.com/seanhoyal/go-carbon-api/models"
)

var testRecord = models.Record{
	RegionID: 13,
	Name:     "London",
	Postcode: "SW1A1AA",
	Forecast: "212",
	Index:    "moderate",
	Date:     "2020-01-01",
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestListRecords(t *testing.T) {
	t.Run("records present", func(t *testing.T) {
		records := &recordServiceMock{
			listAll: func(context.Context) ([]models.Record, error) {
				return []models.Record{testRecord}, nil
			},
		}
		srv := newTestServer(t, &authServiceMock{}, records)

		resp := doRequest(t, http.MethodGet, srv.URL+"/postcodes", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []models.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, testRecord, body[0])
	})

	t.Run("no records is an empty array", func(t *testing.T) {
		records := &recordServiceMock{
			listAll: func(context.Context) ([]models.Record, error) { return nil, nil },
		}
		srv := newTestServer(t, &authServiceMock{}, records)

		resp := doRequest(t, http.MethodGet, srv.URL+"/postcodes", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []models.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotNil(t, body)
		assert.Empty(t, body)
	})
}

func TestGetRecord(t *testing.T) {
	t.Run("stored record", func(t *testing.T) {
		records := &recordServiceMock{
			getByPostcode: func(_ context.Context, postcode string) (models.RecordLookup, error) {
				require.Equal(t, "SW1A1AA", postcode)
				record := testRecord
				return models.RecordLookup{Record: &record}, nil
			},
		}
		srv := newTestServer(t, &authServiceMock{}, records)

		resp := doRequest(t, http.MethodGet, srv.URL+"/SW1A1AA", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, testRecord, body)
	})

	t.Run("regional fallback", func(t *testing.T) {
		records := &recordServiceMock{
			getByPostcode: func(context.Context, string) (models.RecordLookup, error) {
				return models.RecordLookup{Regional: &models.RegionalPayload{
					Data: []models.RegionalData{{RegionID: 13, ShortName: "London"}},
				}}, nil
			},
		}
		srv := newTestServer(t, &authServiceMock{}, records)

		resp := doRequest(t, http.MethodGet, srv.URL+"/SW1A1AA", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.RegionalPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "London", body.Data[0].ShortName)
	})

	t.Run("failure statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			serviceErr error
			wantStatus int
		}{
			{"unknown postcode", adapter.ErrPostcodeNotRecognized, http.StatusNotFound},
			{"upstream outage", adapter.ErrLookupUnavailable, http.StatusBadGateway},
			{"upstream timeout", adapter.ErrLookupTimeout, http.StatusGatewayTimeout},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				records := &recordServiceMock{
					getByPostcode: func(context.Context, string) (models.RecordLookup, error) {
						return models.RecordLookup{}, tt.serviceErr
					},
				}
				srv := newTestServer(t, &authServiceMock{}, records)

				resp := doRequest(t, http.MethodGet, srv.URL+"/ZZ99ZZ", "")

				require.Equal(t, tt.wantStatus, resp.StatusCode)

				var body models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.serviceErr.Error(), body.Error)
			})
		}
	})
}

func TestCreateRecord(t *testing.T) {
	var created models.Record
	records := &recordServiceMock{
		create: func(_ context.Context, record models.Record) error {
			created = record
			return nil
		},
	}
	srv := newTestServer(t, allowAllAuth(7), records)

	resp := doRequest(t, http.MethodPost, srv.URL+"/postcode",
		`{"region_id":13,"name":"London","postcode":"sw1a 1aa","forecast":"212","index":"moderate","date":"2020-01-01"}`,
		withBearer("valid-token"))

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "sw1a 1aa", created.Postcode, "handler passes the record through untouched")

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "created: /record/SW1A1AA", body.Message)
}

func TestCreateRecord_Conflict(t *testing.T) {
	records := &recordServiceMock{
		create: func(context.Context, models.Record) error {
			return store.ErrPostcodeAlreadyExists
		},
	}
	srv := newTestServer(t, allowAllAuth(7), records)

	resp := doRequest(t, http.MethodPost, srv.URL+"/postcode",
		`{"postcode":"SW1A1AA","name":"London","forecast":"212","index":"moderate","date":"2020-01-01"}`,
		withBearer("valid-token"))

	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateRecord(t *testing.T) {
	var applied models.RecordUpdate
	records := &recordServiceMock{
		update: func(_ context.Context, update models.RecordUpdate) error {
			applied = update
			return nil
		},
	}
	srv := newTestServer(t, allowAllAuth(7), records)

	resp := doRequest(t, http.MethodPut, srv.URL+"/postcode",
		`{"postcode":"SW1A1AA","forecast":"305","index":"high","date":"2020-01-02"}`,
		withBearer("valid-token"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "305", applied.Forecast)

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "updated: /record/SW1A1AA", body.Message)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	records := &recordServiceMock{
		update: func(context.Context, models.RecordUpdate) error {
			return store.ErrRecordNotFound
		},
	}
	srv := newTestServer(t, allowAllAuth(7), records)

	resp := doRequest(t, http.MethodPut, srv.URL+"/postcode",
		`{"postcode":"SW1A1AA","forecast":"305","index":"high","date":"2020-01-02"}`,
		withBearer("valid-token"))

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteRecord(t *testing.T) {
	var deleted string
	records := &recordServiceMock{
		delete: func(_ context.Context, postcode string) error {
			deleted = postcode
			return nil
		},
	}
	srv := newTestServer(t, allowAllAuth(7), records)

	resp := doRequest(t, http.MethodDelete, srv.URL+"/postcode",
		`{"postcode":"SW1A1AA"}`, withBearer("valid-token"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SW1A1AA", deleted)

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "deleted: /record/SW1A1AA", body.Message)
}

func TestMutations_RequireAuthorization(t *testing.T) {
	// The record service must never be reached without a token, so no mock
	// functions are assigned: a call would panic and fail the test.
	srv := newTestServer(t, &authServiceMock{}, &recordServiceMock{})

	tests := []struct {
		method string
	}{
		{http.MethodPost},
		{http.MethodPut},
		{http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp := doRequest(t, tt.method, srv.URL+"/postcode", `{"postcode":"SW1A1AA"}`)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
