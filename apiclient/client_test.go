package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-blog-client/apiclient"
	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	Name string `json:"name"`
}

func TestClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/echo":
			var in echoBody
			_ = json.NewDecoder(r.Body).Decode(&in)
			in.Name += ":" + r.Header.Get("Content-Type")
			_ = json.NewEncoder(w).Encode(in)
		case "/api/query":
			_ = json.NewEncoder(w).Encode(echoBody{Name: r.URL.Query().Get("page") + ":" + r.Header.Get("Authorization")})
		case "/api/error":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad thing"}`))
		case "/api/msg":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"msg":"jwt expired"}`))
		case "/api/plain":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`oops`))
		case "/api/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/api/denied":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"msg":"Token has expired"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL+"/api/", srv.Client())
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		var out echoBody
		require.NoError(t, client.Do(ctx, http.MethodPost, "/echo", echoBody{Name: "ann"}, &out))
		require.Equal(t, "ann:application/json", out.Name)
	})

	t.Run("query and bearer", func(t *testing.T) {
		var out echoBody
		err := client.Do(ctx, http.MethodGet, "query", nil, &out,
			apiclient.WithQuery(url.Values{"page": {"2"}}),
			apiclient.WithBearer("R1"))
		require.NoError(t, err)
		require.Equal(t, "2:Bearer R1", out.Name)
	})

	t.Run("error field", func(t *testing.T) {
		err := client.Do(ctx, http.MethodGet, "/error", nil, nil)
		require.Equal(t, http.StatusBadRequest, apiclient.StatusCode(err))
		require.Equal(t, "bad thing", apiclient.Message(err, "fallback"))
	})

	t.Run("msg field", func(t *testing.T) {
		err := client.Do(ctx, http.MethodGet, "/msg", nil, nil)
		require.Equal(t, "jwt expired", apiclient.Message(err, "fallback"))
	})

	t.Run("no reason uses fallback", func(t *testing.T) {
		err := client.Do(ctx, http.MethodGet, "/plain", nil, nil)
		require.True(t, apiclient.IsStatus(err, http.StatusInternalServerError))
		require.Equal(t, "fallback", apiclient.Message(err, "fallback"))
		require.Contains(t, err.Error(), "Internal Server Error")
	})

	t.Run("sentinels", func(t *testing.T) {
		err := client.Do(ctx, http.MethodGet, "/denied", nil, nil)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
		require.NotErrorIs(t, err, apperrors.ErrNotFound)

		err = client.Do(ctx, http.MethodGet, "/missing", nil, nil)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("no content", func(t *testing.T) {
		var out echoBody
		require.NoError(t, client.Do(ctx, http.MethodDelete, "/empty", nil, &out))
	})
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	err := apiclient.New(base, nil).Do(context.Background(), http.MethodGet, "/x", nil, nil)
	var netErr *apiclient.NetworkError
	require.True(t, errors.As(err, &netErr))
	require.Zero(t, apiclient.StatusCode(err))
	require.Equal(t, "Login failed", apiclient.Message(err, "Login failed"))
}

func TestMessagePrecedence(t *testing.T) {
	for name, tc := range map[string]struct {
		body string
		want string
	}{
		"error wins":   {`{"error":"e","message":"m","msg":"x"}`, "e"},
		"message next": {`{"message":"m","msg":"x"}`, "m"},
		"msg last":     {`{"msg":"x"}`, "x"},
		"none":         {`{}`, "fallback"},
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := apiclient.New(srv.URL, srv.Client()).Do(context.Background(), http.MethodGet, "/", nil, nil)
			require.Equal(t, tc.want, apiclient.Message(err, "fallback"))
		})
	}
}
