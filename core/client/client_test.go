package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servo-controller/core/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("DecodesState", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/status", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok","position":120,"uptime":4500,"wifi_strength":-56}`))
		}))
		defer srv.Close()

		cl := client.New(srv.URL, time.Second)
		st, err := cl.Status(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "ok", st.Status)
		assert.Equal(t, 120, st.Position)
		assert.Equal(t, int64(4500), st.Uptime)
		assert.Equal(t, -56, st.WifiStrength)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		cl := client.New(srv.URL, time.Second)
		_, err := cl.Status(context.Background())
		assert.ErrorContains(t, err, "500")
	})

	t.Run("ControllerUnreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // Shut down before the request so the dial fails.

		cl := client.New(srv.URL, 100*time.Millisecond)
		_, err := cl.Status(context.Background())
		assert.Error(t, err)
	})
}

func TestSetPosition(t *testing.T) {
	t.Run("SendsCommand", func(t *testing.T) {
		var gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/servo", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			gotBody = string(body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok","position":135}`))
		}))
		defer srv.Close()

		cl := client.New(srv.URL, time.Second)
		applied, err := cl.SetPosition(context.Background(), 135)
		require.NoError(t, err)

		assert.Equal(t, 135, applied)
		assert.JSONEq(t, `{"position":135}`, gotBody)
	})

	t.Run("ClampsBeforeSending", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cmd struct {
				Position int `json:"position"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
			assert.Equal(t, 180, cmd.Position)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok","position":180}`))
		}))
		defer srv.Close()

		cl := client.New(srv.URL, time.Second)
		applied, err := cl.SetPosition(context.Background(), 270)
		require.NoError(t, err)
		assert.Equal(t, 180, applied)
	})

	t.Run("RejectionCarriesBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Position must be 0-180"))
		}))
		defer srv.Close()

		cl := client.New(srv.URL, time.Second)
		_, err := cl.SetPosition(context.Background(), 90)
		assert.ErrorContains(t, err, "Position must be 0-180")
	})
}
