package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atinyakov/FleetDesk/internal/client"
	"github.com/atinyakov/FleetDesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTripFilter(t *testing.T) {
	f, err := parseTripFilter([]string{"company=Acme", "status=paid", "source=pu"})
	require.NoError(t, err)
	assert.Equal(t, models.TripFilter{CompanyName: "Acme", Status: models.TripPaid, Source: "pu"}, f)

	_, err = parseTripFilter([]string{"colour=red"})
	assert.Error(t, err)

	_, err = parseTripFilter([]string{"paid"})
	assert.Error(t, err)
}

func TestRepl(t *testing.T) {
	var gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/trips/t-1/status":
			gotStatus = r.Method
			_, _ = w.Write([]byte(`{"id":"t-1","status":"paid"}`))
		case "/api/company":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"No token, authorization denied"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := client.New(srv.URL, "")
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader("help\npay\npay t-1\ncompanies\nbogus\nexit\nme\n")
	repl(context.Background(), c, in, &out)

	text := out.String()
	assert.Contains(t, text, "Available commands")
	assert.Contains(t, text, "Usage: pay <trip-id>")
	assert.Contains(t, text, "Trip t-1 is now paid")
	assert.Equal(t, http.MethodPost, gotStatus)
	assert.Contains(t, text, "No token, authorization denied")
	assert.Contains(t, text, "Unknown command")
	assert.True(t, strings.HasSuffix(text, "Bye\n"))
}
