package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/reef-world/finsync/pkg/service/notify"
)

func TestHeartbeat_Ping(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer srv.Close()

	hb := notify.NewHeartbeat(srv.URL)
	gt.NoError(t, hb.Ping(context.Background()))
	gt.Value(t, gotMethod).Equal(http.MethodHead)
}

func TestHeartbeat_PingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	hb := notify.NewHeartbeat(srv.URL)
	gt.Error(t, hb.Ping(context.Background()))
}
