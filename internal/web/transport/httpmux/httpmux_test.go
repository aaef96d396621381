package httpmux

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestMountStaticServesEmbeddedAssets(t *testing.T) {
	t.Parallel()

	staticFS := fstest.MapFS{
		"site.css": &fstest.MapFile{Data: []byte("body{margin:0}")},
	}
	rootMux := http.NewServeMux()
	MountStatic(rootMux, staticFS)

	req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
	rr := httptest.NewRecorder()
	rootMux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "body{margin:0}" {
		t.Fatalf("body = %q, want asset contents", got)
	}
}

func TestMountStaticIgnoresNilInputs(t *testing.T) {
	t.Parallel()

	MountStatic(nil, fstest.MapFS{})

	rootMux := http.NewServeMux()
	MountStatic(rootMux, nil)

	req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
	rr := httptest.NewRecorder()
	rootMux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMountRootDelegatesToPageHandler(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountRoot(rootMux, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	rootMux.ServeHTTP(rr, req)
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTeapot)
	}
}
