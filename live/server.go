/*
Package live serves a browser preview of a tile set directory. The
server polls the directory, regenerates the atlas whenever the source
images change, and notifies connected browsers over a websocket so the
preview reloads in place.
*/
package live

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
	"github.com/iroiro-gamedev/BaconTileSetter/export"
	"github.com/iroiro-gamedev/BaconTileSetter/preview"
	"github.com/iroiro-gamedev/BaconTileSetter/tileset"
)

const pollInterval = 500 * time.Millisecond

var page = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>bacontile preview</title>
<style>
body { background: #222; color: #ddd; font-family: monospace; text-align: center; }
img { image-rendering: pixelated; margin-top: 1em; max-width: 90%; }
</style>
</head>
<body>
<h1>{{.Dir}} ({{.Scheme}}-tile scheme)</h1>
<img src="/preview.png" id="preview" alt="atlas preview">
<p><a href="/atlas.png">atlas.png</a> | <a href="/tiles.json">tiles.json</a></p>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function () {
	document.getElementById("preview").src = "/preview.png?" + Date.now();
};
</script>
</body>
</html>
`))

// Server regenerates and serves one tile set directory.
type Server struct {
	dir    string
	cfg    autotile.Config
	logger *log.Logger
	hub    *hub

	mu          sync.RWMutex
	fingerprint string
	atlasPNG    []byte
	previewPNG  []byte
	tilesJSON   []byte
}

func New(dir string, cfg autotile.Config, logger *log.Logger) *Server {
	return &Server{
		dir:    dir,
		cfg:    cfg,
		logger: logger,
		hub:    newHub(),
	}
}

// ListenAndServe builds the first atlas, starts the directory poller
// and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if _, err := s.rebuild(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go s.poll(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Printf("serving \"%s\" on %s", s.dir, addr)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/atlas.png", s.serveBlob("image/png", func() []byte { return s.atlasPNG }))
	mux.HandleFunc("/preview.png", s.serveBlob("image/png", func() []byte { return s.previewPNG }))
	mux.HandleFunc("/tiles.json", s.serveBlob("application/json", func() []byte { return s.tilesJSON }))
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Execute(w, struct{ Dir, Scheme string }{s.dir, s.cfg.Scheme.String()})
}

func (s *Server) serveBlob(contentType string, blob func() []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		b := blob()
		s.mu.RUnlock()

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(b)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket accept: %v", err)
		return
	}

	s.hub.add(conn)
	defer s.hub.remove(conn)

	// CloseRead drains the connection; its context ends when the
	// client goes away.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) poll(ctx context.Context) {
	t := time.NewTicker(pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			changed, err := s.rebuild()
			if err != nil {
				s.logger.Printf("rebuild: %v", err)
				continue
			}
			if changed {
				s.hub.broadcast([]byte("reload"))
			}
		}
	}
}

// rebuild regenerates the served artifacts when the sources have
// changed since the last call. A directory with no sources still
// renders, as an empty atlas; read and decode failures are returned.
func (s *Server) rebuild() (bool, error) {
	sources, err := tileset.Load(s.dir)
	if err != nil && !errors.Is(err, tileset.ErrNoSources) {
		return false, err
	}

	fingerprint := autotile.Fingerprint(sources, s.cfg)

	s.mu.RLock()
	same := fingerprint == s.fingerprint
	s.mu.RUnlock()
	if same {
		return false, nil
	}

	atlas := autotile.Generate(sources, s.cfg)

	var atlasPNG, previewPNG bytes.Buffer
	if err := png.Encode(&atlasPNG, atlas.Raster); err != nil {
		return false, err
	}
	if err := png.Encode(&previewPNG, preview.Render(atlas)); err != nil {
		return false, err
	}

	tilesJSON, err := json.MarshalIndent(export.NewManifest(atlas), "", "  ")
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.fingerprint = fingerprint
	s.atlasPNG = atlasPNG.Bytes()
	s.previewPNG = previewPNG.Bytes()
	s.tilesJSON = append(tilesJSON, '\n')
	s.mu.Unlock()

	s.logger.Printf("regenerated %s-tile atlas for \"%s\"", atlas.Scheme, s.dir)

	return true, nil
}
