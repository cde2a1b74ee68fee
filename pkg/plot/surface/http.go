package surface

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
	"github.com/ZhangCHW/fast-methods/pkg/observability"
)

// Frame write/read deadlines for websocket clients.
const wsWriteWait = 10 * time.Second

// frame is one displayed image kept in memory for the browser to fetch.
// Frames are never persisted; restarting the server forgets them.
type frame struct {
	ID    string
	Title string
	PNG   []byte
	Added time.Time
}

// ServerOption configures a preview server.
type ServerOption func(*Server)

// WithServerScale sets the integer upscale factor for served frames.
func WithServerScale(s int) ServerOption {
	return func(srv *Server) {
		if s > 0 {
			srv.scale = s
		}
	}
}

// WithMaxFrames bounds how many frames are retained; older frames are
// evicted first. The default is 64.
func WithMaxFrames(n int) ServerOption {
	return func(srv *Server) {
		if n > 0 {
			srv.maxFrames = n
		}
	}
}

// Server is a Surface that serves frames to browsers over HTTP. Every Show
// stores the frame and notifies connected websocket clients, so an open
// preview page updates live while a solver run plots its progress.
type Server struct {
	addr      string
	scale     int
	maxFrames int

	mu     sync.RWMutex
	frames []*frame

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
}

// NewServer creates a preview server that will listen on addr
// (e.g. "localhost:8080").
func NewServer(addr string, opts ...ServerOption) *Server {
	s := &Server{
		addr:      addr,
		scale:     8,
		maxFrames: 64,
		clients:   make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show stores the frame and notifies live clients. It implements
// plot.Surface and returns as soon as the frame is queued; it never blocks
// on slow browsers.
func (s *Server) Show(img image.Image, title string) error {
	ctx := context.Background()
	if err := errors.ValidateTitle(title); err != nil {
		observability.Surface().OnShowError(ctx, "http", title, err)
		return err
	}

	b := img.Bounds()
	scaled := imaging.Resize(img, b.Dx()*s.scale, b.Dy()*s.scale, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		observability.Surface().OnShowError(ctx, "http", title, err)
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding frame")
	}

	f := &frame{
		ID:    uuid.NewString(),
		Title: title,
		PNG:   buf.Bytes(),
		Added: time.Now(),
	}

	s.mu.Lock()
	s.frames = append(s.frames, f)
	if len(s.frames) > s.maxFrames {
		s.frames = s.frames[len(s.frames)-s.maxFrames:]
	}
	s.mu.Unlock()

	s.broadcast(f)
	observability.Surface().OnShow(ctx, "http", title, b.Dx(), b.Dy())
	return nil
}

// Router returns the HTTP routes: the index page, per-frame PNGs, and the
// websocket endpoint.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/frames/{id}.png", s.handleFrame)
	r.Get("/live", s.handleLive)
	return r
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.closeClients()
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeInternal, err, "preview server on %s", s.addr)
		}
		return nil
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	// Newest first.
	frames := make([]*frame, 0, len(s.frames))
	for i := len(s.frames) - 1; i >= 0; i-- {
		frames = append(frames, s.frames[i])
	}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, frames); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.RLock()
	var found *frame
	for _, f := range s.frames {
		if f.ID == id {
			found = f
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=3600")
	_, _ = w.Write(found.PNG)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()

	// Drain reads so close frames are processed; drop the client on error.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast notifies every live client that a frame arrived. Clients that
// fail to accept the write are dropped.
func (s *Server) broadcast(f *frame) {
	msg, err := json.Marshal(map[string]string{"id": f.ID, "title": f.Title})
	if err != nil {
		return
	}

	s.clientsMu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.clientsMu.Unlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.dropClient(c)
		}
	}
}

func (s *Server) dropClient(c *websocket.Conn) {
	s.clientsMu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		_ = c.Close()
	}
	s.clientsMu.Unlock()
}

func (s *Server) closeClients() {
	s.clientsMu.Lock()
	for c := range s.clients {
		_ = c.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.clientsMu.Unlock()
}

// frameCount reports how many frames are retained (for tests).
func (s *Server) frameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>fast-methods preview</title>
<style>
  body { font-family: sans-serif; background: #1e1e1e; color: #ddd; }
  figure { display: inline-block; margin: 12px; }
  figcaption { text-align: center; padding: 4px; font-size: 14px; }
  img { image-rendering: pixelated; border: 1px solid #444; }
</style>
</head>
<body>
<h1>fast-methods preview</h1>
{{if not .}}<p>No frames yet. Run a plot command and refresh.</p>{{end}}
{{range .}}
<figure>
  <img src="/frames/{{.ID}}.png" alt="{{.Title}}">
  <figcaption>{{.Title}}</figcaption>
</figure>
{{end}}
<script>
  const ws = new WebSocket("ws://" + location.host + "/live");
  ws.onmessage = () => location.reload();
</script>
</body>
</html>
`))
