// Package server exposes the tracer over HTTP: scene discovery endpoints
// plus a websocket that streams tile-by-tile render progress to the
// browser.
package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"

	"github.com/glintrt/glint/pkg/renderer"
	"github.com/glintrt/glint/pkg/scene"
)

// Server handles web requests for the ray tracer
type Server struct {
	port      int
	staticDir string
	upgrader  websocket.Upgrader
}

// NewServer creates a web server serving static assets from staticDir
func NewServer(port int, staticDir string) *Server {
	return &Server{
		port:      port,
		staticDir: staticDir,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			// Rendering is a same-origin tool; the browser UI is served
			// from this process.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RenderRequest is the first message a websocket client sends
type RenderRequest struct {
	Scene    string `json:"scene"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxDepth int    `json:"maxDepth"`
	Workers  int    `json:"workers"`
}

// ProgressUpdate reports one completed tile to the client. Each update is
// followed by a binary websocket message carrying the snappy-compressed
// canvas rows the tile covers.
type ProgressUpdate struct {
	Type       string `json:"type"` // "progress"
	TileIndex  int    `json:"tileIndex"`
	TileCount  int    `json:"tileCount"`
	RowStart   int    `json:"rowStart"`
	RowEnd     int    `json:"rowEnd"`
	ElapsedMs  int64  `json:"elapsedMs"`
	IsComplete bool   `json:"isComplete"`
}

// CompleteUpdate carries the final image as base64 PNG
type CompleteUpdate struct {
	Type        string `json:"type"` // "complete"
	ImageData   string `json:"imageData"`
	TotalPixels int    `json:"totalPixels"`
	TotalTiles  int    `json:"totalTiles"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// ErrorUpdate reports a failure to the client before the socket closes
type ErrorUpdate struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// Start registers the handlers and blocks serving HTTP
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/ws/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the registered scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.List()})
}

// handleRender upgrades to a websocket, reads one render request and
// streams progress until the render finishes or the client goes away
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.sendError(conn, fmt.Sprintf("invalid render request: %v", err))
		return
	}
	normalizeRequest(&req)

	sc, err := scene.Build(req.Scene, req.Width, req.Height)
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reads only serve to detect the client hanging up mid-render
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	opts := renderer.DefaultOptions()
	opts.MaxDepth = req.MaxDepth
	opts.NumWorkers = req.Workers
	rend := renderer.New(sc.Camera, sc.World, opts, renderer.NewSilentLogger())

	start := time.Now()
	img, stats, err := rend.RenderProgressive(ctx, func(res renderer.TileResult) error {
		update := ProgressUpdate{
			Type:      "progress",
			TileIndex: res.Index,
			TileCount: res.Count,
			RowStart:  res.Bounds.Min.Y,
			RowEnd:    res.Bounds.Max.Y,
			ElapsedMs: res.ElapsedMs,
		}
		if err := conn.WriteJSON(update); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.sendError(conn, fmt.Sprintf("render failed: %v", err))
		return
	}

	// Stream the finished canvas as a compressed binary frame, then the
	// completion summary with an inline PNG for clients that want it.
	if err := s.sendCanvasFrame(conn, img.Width, img.Height, img.ToImage().Pix); err != nil {
		log.Printf("failed to send canvas frame: %v", err)
		return
	}

	var buf bytes.Buffer
	if err := img.WritePNG(&buf); err != nil {
		s.sendError(conn, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	complete := CompleteUpdate{
		Type:        "complete",
		ImageData:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		TotalPixels: stats.TotalPixels,
		TotalTiles:  stats.TotalTiles,
		ElapsedMs:   time.Since(start).Milliseconds(),
	}
	if err := conn.WriteJSON(complete); err != nil {
		log.Printf("failed to send completion: %v", err)
	}
}

// sendCanvasFrame writes a binary message holding the snappy-compressed
// RGBA canvas, prefixed with the uncompressed dimensions
func (s *Server) sendCanvasFrame(conn *websocket.Conn, width, height int, pix []byte) error {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(width))
	binary.LittleEndian.PutUint32(header[4:8], uint32(height))
	payload := append(header, snappy.Encode(nil, pix)...)
	return conn.WriteMessage(websocket.BinaryMessage, payload)
}

// sendError reports a failure over the socket, ignoring write errors since
// the connection is about to close anyway
func (s *Server) sendError(conn *websocket.Conn, message string) {
	_ = conn.WriteJSON(ErrorUpdate{Type: "error", Message: message})
}

// normalizeRequest applies defaults and clamps sizes to sane bounds
func normalizeRequest(req *RenderRequest) {
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Width <= 0 {
		req.Width = 400
	}
	if req.Height <= 0 {
		req.Height = 300
	}
	if req.Width > 2000 {
		req.Width = 2000
	}
	if req.Height > 2000 {
		req.Height = 2000
	}
	if req.MaxDepth <= 0 {
		req.MaxDepth = 5
	}
}
