// Package record persists render sessions to disk: a compressed event log
// of tile completions alongside a compressed stream of canvas snapshots,
// tied together by a manifest. Bundles are self-describing so external
// tooling can replay how an image converged.
package record

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/glintrt/glint/pkg/canvas"
	"github.com/glintrt/glint/pkg/renderer"
)

var sessionNameCleaner = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ManifestVersion is bumped whenever the bundle layout changes
const ManifestVersion = 1

// Manifest describes the bundle layout so tooling can locate the streams
type Manifest struct {
	Version    int    `json:"version"`
	Scene      string `json:"scene"`
	CreatedAt  string `json:"created_at"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	EventsPath string `json:"events_path"`
	FramesPath string `json:"frames_path"`
}

// Session streams one render's artifacts into a bundle directory. Tile
// events go to a snappy-framed JSONL log; canvas snapshots go to a
// zstd-compressed binary stream. Safe for use from the render goroutine
// and a snapshot goroutine concurrently.
type Session struct {
	mu          sync.Mutex
	dir         string
	now         func() time.Time
	eventFile   *os.File
	eventStream *snappy.Writer
	frameFile   *os.File
	frameStream *zstd.Encoder
	frameCount  uint32
}

// NewSession creates the bundle directory under root, opens the compressed
// sinks and writes the manifest. The clock may be nil; time.Now is used.
func NewSession(root, sceneName string, width, height int, clock func() time.Time) (*Session, Manifest, error) {
	if root == "" {
		return nil, Manifest{}, fmt.Errorf("record root must be provided")
	}
	if clock == nil {
		clock = time.Now
	}

	cleaned := sessionNameCleaner.ReplaceAllString(sceneName, "")
	if cleaned == "" {
		cleaned = "scene"
	}
	created := clock().UTC()
	folder := fmt.Sprintf("%s-%s", cleaned, created.Format("20060102T150405Z"))
	dir := filepath.Join(root, folder)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, Manifest{}, err
	}

	eventFile, err := os.Create(filepath.Join(dir, "events.jsonl.sz"))
	if err != nil {
		return nil, Manifest{}, err
	}
	eventStream := snappy.NewBufferedWriter(eventFile)

	frameFile, err := os.Create(filepath.Join(dir, "frames.bin.zst"))
	if err != nil {
		eventStream.Close()
		eventFile.Close()
		return nil, Manifest{}, err
	}
	frameStream, err := zstd.NewWriter(frameFile)
	if err != nil {
		eventStream.Close()
		eventFile.Close()
		frameFile.Close()
		return nil, Manifest{}, err
	}

	manifest := Manifest{
		Version:    ManifestVersion,
		Scene:      sceneName,
		CreatedAt:  created.Format(time.RFC3339Nano),
		Width:      width,
		Height:     height,
		EventsPath: "events.jsonl.sz",
		FramesPath: "frames.bin.zst",
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err == nil {
		err = os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644)
	}
	if err != nil {
		frameStream.Close()
		frameFile.Close()
		eventStream.Close()
		eventFile.Close()
		return nil, Manifest{}, err
	}

	return &Session{
		dir:         dir,
		now:         clock,
		eventFile:   eventFile,
		eventStream: eventStream,
		frameFile:   frameFile,
		frameStream: frameStream,
	}, manifest, nil
}

// Directory returns the bundle directory on disk
func (s *Session) Directory() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// RecordTile appends one tile-completion event to the event log. The
// signature matches renderer.ProgressFunc so a session can be passed
// directly to RenderProgressive.
func (s *Session) RecordTile(res renderer.TileResult) error {
	if s == nil {
		return fmt.Errorf("record session not initialized")
	}
	captured := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	record := struct {
		Index      int    `json:"index"`
		Count      int    `json:"count"`
		RowStart   int    `json:"row_start"`
		RowEnd     int    `json:"row_end"`
		ElapsedMs  int64  `json:"elapsed_ms"`
		CapturedAt string `json:"captured_at"`
	}{
		Index:      res.Index,
		Count:      res.Count,
		RowStart:   res.Bounds.Min.Y,
		RowEnd:     res.Bounds.Max.Y,
		ElapsedMs:  res.ElapsedMs,
		CapturedAt: captured.Format(time.RFC3339Nano),
	}
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := s.eventStream.Write(line); err != nil {
		return err
	}
	if _, err := s.eventStream.Write([]byte("\n")); err != nil {
		return err
	}
	return s.eventStream.Flush()
}

// RecordFrame appends a snapshot of the canvas to the frame stream as a
// length-prefixed RGBA blob. Snapshots taken mid-render show partially
// traced tiles, which is the point.
func (s *Session) RecordFrame(c *canvas.Canvas) error {
	if s == nil {
		return fmt.Errorf("record session not initialized")
	}
	pix := c.ToImage().Pix
	captured := s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	header := make([]byte, 4+4+4+8+4)
	binary.LittleEndian.PutUint32(header[0:4], s.frameCount)
	binary.LittleEndian.PutUint32(header[4:8], uint32(c.Width))
	binary.LittleEndian.PutUint32(header[8:12], uint32(c.Height))
	binary.LittleEndian.PutUint64(header[12:20], uint64(captured.UnixNano()))
	binary.LittleEndian.PutUint32(header[20:24], uint32(len(pix)))

	if _, err := s.frameStream.Write(header); err != nil {
		return err
	}
	if _, err := s.frameStream.Write(pix); err != nil {
		return err
	}
	s.frameCount++
	return nil
}

// FrameCount returns the number of snapshots written so far
func (s *Session) FrameCount() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.frameCount)
}

// Close flushes both streams and releases the file handles, surfacing the
// first failure
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if err := s.eventStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.eventFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.frameStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.frameFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
