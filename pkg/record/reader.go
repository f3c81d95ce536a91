package record

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// TileEvent is one decoded entry from a bundle's event log
type TileEvent struct {
	Index      int    `json:"index"`
	Count      int    `json:"count"`
	RowStart   int    `json:"row_start"`
	RowEnd     int    `json:"row_end"`
	ElapsedMs  int64  `json:"elapsed_ms"`
	CapturedAt string `json:"captured_at"`
}

// Frame is one decoded canvas snapshot from a bundle's frame stream
type Frame struct {
	Index      uint32
	Width      int
	Height     int
	CapturedNs int64
	Pix        []byte // RGBA, 4 bytes per pixel
}

// ReadManifest loads and validates a bundle's manifest
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	if m.Version != ManifestVersion {
		return Manifest{}, fmt.Errorf("unsupported bundle version %d", m.Version)
	}
	return m, nil
}

// ReadEvents decodes every tile event from a bundle's event log
func ReadEvents(dir string) ([]TileEvent, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, m.EventsPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []TileEvent
	scanner := bufio.NewScanner(snappy.NewReader(file))
	for scanner.Scan() {
		var e TileEvent
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("malformed event at line %d: %v", len(events)+1, err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ReadFrames decodes every canvas snapshot from a bundle's frame stream
func ReadFrames(dir string) ([]Frame, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, m.FramesPath))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var frames []Frame
	header := make([]byte, 4+4+4+8+4)
	for {
		if _, err := io.ReadFull(dec, header); err != nil {
			if err == io.EOF {
				return frames, nil
			}
			return nil, fmt.Errorf("truncated frame header after %d frames: %v", len(frames), err)
		}

		frame := Frame{
			Index:      binary.LittleEndian.Uint32(header[0:4]),
			Width:      int(binary.LittleEndian.Uint32(header[4:8])),
			Height:     int(binary.LittleEndian.Uint32(header[8:12])),
			CapturedNs: int64(binary.LittleEndian.Uint64(header[12:20])),
		}
		size := binary.LittleEndian.Uint32(header[20:24])
		if size != uint32(frame.Width*frame.Height*4) {
			return nil, fmt.Errorf("frame %d payload size %d does not match %dx%d canvas",
				frame.Index, size, frame.Width, frame.Height)
		}

		frame.Pix = make([]byte, size)
		if _, err := io.ReadFull(dec, frame.Pix); err != nil {
			return nil, fmt.Errorf("truncated frame %d payload: %v", frame.Index, err)
		}
		frames = append(frames, frame)
	}
}
