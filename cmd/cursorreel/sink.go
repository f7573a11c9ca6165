package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	vidio "github.com/AlexEidt/Vidio"
)

// frameSink receives rendered frames in order.
type frameSink interface {
	WriteFrame(frame *image.RGBA) error
	Close() error
}

// videoSink encodes frames with ffmpeg through Vidio.
type videoSink struct {
	writer *vidio.VideoWriter
}

func newVideoSink(path string, width, height int, fps float64) (*videoSink, error) {
	options := vidio.Options{
		FPS:     fps,
		Bitrate: 8_000_000,
	}
	writer, err := vidio.NewVideoWriter(path, width, height, &options)
	if err != nil {
		return nil, fmt.Errorf("open video writer %s: %w", path, err)
	}
	return &videoSink{writer: writer}, nil
}

func (s *videoSink) WriteFrame(frame *image.RGBA) error {
	return s.writer.Write(frame.Pix)
}

func (s *videoSink) Close() error {
	s.writer.Close()
	return nil
}

// pngSink writes numbered PNG files into a directory.
type pngSink struct {
	dir string
	n   int
}

func newPNGSink(dir string) (*pngSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	return &pngSink{dir: dir}, nil
}

func (s *pngSink) WriteFrame(frame *image.RGBA) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame%05d.png", s.n))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	s.n++
	return f.Close()
}

func (s *pngSink) Close() error {
	return nil
}
