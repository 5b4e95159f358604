package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/termchat/internal/conversation"
	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

var (
	frameDelim  = []byte("data: ")
	eventMarker = "event:"
)

// frameSplitter cuts a byte stream into "data: " frames. Frames may span chunks.
type frameSplitter struct {
	buf     []byte
	inFrame bool
}

// Feed appends a chunk and returns every frame completed by it
func (s *frameSplitter) Feed(chunk []byte) []string {
	s.buf = append(s.buf, chunk...)

	var frames []string
	for {
		if !s.inFrame {
			idx := bytes.Index(s.buf, frameDelim)
			if idx < 0 {
				// a delimiter may straddle the chunk boundary
				if keep := len(frameDelim) - 1; len(s.buf) > keep {
					s.buf = append(s.buf[:0], s.buf[len(s.buf)-keep:]...)
				}
				return frames
			}
			s.buf = s.buf[idx+len(frameDelim):]
			s.inFrame = true
		}

		end := frameEnd(s.buf)
		if end < 0 {
			return frames
		}
		if frame, ok := cleanFrame(s.buf[:end]); ok {
			frames = append(frames, frame)
		}
		s.buf = s.buf[end:]
		s.inFrame = false
	}
}

// Flush returns the trailing frame left when the stream ended
func (s *frameSplitter) Flush() (string, bool) {
	defer func() {
		s.buf = nil
		s.inFrame = false
	}()
	if !s.inFrame {
		return "", false
	}
	return cleanFrame(s.buf)
}

func frameEnd(buf []byte) int {
	end := bytes.IndexByte(buf, '\n')
	if next := bytes.Index(buf, frameDelim); next >= 0 && (end < 0 || next < end) {
		end = next
	}
	return end
}

func cleanFrame(raw []byte) (string, bool) {
	frame := string(raw)
	if i := strings.Index(frame, eventMarker); i >= 0 {
		frame = frame[:i]
	}
	frame = strings.TrimSpace(frame)
	return frame, frame != ""
}

// Stream sends a streaming responses request, writes each delta to w as it
// arrives and returns the accumulated reply. The indicator stops once
// response headers are in.
func (c *Client) Stream(ctx context.Context, t *conversation.Transcript, w io.Writer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	shape := models.ShapeDelta
	req, err := c.newRequest(ctx, http.MethodPost, shape.Endpoint(), shape.Provider(), ResponsesBody(t, true))
	if err != nil {
		return "", err
	}

	c.logger.Debug("sending stream request", "model", t.Model, "messages", t.Len())

	c.indicator.Start()
	resp, err := c.do(ctx, req, "stream")
	c.indicator.Stop()
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var (
		reply    strings.Builder
		splitter frameSplitter
	)
	emit := func(frame string) error {
		delta, ok := ParseDelta(frame)
		if !ok {
			c.logger.Debug("skipping stream frame", "frame", frame)
			return nil
		}
		reply.WriteString(delta)
		if _, err := io.WriteString(w, delta); err != nil {
			return fmt.Errorf("failed to write stream output: %w", err)
		}
		return nil
	}

	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, frame := range splitter.Feed(buf[:n]) {
				if err := emit(frame); err != nil {
					return reply.String(), err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return reply.String(), apierrors.NewTimeoutError(fmt.Sprintf("stream timed out after %s", c.timeout))
			}
			return reply.String(), apierrors.NewNetworkErrorWithEndpoint("stream", shape.Endpoint(), readErr)
		}
	}

	if frame, ok := splitter.Flush(); ok {
		if err := emit(frame); err != nil {
			return reply.String(), err
		}
	}

	return reply.String(), nil
}
