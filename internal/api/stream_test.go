package api

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/diogo/termchat/internal/models"
)

func TestFrameSplitter(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []string
	}{
		{
			name:   "one frame per line",
			chunks: []string{"data: {\"a\":1}\n\ndata: {\"a\":2}\n\n"},
			want:   []string{`{"a":1}`, `{"a":2}`},
		},
		{
			name:   "frame split across chunks",
			chunks: []string{`data: {"del`, `ta":"x"}` + "\n"},
			want:   []string{`{"delta":"x"}`},
		},
		{
			name:   "delimiter split across chunks",
			chunks: []string{"event: a\nda", "ta: {\"b\":1}\n"},
			want:   []string{`{"b":1}`},
		},
		{
			name:   "event text dropped",
			chunks: []string{"data: {\"c\":1}event: response.done\n"},
			want:   []string{`{"c":1}`},
		},
		{
			name:   "frames back to back",
			chunks: []string{`data: {"d":1}data: {"d":2}` + "\n"},
			want:   []string{`{"d":1}`, `{"d":2}`},
		},
		{
			name:   "trailing frame flushed",
			chunks: []string{`data: {"e":1}`},
			want:   []string{`{"e":1}`},
		},
		{
			name:   "noise without frames",
			chunks: []string{"event: ping\n", ": keepalive\n"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s frameSplitter
			var got []string
			for _, c := range tt.chunks {
				got = append(got, s.Feed([]byte(c))...)
			}
			if f, ok := s.Flush(); ok {
				got = append(got, f)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("frames = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStream(t *testing.T) {
	mock := NewStreamingMockHttpClient(
		"event: response.created\ndata: {\"type\":\"response.created\"}\n\n",
		"event: response.output_text.delta\ndata: {\"type\":\"response.output_text.delta\",\"delta\":\"Hel\"}\n\n",
		"event: response.output_text.delta\ndata: {\"type\":\"response.output_text.delta\",\"delta\":\"lo\"}\n\n",
		"data: [DONE]\n\n",
	)
	ind := &countingIndicator{}
	c := newTestClient(t, mock, WithIndicator(ind))

	var out strings.Builder
	reply, err := c.Stream(context.Background(), sampleTranscript("gpt-4o-mini"), &out)
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}
	if reply != "Hello" {
		t.Errorf("reply = %q, want Hello", reply)
	}
	if out.String() != "Hello" {
		t.Errorf("printed = %q, want Hello", out.String())
	}
	if ind.starts != 1 || ind.stops != 1 {
		t.Errorf("indicator starts=%d stops=%d", ind.starts, ind.stops)
	}

	req := mock.LastRequest()
	if req.URL.String() != models.EndpointOpenAIResponses {
		t.Errorf("URL = %s", req.URL)
	}
	if !gjson.Get(mock.LastBody(), "stream").Bool() {
		t.Error("stream request must set stream=true")
	}
}

func TestStream_HTTPError(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"error":{"message":"rate limited"}}`), 429)
	c := newTestClient(t, mock)

	var out strings.Builder
	_, err := c.Stream(context.Background(), sampleTranscript("gpt-4o"), &out)
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("expected rate limit error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed: %q", out.String())
	}
}
