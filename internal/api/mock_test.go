package api

import (
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody is a ReadCloser that hands out its data in fixed chunks
type MockResponseBody struct {
	chunks [][]byte
	pos    int
	closed bool
}

// NewMockResponseBody creates a body that returns data in a single read
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{chunks: [][]byte{data}}
}

// NewChunkedResponseBody creates a body that returns one chunk per Read
func NewChunkedResponseBody(chunks ...string) *MockResponseBody {
	b := &MockResponseBody{}
	for _, c := range chunks {
		b.chunks = append(b.chunks, []byte(c))
	}
	return b
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	for m.pos < len(m.chunks) && len(m.chunks[m.pos]) == 0 {
		m.pos++
	}
	if m.pos >= len(m.chunks) {
		return 0, io.EOF
	}
	n = copy(p, m.chunks[m.pos])
	m.chunks[m.pos] = m.chunks[m.pos][n:]
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	m.closed = true
	return nil
}

// MockHttpClient records requests and returns a canned response
type MockHttpClient struct {
	Response *fhttp.Response
	Err      error
	Requests []*fhttp.Request
	Bodies   []string
}

// Do implements the Doer interface
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.Requests = append(m.Requests, req)
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.Bodies = append(m.Bodies, string(data))
	} else {
		m.Bodies = append(m.Bodies, "")
	}
	return m.Response, m.Err
}

// LastRequest returns the most recent request
func (m *MockHttpClient) LastRequest() *fhttp.Request {
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// LastBody returns the most recent request body
func (m *MockHttpClient) LastBody() string {
	if len(m.Bodies) == 0 {
		return ""
	}
	return m.Bodies[len(m.Bodies)-1]
}

// NewMockHttpClient creates a new MockHttpClient with a response
func NewMockHttpClient(body []byte, statusCode int) *MockHttpClient {
	return &MockHttpClient{
		Response: &fhttp.Response{
			StatusCode: statusCode,
			Body:       NewMockResponseBody(body),
			Header:     make(fhttp.Header),
		},
	}
}

// NewStreamingMockHttpClient creates a MockHttpClient whose body arrives in chunks
func NewStreamingMockHttpClient(chunks ...string) *MockHttpClient {
	return &MockHttpClient{
		Response: &fhttp.Response{
			StatusCode: 200,
			Body:       NewChunkedResponseBody(chunks...),
			Header:     make(fhttp.Header),
		},
	}
}

// NewMockHttpClientWithError creates a new MockHttpClient that returns an error
func NewMockHttpClientWithError(err error) *MockHttpClient {
	return &MockHttpClient{Err: err}
}

// countingIndicator records Start/Stop calls
type countingIndicator struct {
	starts, stops int
}

func (c *countingIndicator) Start() { c.starts++ }
func (c *countingIndicator) Stop()  { c.stops++ }

func newTestClient(t interface{ Fatalf(string, ...any) }, doer Doer, opts ...ClientOption) *Client {
	opts = append([]ClientOption{
		WithHTTPClient(doer),
		WithOpenAIKey("sk-openai"),
		WithAnthropicKey("sk-ant"),
	}, opts...)
	c, err := NewClient(opts...)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}
