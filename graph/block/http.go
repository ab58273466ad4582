package block

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/flowlang/flowgraph-go/graph"
)

// HTTPBlock performs an HTTP request, letting graphs reach external
// services. It is impure and nondeterministic, and declares the "net"
// engine capability.
//
// Inputs:
//   - url: target URL (required, String)
//   - method: "GET" or "POST", defaults to "GET" (String)
//   - body: request body for POST (String)
//   - headers: request headers (Object of String values)
//
// Outputs:
//   - status: HTTP status code (Number)
//   - body: response body (String)
//   - headers: response headers (Object)
type HTTPBlock struct {
	client *http.Client
}

// NewHTTPBlock creates an HTTP block with a default client. Timeouts come
// from the execution context passed to Execute.
func NewHTTPBlock() *HTTPBlock {
	return &HTTPBlock{client: &http.Client{}}
}

// Spec implements Block.
func (h *HTTPBlock) Spec() Spec {
	return Spec{
		Namespace:   "net",
		Name:        "http_request",
		Title:       "HTTP request",
		Description: "Performs a GET or POST request and returns status, headers, and body.",
		Tags:        []string{"net", "builtin"},
		Purity:      Impure,
		Determinism: Nondeterministic,
		Inputs: []PortDef{
			{ID: "url", Type: graph.TypeString, Required: true},
			{ID: "method", Type: graph.TypeString},
			{ID: "body", Type: graph.TypeString},
			{ID: "headers", Type: graph.TypeObject},
		},
		Outputs: []PortDef{
			{ID: "status", Type: graph.TypeNumber},
			{ID: "body", Type: graph.TypeString},
			{ID: "headers", Type: graph.TypeObject},
		},
		Engine: EngineReq{Capabilities: []string{"net"}},
	}
}

// Execute implements Block.
func (h *HTTPBlock) Execute(ctx context.Context, in Inputs, ec *ExecContext) (Outputs, error) {
	id := h.Spec().ID()

	urlVal, err := requireKind(id, in, "url", graph.ValueString)
	if err != nil {
		return Outputs{}, err
	}

	method := http.MethodGet
	if m, ok := in.Get("method"); ok && m.Kind == graph.ValueString && m.Str != "" {
		method = strings.ToUpper(m.Str)
	}
	if method != http.MethodGet && method != http.MethodPost {
		return Outputs{}, execErr(id, "unsupported method %q (supported: GET, POST)", method)
	}

	var body io.Reader
	if b, ok := in.Get("body"); ok && b.Kind == graph.ValueString && b.Str != "" {
		body = bytes.NewBufferString(b.Str)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlVal.Str, body)
	if err != nil {
		return Outputs{}, &ExecutionError{BlockID: id, Message: "building request", Cause: err}
	}
	if hdr, ok := in.Get("headers"); ok && hdr.Kind == graph.ValueObject {
		for k, v := range hdr.Obj {
			if v.Kind == graph.ValueString {
				req.Header.Set(k, v.Str)
			}
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Outputs{}, &ExecutionError{BlockID: id, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outputs{}, &ExecutionError{BlockID: id, Message: "reading response", Cause: err}
	}

	respHeaders := make(map[string]graph.Value, len(resp.Header))
	for k, vs := range resp.Header {
		respHeaders[k] = graph.String(strings.Join(vs, ", "))
	}

	return NewOutputs().
		With("status", graph.Number(float64(resp.StatusCode))).
		With("body", graph.String(string(respBody))).
		With("headers", graph.Object(respHeaders)), nil
}

// Validate implements Block. The block has no parameters.
func (h *HTTPBlock) Validate(Params) error { return nil }

// Purity implements Block.
func (h *HTTPBlock) Purity() Purity { return Impure }

// Determinism implements Block.
func (h *HTTPBlock) Determinism() Determinism { return Nondeterministic }
