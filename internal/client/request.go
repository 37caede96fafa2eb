package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/http"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// getEnvelope issues a GET and returns the decoded, code-classified
// envelope. The compact verbosity parameter is applied to every JSON
// request, including pagination cursor URLs, which do not carry it.
func getEnvelope(ctx context.Context, httpClient *http.Client, path string, query url.Values) (*smugmug.Envelope, error) {
	merged := url.Values{}

	for key, values := range query {
		merged[key] = values
	}

	merged.Set(constants.VerbosityParam, constants.VerbosityCompact)

	resp, err := httpClient.Get(ctx, path, merged)
	if err != nil {
		return nil, err
	}

	return decodeEnvelope(resp.Body)
}

// postEnvelope issues a POST with a JSON body and returns the
// classified envelope.
func postEnvelope(ctx context.Context, httpClient *http.Client, path string, body interface{}) (*smugmug.Envelope, error) {
	resp, err := httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeEnvelope(resp.Body)
}

// patchEnvelope issues a PATCH with a JSON body and returns the
// classified envelope.
func patchEnvelope(ctx context.Context, httpClient *http.Client, path string, body interface{}) (*smugmug.Envelope, error) {
	resp, err := httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodeEnvelope(resp.Body)
}

// decodeEnvelope parses a response body as an envelope and classifies
// its application-level status code. An undecodable body is a
// malformed response regardless of its HTTP status.
func decodeEnvelope(body []byte) (*smugmug.Envelope, error) {
	var envelope smugmug.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &smugmug.MalformedResponseError{Err: err, Body: body}
	}

	err = smugmug.ClassifyCode(envelope.Code, envelope.Message)
	if err != nil {
		return nil, err
	}

	return &envelope, nil
}

// decodePayload unmarshals the envelope's Response into the given
// payload wrapper. A successful envelope may legitimately omit the
// payload; callers that require one receive ErrResponseMissing.
func decodePayload[T any](envelope *smugmug.Envelope) (T, error) {
	var payload T

	if len(envelope.Response) == 0 {
		return payload, smugmug.ErrResponseMissing
	}

	err := json.Unmarshal(envelope.Response, &payload)
	if err != nil {
		return payload, &smugmug.MalformedResponseError{Err: err, Body: envelope.Response}
	}

	return payload, nil
}

// oneOrMany decodes a payload field that the API serializes as a bare
// object for single-id requests and as an array for multi-id requests.
func oneOrMany[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var many []T

		err := json.Unmarshal(trimmed, &many)
		if err != nil {
			return nil, &smugmug.MalformedResponseError{Err: err, Body: raw}
		}

		return many, nil
	}

	var one T

	err := json.Unmarshal(trimmed, &one)
	if err != nil {
		return nil, &smugmug.MalformedResponseError{Err: err, Body: raw}
	}

	return []T{one}, nil
}
