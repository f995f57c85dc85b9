package http

import (
	"encoding/json"
	"errors"
	"fmt"
)

type DataExtractor[T any] func(*Response) (T, error)

var ErrParsingError = errors.New("parsing error")

func ParseResponse[T any](r *Response, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *Response) (T, error) {
		var result T
		err := json.Unmarshal(r.Body(), &result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

// TextBody returns the body as is; empty bodies are valid.
func TextBody() DataExtractor[string] {
	return func(r *Response) (string, error) {
		return string(r.Body()), nil
	}
}
