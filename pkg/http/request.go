package http

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

type (
	Request struct {
		impl  *resty.Request
		route Route
	}

	Response struct {
		impl *resty.Response
	}
)

func (r *Request) SetPathParam(name, value string) *Request {
	r.impl.SetPathParam(name, value)
	return r
}

func (r *Request) SetBody(body any) *Request {
	r.impl.SetHeader("Content-Type", "application/json")
	r.impl.SetBody(body)
	return r
}

func (r *Request) SetAuthToken(token string) *Request {
	r.impl.SetAuthToken(token)
	return r
}

func (r *Request) SetHeader(name, value string) *Request {
	r.impl.SetHeader(name, value)
	return r
}

func (r *Request) Send() (*Response, error) {
	resp, err := r.impl.Execute(r.route.Method, r.route.URL)
	if err != nil {
		return nil, fmt.Errorf("execute %s %s: %w", r.route.Method, r.route.URL, err)
	}

	return &Response{impl: resp}, nil
}

func (r *Response) StatusCode() int {
	return r.impl.StatusCode()
}

func (r *Response) IsSuccess() bool {
	return r.impl.IsSuccess()
}

func (r *Response) Body() []byte {
	return r.impl.Body()
}

func (r *Response) String() string {
	return r.impl.String()
}
