// Package client provides the HTTP adapter used by the conformance suite to
// talk to the website builder API. All request methods return a Response
// value rather than an error: transport failures are data for the validators,
// not faults.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/sitegen/api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const apiPathPrefix = "/api"

// Client issues requests against the website builder API. Each call is a
// single attempt with its own timeout; there are no retries, since the suite
// is testing conformance rather than resilience.
type Client struct {
	baseURL string
	apiURL  string
	logger  framework.Logger
}

// Response is the structured result of one request. Exactly one of two shapes
// applies: a transport failure (Err set, everything else zero) or a completed
// HTTP exchange (Err nil, Status/Header/Body populated).
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	Err    error
}

// Unreachable reports whether the request failed at the transport level
// (connection refused, timeout, DNS) before any HTTP response arrived.
func (r Response) Unreachable() bool {
	return r.Err != nil
}

// JSON returns the decoded response body. It is ldvalue.Null() when the body
// is not parseable as JSON, so shape checks degrade to failed assertions
// rather than panics.
func (r Response) JSON() ldvalue.Value {
	return ldvalue.Parse(r.Body)
}

// IsJSONArray reports whether the body decoded to a JSON array. An empty
// array is still an array; ldvalue.Parse collapses malformed input to null.
func (r Response) IsJSONArray() bool {
	return r.JSON().Type() == ldvalue.ArrayType
}

func New(baseURL string, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		baseURL: baseURL,
		apiURL:  baseURL + apiPathPrefix,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// APIURL returns the absolute URL for a path under the API root.
func (c *Client) APIURL(path string) string {
	return c.apiURL + path
}

// WithLogger returns a copy of the client whose requests log to the given
// logger. The suite uses this to direct request traces into each test's
// captured debug output.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	if logger == nil {
		return c
	}
	c1 := *c
	c1.logger = logger
	return &c1
}

// Get issues a GET to a path under the API root.
func (c *Client) Get(path string, timeout time.Duration) Response {
	return c.do("GET", path, nil, timeout)
}

// Post issues a POST to a path under the API root with a JSON body. A nil
// body sends an empty JSON object.
func (c *Client) Post(path string, body interface{}, timeout time.Duration) Response {
	if body == nil {
		body = map[string]interface{}{}
	}
	data, err := json.Marshal(body)
	if err != nil {
		return Response{Err: fmt.Errorf("could not marshal request body: %w", err)}
	}
	return c.do("POST", path, data, timeout)
}

func (c *Client) do(method, path string, body []byte, timeout time.Duration) Response {
	url := c.APIURL(path)
	c.logger.Printf("%s %s", method, url)
	c.logger.Printf("equivalent command: %s", curlCommand(method, url, body))

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return Response{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := &http.Client{Timeout: timeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Printf("request failed: %s", err)
		return Response{Err: err}
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("reading response body failed: %s", err)
		return Response{Err: err}
	}
	c.logger.Printf("got status %d, %d body bytes", resp.StatusCode, len(data))
	return Response{Status: resp.StatusCode, Header: resp.Header, Body: data}
}

// WaitForService polls the API root until it answers or the deadline passes.
// This is the pre-flight reachability probe: if it fails, the suite must not
// run at all. Progress dots are written to output while waiting.
func (c *Client) WaitForService(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to website builder API at %s", c.apiURL)
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(c.apiURL + "/")
		if err == nil {
			fmt.Fprintln(output)
			if resp.Body != nil {
				data, _ := ioutil.ReadAll(resp.Body)
				resp.Body.Close()
				fmt.Fprintf(output, "Service responded with: %s\n", strings.TrimSpace(string(data)))
			}
			if resp.StatusCode != 200 {
				return fmt.Errorf("service returned status code %d from status resource", resp.StatusCode)
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}
