package sheets

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type format string

const (
	formatCSV  format = "csv"
	formatXLSX format = "xlsx"

	contentEncoding = "gzip"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	acceptTypes     = "text/csv, text/plain, " + xlsxContentType + ", */*;q=0.1"
)

type content struct {
	body   io.Reader
	format format
}

func (c *Client) retrieve(source string) (*content, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &TransportError{Source: source, Err: errors.New("source is not configured")}
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, &TransportError{Source: source, Err: err}
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return c.get(source, u)
	case "file":
		return c.readFile(source, u.Path)
	case "":
		return c.readFile(source, source)
	default:
		return nil, &TransportError{Source: source, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
}

func (c *Client) get(source string, u *url.URL) (*content, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &TransportError{Source: source, Err: err}
	}

	req = c.setHeaders(req)

	resp, err := c.request(req)
	if err != nil {
		return nil, &TransportError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Source: source, Status: resp.StatusCode, Err: fmt.Errorf("bad status: %s", resp.Status)}
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, &TransportError{Source: source, Err: err}
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &TransportError{Source: source, Err: err}
	}

	c.logger.Debug("got response from source",
		zap.String("source", source),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.Int("bytes", len(data)),
	)

	f := detectFormat(u.Path)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), xlsxContentType) {
		f = formatXLSX
	}

	return &content{body: bytes.NewReader(data), format: f}, nil
}

func (c *Client) readFile(source, path string) (*content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TransportError{Source: source, Err: err}
	}

	c.logger.Debug("read local source", zap.String("path", path), zap.Int("bytes", len(data)))

	return &content{body: bytes.NewReader(data), format: detectFormat(path)}, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", acceptTypes)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}

func detectFormat(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return formatXLSX
	}
	return formatCSV
}
