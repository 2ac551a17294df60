// Package fetch retrieves document sources from local files and http(s)
// locations.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"sonata/archive"
	"sonata/config"
)

const filePrefix = "file://"

var (
	ErrBinaryPayload = errors.New("source is not a text document")
	ErrTooLarge      = errors.New("source is too large")
	ErrUnsupported   = errors.New("unsupported location scheme")
)

// Retriever reads document text. It never fails from caller's point of view:
// any problem is logged and configured error page is returned instead.
type Retriever struct {
	cfg     config.FetchConfig
	client  *http.Client
	charset encoding.Encoding
	rpt     *config.Report
	log     *zap.Logger
}

type Option func(*Retriever)

func WithLogger(log *zap.Logger) Option {
	return func(r *Retriever) {
		if log != nil {
			r.log = log
		}
	}
}

// WithReport stores every retrieved source in debug report.
func WithReport(rpt *config.Report) Option {
	return func(r *Retriever) { r.rpt = rpt }
}

// WithCharset sets encoding used when source does not declare its own.
func WithCharset(enc encoding.Encoding) Option {
	return func(r *Retriever) { r.charset = enc }
}

func WithClient(client *http.Client) Option {
	return func(r *Retriever) {
		if client != nil {
			r.client = client
		}
	}
}

func NewRetriever(cfg config.FetchConfig, opts ...Option) *Retriever {
	r := &Retriever{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.Named("fetch")
	return r
}

// Get returns text of the document at location, which could be local path,
// file:// or http(s):// URL.
func (r *Retriever) Get(ctx context.Context, location string) string {
	text, err := r.Fetch(ctx, location)
	if err != nil {
		r.log.Error("Unable to retrieve source, using error page", zap.String("location", location), zap.Error(err))
		return r.cfg.ErrorPage
	}
	return text
}

// Fetch is Get which reports failures to the caller.
func (r *Retriever) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("unable to generate request id: %w", err)
	}
	log := r.log.With(zap.Stringer("id", id))

	start := time.Now()
	var (
		data        []byte
		contentType string
	)
	switch scheme := locationScheme(location); scheme {
	case "file", "":
		data, err = r.readFile(ctx, strings.TrimPrefix(location, filePrefix))
	case "http", "https":
		data, contentType, err = r.download(ctx, location, id)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupported, scheme)
	}
	if err != nil {
		return "", err
	}
	if err := checkPayload(data); err != nil {
		return "", err
	}

	text, name, err := decode(data, contentType, r.charset)
	if err != nil {
		return "", err
	}
	log.Debug("Source retrieved",
		zap.String("location", location), zap.Int("bytes", len(data)), zap.String("charset", name), zap.Duration("elapsed", time.Since(start)))

	r.rpt.StoreData(fmt.Sprintf("fetch/%s.html", id), []byte(text))
	return text, nil
}

func locationScheme(location string) string {
	if strings.HasPrefix(location, filePrefix) {
		return "file"
	}
	u, err := url.Parse(location)
	// single letter scheme is drive name
	if err != nil || len(u.Scheme) == 1 {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// readFile reads local file. Path which does not exist may point inside zip
// archive: "site.zip/pages/index.html".
func (r *Retriever) readFile(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.FromSlash(location)

	fi, err := os.Stat(path)
	if err == nil {
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for %s", path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return r.readLimited(f)
	}

	arc, inner := splitArchivePath(path)
	if arc == "" {
		return nil, err
	}
	ok, aerr := isArchiveFile(arc)
	if aerr != nil {
		return nil, fmt.Errorf("unable to check archive type: %w", aerr)
	}
	if !ok {
		return nil, err
	}

	var data []byte
	err = archive.Read(arc, inner, func(rd io.Reader) (err error) {
		data, err = r.readLimited(rd)
		return err
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Source found in archive", zap.String("archive", arc), zap.String("path", inner))
	return data, nil
}

// splitArchivePath finds the longest existing prefix of path. When it is a
// regular file returns it and the rest of the path in slash form.
func splitArchivePath(path string) (arc, inner string) {
	for head := filepath.Dir(path); ; head = filepath.Dir(head) {
		if fi, err := os.Stat(head); err == nil {
			if !fi.Mode().IsRegular() {
				return "", ""
			}
			rest := strings.TrimPrefix(strings.TrimPrefix(path, head), string(filepath.Separator))
			return head, filepath.ToSlash(rest)
		}
		if next := filepath.Dir(head); next == head {
			return "", ""
		}
	}
}

func (r *Retriever) download(ctx context.Context, location string, id uuid.UUID) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", fmt.Errorf("unable to prepare request: %w", err)
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)
	req.Header.Set("X-Request-ID", id.String())
	if auth := r.cfg.Authorization.Value(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected response status: %s", resp.Status)
	}
	data, err := r.readLimited(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (r *Retriever) readLimited(rd io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(rd, r.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}
	if int64(len(data)) > r.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, r.cfg.MaxBytes)
	}
	return data, nil
}
