package loader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/GriffinCanCode/treequery/dom"
)

// MaxHTMLSize limits markup input to 10MB to prevent memory exhaustion.
const MaxHTMLSize = 10 * 1024 * 1024

// Loader parses markup text into dom trees.
type Loader struct {
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSanitizer applies a bluemonday policy to the markup before parsing.
func WithSanitizer(p *bluemonday.Policy) Option {
	return func(l *Loader) { l.sanitizer = p }
}

// WithLogger supplies a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New creates a loader. Without options it parses input as-is and logs
// nothing.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = zap.NewNop()
	}
	return l
}

// Validate checks markup size bounds.
func Validate(markup string) error {
	if len(markup) == 0 {
		return fmt.Errorf("loader: markup content required")
	}
	if len(markup) > MaxHTMLSize {
		return fmt.Errorf("loader: markup exceeds maximum size of %d bytes", MaxHTMLSize)
	}
	return nil
}

// DetectCharset detects the charset of raw markup bytes, falling back to
// utf-8 when detection fails.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// Parse converts markup text into a canonical tree. The input is size
// checked, optionally sanitized, converted to UTF-8 based on detected
// charset, and handed to the external parser; the parser's tree is then
// re-projected into the dom form.
func (l *Loader) Parse(markup string) (*dom.Node, error) {
	if err := Validate(markup); err != nil {
		return nil, err
	}
	if l.sanitizer != nil {
		markup = l.sanitizer.Sanitize(markup)
	}

	data := []byte(markup)
	detected := DetectCharset(data)
	l.log.Debug("charset detected", zap.String("charset", detected))

	var root *html.Node
	utf8Reader, err := charset.NewReader(bytes.NewReader(data), detected)
	if err != nil {
		// Fallback to direct parsing
		root, err = html.Parse(strings.NewReader(markup))
	} else {
		root, err = html.Parse(utf8Reader)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: parse failed: %w", err)
	}
	return dom.FromHTML(root), nil
}

// Parse parses markup with a default loader (no sanitization).
func Parse(markup string) (*dom.Node, error) {
	return New().Parse(markup)
}
