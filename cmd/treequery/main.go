// Command treequery applies a YAML extraction recipe to an HTML document
// and prints the extracted records as JSON.
//
// Usage:
//
//	treequery recipe.yaml
//
// Recipe format:
//
//	source: https://example.com   # URL, file path, or "-" for stdin
//	narrow: "ul.results li.item"  # optional: one record per match
//	sanitize: true                # optional: bluemonday UGC policy
//	fields:
//	  - key: title
//	    selector: "h2.title"
//	    extract: text
//	  - key: link
//	    selector: "a"
//	    extract: attr
//	    attr: href
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-yaml"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/treequery/extract"
	"github.com/GriffinCanCode/treequery/internal/config"
	"github.com/GriffinCanCode/treequery/internal/logging"
	"github.com/GriffinCanCode/treequery/loader"
)

// Recipe describes one extraction run.
type Recipe struct {
	Source   string  `yaml:"source"`
	Narrow   string  `yaml:"narrow"`
	Sanitize bool    `yaml:"sanitize"`
	Fields   []Field `yaml:"fields"`
}

// Field binds an output key to a selector chain and a named extractor.
type Field struct {
	Key      string `yaml:"key"`
	Selector string `yaml:"selector"`
	Extract  string `yaml:"extract"`
	Attr     string `yaml:"attr"`
	Index    *int   `yaml:"index"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: treequery <recipe.yaml>")
		os.Exit(2)
	}

	cfg := config.LoadOrDefault()
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
	}
	defer log.Sync()

	if err := run(os.Args[1], cfg, log); err != nil {
		log.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(recipePath string, cfg *config.Config, log *zap.Logger) error {
	data, err := os.ReadFile(recipePath)
	if err != nil {
		return fmt.Errorf("read recipe: %w", err)
	}

	var recipe Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return fmt.Errorf("parse recipe: %w", err)
	}
	if recipe.Source == "" {
		return fmt.Errorf("recipe: source required")
	}
	if len(recipe.Fields) == 0 {
		return fmt.Errorf("recipe: at least one field required")
	}

	markup, err := readSource(recipe.Source, cfg, log)
	if err != nil {
		return err
	}

	opts := []loader.Option{loader.WithLogger(log)}
	if recipe.Sanitize {
		opts = append(opts, loader.WithSanitizer(bluemonday.UGCPolicy()))
	}
	tree, err := loader.New(opts...).Parse(markup)
	if err != nil {
		return err
	}

	keys, pairs, err := buildPairs(recipe.Fields)
	if err != nil {
		return err
	}

	pipeline := extract.New(extract.WithLogger(log))
	var result any
	if recipe.Narrow != "" {
		result, err = pipeline.ExtractFrom(tree, recipe.Narrow, keys, pairs...)
	} else {
		result, err = pipeline.Extract(tree, keys, pairs...)
	}
	if err != nil {
		// Pair failures are independent; report them but keep the rest.
		log.Warn("partial extraction", zap.Error(err))
	}

	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// readSource resolves the recipe source to markup text: a URL is fetched
// with retry, "-" reads stdin, anything else is a file path.
func readSource(source string, cfg *config.Config, log *zap.Logger) (string, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		client := resty.New().
			SetTimeout(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second).
			SetRetryCount(cfg.Fetch.RetryCount)
		resp, err := client.R().Get(source)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("fetch %s: status %s", source, resp.Status())
		}
		body := resp.Body()
		if int64(len(body)) > cfg.Fetch.MaxBodyBytes {
			return "", fmt.Errorf("fetch %s: body exceeds %d bytes", source, cfg.Fetch.MaxBodyBytes)
		}
		log.Info("fetched document", zap.String("url", source), zap.Int("bytes", len(body)))
		return string(body), nil
	case source == "-":
		body, err := io.ReadAll(io.LimitReader(os.Stdin, cfg.Fetch.MaxBodyBytes))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(body), nil
	default:
		body, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", source, err)
		}
		return string(body), nil
	}
}

// buildPairs maps recipe fields to selector/extractor pairs.
func buildPairs(fields []Field) ([]string, []extract.Pair, error) {
	keys := make([]string, 0, len(fields))
	pairs := make([]extract.Pair, 0, len(fields))
	for _, f := range fields {
		if f.Key == "" {
			return nil, nil, fmt.Errorf("recipe: field key required")
		}
		ext, err := resolveExtractor(f)
		if err != nil {
			return nil, nil, err
		}
		if f.Index != nil {
			ext = extract.Compose(extract.Nth(*f.Index), ext)
		}
		keys = append(keys, f.Key)
		pairs = append(pairs, extract.Pair{Selector: f.Selector, Extractor: ext})
	}
	return keys, pairs, nil
}

func resolveExtractor(f Field) (extract.Extractor, error) {
	switch f.Extract {
	case "", "text":
		return extract.Text, nil
	case "tag":
		return extract.Tag, nil
	case "attrs":
		return extract.Attrs, nil
	case "attr":
		if f.Attr == "" {
			return nil, fmt.Errorf("recipe: field %q: attr name required", f.Key)
		}
		return extract.Attr(f.Attr), nil
	case "node":
		return extract.Node, nil
	default:
		return nil, fmt.Errorf("recipe: field %q: unknown extractor %q", f.Key, f.Extract)
	}
}
