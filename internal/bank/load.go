package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError indicates the bank could not be fetched from its source.
type LoadError struct {
	Source string
	Err    error
}

// Error renders the load failure with its source.
func (err *LoadError) Error() string {
	return fmt.Sprintf("load bank from %s: %v", err.Source, err.Err)
}

// Unwrap exposes the underlying transport error.
func (err *LoadError) Unwrap() error {
	return err.Err
}

// httpClient performs bank fetches over HTTP.
var httpClient = http.DefaultClient

// Load fetches, parses, and validates a question bank. Transport failures
// return *LoadError; malformed payloads return *ValidationError. A bank is
// accepted or rejected wholesale.
func Load(ctx context.Context, source Source) (Bank, error) {
	data, origin, err := fetch(ctx, source)
	if err != nil {
		return Bank{}, err
	}
	questions, err := parseBank(data, origin)
	if err != nil {
		return Bank{}, err
	}
	return Normalize(source, questions)
}

// fetch reads the raw payload from the source path or URL.
func fetch(ctx context.Context, source Source) ([]byte, string, error) {
	if source.URL != "" {
		return fetchHTTP(ctx, source.URL)
	}
	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, source.Path, &LoadError{Source: source.Path, Err: err}
	}
	return data, source.Path, nil
}

// fetchHTTP retrieves a bank payload over HTTP.
func fetchHTTP(ctx context.Context, url string) ([]byte, string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, url, &LoadError{Source: url, Err: err}
	}
	response, err := httpClient.Do(request)
	if err != nil {
		return nil, url, &LoadError{Source: url, Err: err}
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, url, &LoadError{Source: url, Err: fmt.Errorf("unexpected status %s", response.Status)}
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, url, &LoadError{Source: url, Err: err}
	}
	return data, url, nil
}

// parseBank decodes a payload as JSON or YAML depending on the origin.
func parseBank(data []byte, origin string) ([]Question, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(origin, "/")))
	if ext == ".yml" || ext == ".yaml" {
		return parseYAMLBank(data)
	}
	return parseJSONBank(data)
}

func parseJSONBank(data []byte) ([]Question, error) {
	var questions []Question
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&questions); err != nil {
		return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: fmt.Sprintf("parse json: %v", err)}}}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: "parse json: multiple documents are not supported"}}}
		}
		return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: fmt.Sprintf("parse json: %v", err)}}}
	}
	return questions, nil
}

func parseYAMLBank(data []byte) ([]Question, error) {
	var questions []Question
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&questions); err != nil {
		return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: fmt.Sprintf("parse yaml: %v", err)}}}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: "parse yaml: multiple documents are not supported"}}}
		}
		return nil, &ValidationError{Issues: []Issue{{Field: "bank", Message: fmt.Sprintf("parse yaml: %v", err)}}}
	}
	return questions, nil
}
