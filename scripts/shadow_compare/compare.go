package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

// Timestamps differ between two independently written rows, so they are never
// compared unless a target opts in by listing an empty Ignore.
var defaultIgnored = []string{"createdAt", "updatedAt"}

type target struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
	Ignore   []string        `json:"ignore,omitempty"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) breaking() bool {
	if c.Error != nil || !c.StatusMatch || !c.BodyMatch {
		return c.Target.Critical
	}
	return false
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	for i := range file.Targets {
		if file.Targets[i].Ignore == nil {
			file.Targets[i].Ignore = defaultIgnored
		}
	}
	return file.Targets, nil
}

func compareTarget(client *http.Client, goBase, legacyBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, err := fetch(client, goBase, tgt)
	comp.DurationGo = goDur
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, legacyDur, err := fetch(client, legacyBase, tgt)
	comp.DurationLegacy = legacyDur
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody, tgt.Ignore)
	return comp
}

func fetch(client *http.Client, base string, tgt target) (int, []byte, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var payload io.Reader
	if len(tgt.Body) > 0 {
		payload = bytes.NewReader(tgt.Body)
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, payload)
	if err != nil {
		return 0, nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// bodiesEqual compares two JSON documents structurally, dropping the ignored
// keys at any depth. Non-JSON bodies must match byte for byte.
func bodiesEqual(a, b []byte, ignore []string) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	skip := make(map[string]struct{}, len(ignore))
	for _, key := range ignore {
		skip[key] = struct{}{}
	}
	return reflect.DeepEqual(normalize(aj, skip), normalize(bj, skip))
}

func normalize(v interface{}, skip map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if _, ok := skip[k]; ok {
				continue
			}
			out[k] = normalize(child, skip)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = normalize(child, skip)
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return val
	}
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
			continue
		}
		fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
	}
}
