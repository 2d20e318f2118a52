// Command backend_compare hits the same read endpoints on two running
// instances of the API, one per storage backend, and reports response
// diffs. Both instances must be seeded from the same dataset.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	PostgresStatus int
	FileStatus     int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationPG     time.Duration
	DurationFile   time.Duration
}

func main() {
	var (
		pgBase      string
		fileBase    string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&pgBase, "postgres-base", "http://localhost:8080", "Postgres-backed API base URL")
	flag.StringVar(&fileBase, "file-base", "http://localhost:8081", "File-backed API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "backend_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, t := range targets {
		comp := compareTarget(client, pgBase, fileBase, t)
		if comp.Error != nil {
			if t.Critical {
				breaking++
			}
		} else {
			if !comp.StatusMatch || !comp.BodyMatch {
				if t.Critical {
					breaking++
				} else {
					optionalDiff++
				}
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compareTarget(client *http.Client, pgBase, fileBase string, tgt target) comparison {
	comp := comparison{Target: tgt}
	pgResp, pgDur, pgErr := performRequest(client, pgBase, tgt)
	fileResp, fileDur, fileErr := performRequest(client, fileBase, tgt)
	comp.DurationPG = pgDur
	comp.DurationFile = fileDur

	if pgErr != nil {
		comp.Error = fmt.Errorf("postgres request failed: %w", pgErr)
		return comp
	}
	if fileErr != nil {
		comp.Error = fmt.Errorf("file request failed: %w", fileErr)
		return comp
	}

	comp.PostgresStatus = pgResp.StatusCode
	comp.FileStatus = fileResp.StatusCode
	comp.StatusMatch = comp.PostgresStatus == comp.FileStatus

	defer pgResp.Body.Close()
	defer fileResp.Body.Close()

	pgBody, err := io.ReadAll(pgResp.Body)
	if err != nil {
		comp.Error = fmt.Errorf("read postgres body: %w", err)
		return comp
	}
	fileBody, err := io.ReadAll(fileResp.Body)
	if err != nil {
		comp.Error = fmt.Errorf("read file body: %w", err)
		return comp
	}

	comp.BodyMatch = bodiesEqual(pgBody, fileBody)

	return comp
}

func performRequest(client *http.Client, base string, tgt target) (*http.Response, time.Duration, error) {
	if client == nil {
		return nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp, time.Since(start), nil
}

func bodiesEqual(a, b []byte) bool {
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
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

// normalize folds integral floats so 9 and 9.0 compare equal and
// recurses into containers. Goal ids differ between backends only when
// the seed order differs, which the shared dataset rules out.
func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []comparison) {
	fmt.Println("Backend Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Printf("  Postgres Status: %d (%s)\n", res.PostgresStatus, res.DurationPG)
		fmt.Printf("  File Status: %d (%s)\n", res.FileStatus, res.DurationFile)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
