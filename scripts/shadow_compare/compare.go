package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type target struct {
	Collection string
	Path       string
}

type comparison struct {
	Target          target
	PrimaryStatus   int
	ShadowStatus    int
	StatusMatch     bool
	BodyMatch       bool
	Error           error
	PrimaryDuration time.Duration
	ShadowDuration  time.Duration
}

func (c comparison) ok() bool {
	return c.Error == nil && c.StatusMatch && c.BodyMatch
}

type fetched struct {
	status   int
	body     []byte
	duration time.Duration
}

type comparer struct {
	client  *http.Client
	primary string
	shadow  string
	prefix  string
	sample  int
	logger  *zap.Logger
}

// Run compares the list endpoint of every collection, then up to c.sample
// documents by id taken from the primary's listing.
func (c *comparer) Run(ctx context.Context, collections []string) []comparison {
	var results []comparison
	for _, collection := range collections {
		list := target{Collection: collection, Path: c.path(collection)}
		comp, primaryBody := c.compare(ctx, list)
		results = append(results, comp)
		if comp.Error != nil {
			c.logger.Warn("list comparison failed", zap.String("collection", collection), zap.Error(comp.Error))
			continue
		}

		for _, id := range sampleIDs(primaryBody, c.sample) {
			item, _ := c.compare(ctx, target{Collection: collection, Path: c.path(collection, id)})
			results = append(results, item)
		}
	}
	return results
}

func (c *comparer) path(parts ...string) string {
	p := "/" + strings.Trim(c.prefix, "/")
	for _, part := range parts {
		p += "/" + part
	}
	return strings.Replace(p, "//", "/", 1)
}

func (c *comparer) compare(ctx context.Context, tgt target) (comparison, []byte) {
	comp := comparison{Target: tgt}

	primary, err := c.get(ctx, c.primary, tgt.Path)
	if err != nil {
		comp.Error = fmt.Errorf("primary request failed: %w", err)
		return comp, nil
	}
	shadow, err := c.get(ctx, c.shadow, tgt.Path)
	if err != nil {
		comp.Error = fmt.Errorf("shadow request failed: %w", err)
		return comp, nil
	}

	comp.PrimaryStatus = primary.status
	comp.ShadowStatus = shadow.status
	comp.PrimaryDuration = primary.duration
	comp.ShadowDuration = shadow.duration
	comp.StatusMatch = primary.status == shadow.status
	comp.BodyMatch = bodiesEqual(primary.body, shadow.body)
	return comp, primary.body
}

func (c *comparer) get(ctx context.Context, base, path string) (fetched, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return fetched{}, err
	}
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fetched{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetched{}, fmt.Errorf("read body: %w", err)
	}
	return fetched{status: resp.StatusCode, body: body, duration: time.Since(start)}, nil
}

func sampleIDs(listing []byte, limit int) []string {
	var docs []map[string]interface{}
	if err := json.Unmarshal(listing, &docs); err != nil {
		return nil
	}
	ids := make([]string, 0, limit)
	for _, doc := range docs {
		if len(ids) >= limit {
			break
		}
		if id, ok := doc["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// bodiesEqual compares JSON bodies structurally; listings may come back in any order.
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
	sortByID(aj)
	sortByID(bj)
	return reflect.DeepEqual(aj, bj)
}

func sortByID(v interface{}) {
	items, ok := v.([]interface{})
	if !ok {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return idOf(items[i]) < idOf(items[j])
	})
}

func idOf(v interface{}) string {
	if doc, ok := v.(map[string]interface{}); ok {
		if id, ok := doc["id"].(string); ok {
			return id
		}
	}
	return ""
}

func printReport(w io.Writer, results []comparison) int {
	diffs := 0
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "=====================")
	for _, res := range results {
		status := "OK"
		switch {
		case res.Error != nil:
			status = "ERROR"
		case !res.ok():
			status = "DIFF"
		}
		if status != "OK" {
			diffs++
		}
		fmt.Fprintf(w, "[%s] GET %s\n", status, res.Target.Path)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
			continue
		}
		fmt.Fprintf(w, "  Primary: %d (%s) | Shadow: %d (%s)\n", res.PrimaryStatus, res.PrimaryDuration, res.ShadowStatus, res.ShadowDuration)
		fmt.Fprintf(w, "  Status match: %t | Body match: %t\n", res.StatusMatch, res.BodyMatch)
	}
	fmt.Fprintf(w, "Diffs: %d of %d requests\n", diffs, len(results))
	return diffs
}
