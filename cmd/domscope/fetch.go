package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/domscope/dom"
	"github.com/npillmayer/domscope/dom/htmldom"
)

const fetchTimeout = 10 * time.Second

// loadDocument obtains a document from a local file or an HTTP(S) URL
// and optionally narrows it to a selector-matched subtree. Failures
// leave nothing behind; callers keep whatever view they had.
func loadDocument(ctx context.Context, location, selector string) (dom.Node, error) {
	if location == "" {
		return nil, fmt.Errorf("no document location given")
	}
	var root *htmldom.Node
	var err error
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		root, err = fetchDocument(ctx, location)
	} else {
		root, err = readDocument(location)
	}
	if err != nil {
		return nil, err
	}
	if selector == "" {
		return root, nil
	}
	return htmldom.Query(root, selector)
}

func fetchDocument(ctx context.Context, url string) (*htmldom.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return htmldom.Parse(resp.Body)
}

func readDocument(path string) (*htmldom.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldom.Parse(f)
}
