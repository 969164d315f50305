package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"orchea/browser"
	"orchea/logger"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, out io.Writer, root string, open browser.Opener) *app {
	t.Helper()
	return &app{
		out:  out,
		log:  logger.New(io.Discard),
		root: func() (string, error) { return root, nil },
		open: open,
	}
}

func TestRunServesUntilCancelled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>docs</h1>"), 0644))

	urls := make(chan string, 1)
	opener := func(url string) error {
		urls <- url
		return nil
	}

	var out bytes.Buffer
	a := newTestApp(t, &out, root, opener)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	codes := make(chan int, 1)
	go func() {
		codes <- a.run(ctx, []string{"0"})
	}()

	var url string
	select {
	case url = <-urls:
	case <-time.After(5 * time.Second):
		t.Fatal("browser was never opened")
	}

	resp, err := http.Get(url + "/index.html")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "<h1>docs</h1>", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	cancel()
	select {
	case code := <-codes:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	assert.Contains(t, out.String(), "Server running at "+url)
	assert.Contains(t, out.String(), "Serving directory: "+root)
	assert.Contains(t, out.String(), "Server stopped. Goodbye!")
}

func TestRunPortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	var out bytes.Buffer
	opened := false
	a := newTestApp(t, &out, t.TempDir(), func(string) error {
		opened = true
		return nil
	})

	code := a.run(context.Background(), []string{strconv.Itoa(port)})

	assert.Equal(t, 1, code)
	assert.False(t, opened)
	assert.Contains(t, out.String(), "Port "+strconv.Itoa(port)+" is already in use")
	assert.Contains(t, out.String(), "orchea "+strconv.Itoa(port+1))
	assert.NotContains(t, out.String(), "Server running")
}

func TestRunInvalidPortFallsBackToDefault(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	a := newTestApp(t, &out, t.TempDir(), browser.None)

	code := a.run(ctx, []string{"notanumber"})

	assert.Contains(t, out.String(), `Invalid port number "notanumber". Using default port 8000.`)

	// 8000 may already be taken on the machine running the tests; either way
	// the fallback port is the one that was tried.
	if code == 0 {
		assert.Contains(t, out.String(), "http://localhost:8000")
	} else {
		assert.Contains(t, out.String(), "Port 8000 is already in use")
	}
}

func TestRunRootFailure(t *testing.T) {
	var out bytes.Buffer
	a := &app{
		out:  &out,
		log:  logger.New(io.Discard),
		root: func() (string, error) { return "", errors.New("no executable") },
		open: browser.None,
	}

	code := a.run(context.Background(), []string{"0"})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Error starting server: no executable")
}

func TestRunBrowserFailureIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	a := &app{
		out:  &out,
		log:  logger.New(&logs),
		root: func() (string, error) { return t.TempDir(), nil },
		open: func(string) error {
			cancel()
			return errors.New("no display")
		},
	}

	code := a.run(ctx, []string{"0"})

	assert.Equal(t, 0, code)
	assert.Contains(t, logs.String(), "Failed to open browser")
	assert.Contains(t, out.String(), "Server stopped. Goodbye!")
}
