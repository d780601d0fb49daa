package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/requests"
	"github.com/brettbedarf/webshell/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	webshellBin string
	projRoot    string
)

func TestMain(m *testing.M) {
	// Build webshell binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "webshell-bin")
	if err != nil {
		panic(err)
	}

	webshellBin = filepath.Join(tmpBinDir, "webshell")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", webshellBin, "./cmd/webshell")
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	code := m.Run()
	if err := os.RemoveAll(tmpBinDir); err != nil {
		panic(err)
	}
	os.Exit(code)
}

func TestE2EInteractiveSession(t *testing.T) {
	out := runConsole(t, nil,
		"mkdir docs",
		"touch readme",
		"ls",
		"cd docs",
		"pwd",
		"cd ..",
		"rm readme",
		"ls",
		"frobnicate x",
		"touch",
	)

	assert.Contains(t, out, config.DefaultBanner)
	assert.Contains(t, out, "/ $ docs\nreadme\n")
	assert.Contains(t, out, "/docs $ /docs\n")
	assert.Contains(t, out, "/ $ docs\n")
	assert.Contains(t, out, "invalid command: frobnicate. Supported commands are: ls, pwd, touch, mkdir, cd, rm, clear")
	assert.Contains(t, out, "touch: command line input must contain exactly 2 element(s), got 1")
}

func TestE2EInteractiveConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "webshell.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("banner: custom banner\nprompt: \"> \"\ncollapse_spaces: true\n"), 0o644))

	out := runConsole(t, []string{"-config", cfgPath}, "mkdir   d", "cd  d", "clear")

	assert.Equal(t, 2, strings.Count(out, "custom banner"), out)
	assert.Contains(t, out, "/d > ")
}

func TestE2EInvalidLocation(t *testing.T) {
	out := runConsole(t, nil, "touch f", "cd f", "mkdir g", "pwd")

	assert.Contains(t, out, "mkdir: g: cannot create entries inside a file")
	assert.Contains(t, out, "/f $ /f\n")
}

func TestE2EServe(t *testing.T) {
	addr := freeAddr(t)
	cmd := exec.Command(webshellBin, "-serve", "-addr", addr, "-v", "1")
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Start())

	base := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond, stderr.String())

	client := NewConsoleClient(t, base)
	client.Submit("mkdir srv")
	res := client.Submit("ls")
	assert.Equal(t, requests.ResultDTO{Kind: webshell.Rendered, Text: "srv", Cwd: "/"}, res)

	require.NoError(t, cmd.Process.Signal(syscall.SIGTERM))
	require.NoError(t, cmd.Wait(), stderr.String())
}

func TestE2EHTTPConsole(t *testing.T) {
	env := NewE2ETestEnvironment(t, config.NewDefaultConfig())

	a := NewConsoleClient(t, env.URL)
	b := NewConsoleClient(t, env.URL)

	a.Submit("mkdir d")
	res := a.Submit("cd d")
	assert.Equal(t, "/d", res.Cwd)

	res = b.Submit("ls")
	assert.Equal(t, webshell.Echoed, res.Kind, "sessions do not share trees")
	assert.Equal(t, "/", res.Cwd)

	a.Submit("touch f")
	a.Submit("mkdir f2")
	res = a.Submit("ls")
	assert.Equal(t, "f\nf2", res.Text)

	res = a.Submit("rm x")
	assert.Equal(t, webshell.Failed, res.Kind)
	assert.Equal(t, "f\nf2", a.Submit("ls").Text)

	assert.Equal(t, requests.HistoryDTO{Command: "ls", OK: true}, a.Recall("previous"))
	assert.Equal(t, requests.HistoryDTO{Command: "rm x", OK: true}, a.Recall("previous"))
	assert.Equal(t, requests.HistoryDTO{Command: "ls", OK: true}, a.Recall("next"))
	assert.False(t, a.Recall("next").OK)

	a.Close()
	b.Close()
	assert.Equal(t, 0, env.Server.Sessions().Len())
}

func TestE2EHTTPErrors(t *testing.T) {
	env := NewE2ETestEnvironment(t, config.NewDefaultConfig())

	tests := []struct {
		desc   string
		method string
		path   string
		body   string
		code   int
	}{
		{"unknown session submit", http.MethodPost, "/api/sessions/missing/submit", `{"input":"ls"}`, http.StatusNotFound},
		{"unknown session history", http.MethodGet, "/api/sessions/missing/history/previous", "", http.StatusNotFound},
		{"unknown session delete", http.MethodDelete, "/api/sessions/missing", "", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, env.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

// E2ETestEnvironment serves consoles in-process
type E2ETestEnvironment struct {
	Server *server.Server
	URL    string
}

func NewE2ETestEnvironment(t *testing.T, cfg *config.Config) *E2ETestEnvironment {
	t.Helper()
	srv := server.New(cfg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &E2ETestEnvironment{Server: srv, URL: ts.URL}
}

// ConsoleClient drives one HTTP console session
type ConsoleClient struct {
	t    *testing.T
	base string
	ID   string
}

func NewConsoleClient(t *testing.T, baseURL string) *ConsoleClient {
	t.Helper()
	resp, err := http.Post(baseURL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var s requests.SessionDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	return &ConsoleClient{t: t, base: baseURL, ID: s.ID}
}

func (c *ConsoleClient) Submit(input string) requests.ResultDTO {
	c.t.Helper()
	body, err := json.Marshal(requests.SubmitRequestDTO{Input: &input})
	require.NoError(c.t, err)

	resp, err := http.Post(c.sessionURL("/submit"), "application/json", bytes.NewReader(body))
	require.NoError(c.t, err)
	defer resp.Body.Close()
	require.Equal(c.t, http.StatusOK, resp.StatusCode)

	var res requests.ResultDTO
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func (c *ConsoleClient) Recall(dir string) requests.HistoryDTO {
	c.t.Helper()
	resp, err := http.Get(c.sessionURL("/history/" + dir))
	require.NoError(c.t, err)
	defer resp.Body.Close()
	require.Equal(c.t, http.StatusOK, resp.StatusCode)

	var h requests.HistoryDTO
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&h))
	return h
}

func (c *ConsoleClient) Close() {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodDelete, c.sessionURL(""), nil)
	require.NoError(c.t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	resp.Body.Close()
	require.Equal(c.t, http.StatusNoContent, resp.StatusCode)
}

func (c *ConsoleClient) sessionURL(suffix string) string {
	return fmt.Sprintf("%s/api/sessions/%s%s", c.base, c.ID, suffix)
}

// runConsole feeds lines to an interactive webshell process and returns its stdout
func runConsole(t *testing.T, args []string, lines ...string) string {
	t.Helper()
	cmd := exec.Command(webshellBin, args...)
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir())
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Run(), stderr.String())
	return stdout.String()
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}
