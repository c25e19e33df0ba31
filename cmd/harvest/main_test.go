package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	harvest "github.com/harvestkit/harvest-go"
)

// mockClient implements ClientInterface for testing.
type mockClient struct {
	calls    []string
	dates    []any
	entryIDs []int64
	listOpts int
	err      error
}

func (m *mockClient) record(name string) (any, error) {
	m.calls = append(m.calls, name)
	if m.err != nil {
		return nil, m.err
	}
	return map[string]any{"call": name}, nil
}

func (m *mockClient) Status(ctx context.Context) map[string]any {
	m.calls = append(m.calls, "status")
	return map[string]any{"indicator": "none"}
}

func (m *mockClient) WhoAmI(ctx context.Context) (any, error) { return m.record("whoami") }

func (m *mockClient) Clients(ctx context.Context, opts ...harvest.ListOption) (any, error) {
	m.listOpts = len(opts)
	return m.record("clients")
}

func (m *mockClient) Projects(ctx context.Context, opts ...harvest.ListOption) (any, error) {
	m.listOpts = len(opts)
	return m.record("projects")
}

func (m *mockClient) Tasks(ctx context.Context, opts ...harvest.ListOption) (any, error) {
	m.listOpts = len(opts)
	return m.record("tasks")
}

func (m *mockClient) Contacts(ctx context.Context, opts ...harvest.ListOption) (any, error) {
	m.listOpts = len(opts)
	return m.record("contacts")
}

func (m *mockClient) Today(ctx context.Context) (any, error) { return m.record("today") }

func (m *mockClient) GetDay(ctx context.Context, date any) (any, error) {
	m.dates = append(m.dates, date)
	return m.record("day")
}

func (m *mockClient) GetEntry(ctx context.Context, entryID int64) (any, error) {
	m.entryIDs = append(m.entryIDs, entryID)
	return m.record("entry")
}

func withMockClient(t *testing.T, m *mockClient) {
	t.Helper()
	original := clientFactory
	t.Cleanup(func() { clientFactory = original })
	clientFactory = func() (ClientInterface, error) {
		return m, nil
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, os.Stdin, cfg.Stdin)
	assert.Equal(t, os.Stdout, cfg.Stdout)
	assert.Equal(t, os.Stderr, cfg.Stderr)
}

func TestClientInterface_Implemented(t *testing.T) {
	var _ ClientInterface = (*harvest.Client)(nil)
}

func TestRun_NoArgs(t *testing.T) {
	err := run([]string{"harvest"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestRun_UnknownCommand(t *testing.T) {
	withMockClient(t, &mockClient{})

	err := run([]string{"harvest", "invoices"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_Commands(t *testing.T) {
	tests := []struct {
		args []string
		call string
	}{
		{[]string{"whoami"}, "whoami"},
		{[]string{"clients"}, "clients"},
		{[]string{"projects"}, "projects"},
		{[]string{"tasks"}, "tasks"},
		{[]string{"contacts"}, "contacts"},
		{[]string{"today"}, "today"},
		{[]string{"day", "2024-06-03"}, "day"},
		{[]string{"entry", "77"}, "entry"},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			m := &mockClient{}
			withMockClient(t, m)

			var stdout bytes.Buffer
			err := run(append([]string{"harvest"}, tt.args...), &Config{Stdout: &stdout})
			require.NoError(t, err)

			assert.Equal(t, []string{tt.call}, m.calls)

			var out map[string]any
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
			assert.Equal(t, tt.call, out["call"])
		})
	}
}

func TestRun_DayAndEntryArguments(t *testing.T) {
	m := &mockClient{}
	withMockClient(t, m)

	require.NoError(t, run([]string{"harvest", "day", "2024-06-03"}, &Config{Stdout: &bytes.Buffer{}}))
	require.NoError(t, run([]string{"harvest", "entry", "77"}, &Config{Stdout: &bytes.Buffer{}}))

	assert.Equal(t, []any{"2024-06-03"}, m.dates)
	assert.Equal(t, []int64{77}, m.entryIDs)
}

func TestRun_MissingArgument(t *testing.T) {
	withMockClient(t, &mockClient{})

	for _, command := range []string{"day", "entry"} {
		err := run([]string{"harvest", command}, &Config{Stdout: &bytes.Buffer{}})
		require.Error(t, err, command)
		assert.Contains(t, err.Error(), "usage")
	}
}

func TestRun_InvalidEntryID(t *testing.T) {
	withMockClient(t, &mockClient{})

	err := run([]string{"harvest", "entry", "abc"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry id")
}

func TestRun_ListFlags(t *testing.T) {
	m := &mockClient{}
	withMockClient(t, m)

	err := run([]string{"harvest", "projects", "-since", "2024-06-03", "-client", "42"}, &Config{Stdout: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.listOpts)
}

func TestRun_BadFlag(t *testing.T) {
	withMockClient(t, &mockClient{})

	err := run([]string{"harvest", "clients", "-bogus"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestRun_QueryError(t *testing.T) {
	withMockClient(t, &mockClient{err: errors.New("boom")})

	err := run([]string{"harvest", "clients"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list clients")
}

func TestRun_ClientFactoryError(t *testing.T) {
	original := clientFactory
	t.Cleanup(func() { clientFactory = original })
	clientFactory = func() (ClientInterface, error) {
		return nil, errors.New("factory error")
	}

	err := run([]string{"harvest", "whoami"}, &Config{Stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create client")
}

func TestRun_Status(t *testing.T) {
	m := &mockClient{}
	withMockClient(t, m)

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"harvest", "status"}, &Config{Stdout: &stdout}))

	assert.Equal(t, []string{"status"}, m.calls)
	assert.Contains(t, stdout.String(), `"indicator": "none"`)
}

func TestDefaultClientFactory_MissingConfig(t *testing.T) {
	t.Setenv("HARVEST_URI", "")
	t.Setenv("HARVEST_EMAIL", "")
	t.Setenv("HARVEST_PASSWORD", "")

	_, err := clientFactory()
	assert.ErrorIs(t, err, harvest.ErrInvalidConfiguration)
}

func TestDefaultClientFactory_EndToEnd(t *testing.T) {
	var gotUser, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _, _ = r.BasicAuth()
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1}}`))
	}))
	defer server.Close()

	t.Setenv("HARVEST_URI", server.URL)
	t.Setenv("HARVEST_EMAIL", "user@example.com")
	t.Setenv("HARVEST_PASSWORD", "secret")
	t.Setenv("HARVEST_LOG_LEVEL", "disabled")

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"harvest", "whoami"}, &Config{Stdout: &stdout}))

	assert.Equal(t, "user@example.com", gotUser)
	assert.Equal(t, "/account/who_am_i", gotPath)
	assert.Contains(t, stdout.String(), `"user"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"":         zerolog.WarnLevel,
		"loud":     zerolog.WarnLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info")

	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFatal(t *testing.T) {
	original := exitFunc
	defer func() { exitFunc = original }()

	var exitCode int
	exitFunc = func(code int) { exitCode = code }

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fatal("error %d: %s", 42, "something went wrong")

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "error 42: something went wrong\n", buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
