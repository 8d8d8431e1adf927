// Where: internal/app/cloud_test.go
// What: Tests for the cloud provisioning sequence.
// Why: Pin the best-effort failure policy and descriptor persistence.
package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wefthq/create-weft-app/internal/cloud"
	"github.com/wefthq/create-weft-app/internal/config"
	"github.com/wefthq/create-weft-app/internal/meta"
	"github.com/wefthq/create-weft-app/internal/ui"
)

const validConfigBody = `{"projectDefaults":{"plan":"trial","region":"eu-west"}}`

type savedProject struct {
	path  string
	entry config.ProjectEntry
	saved bool
}

func cloudTestDeps(prompter *fakePrompter, server *httptest.Server, token string, saved *savedProject) Dependencies {
	return Dependencies{
		Prompter:   prompter,
		IsTerminal: func() bool { return true },
		Cloud: CloudDeps{
			APIBase:            server.URL,
			NewClient:          cloud.New,
			NewClientWithToken: cloud.NewWithToken,
			Tokens: cloud.TokenStore{
				Load: func() (string, error) { return token, nil },
				Save: func(string) error { return nil },
				Now:  time.Now,
			},
			Login: func(context.Context, *cloud.Client, func(cloud.DeviceAuth)) (string, error) {
				return "", nil
			},
			SaveProject: func(path string, entry config.ProjectEntry) error {
				saved.path = path
				saved.entry = entry
				saved.saved = true
				return nil
			},
			Spin: func(_ string, action func()) error {
				action()
				return nil
			},
		},
	}
}

func TestProvisionConfigFetchFailureShowsNoLoginPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	prompter := &fakePrompter{}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)
	out := &bytes.Buffer{}
	console := ui.New(out)

	err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, console)
	if err != nil {
		t.Fatalf("expected contained failure, got %v", err)
	}
	if len(prompter.selectTitles) != 0 {
		t.Fatalf("expected no login prompt, got %v", prompter.selectTitles)
	}
	if !strings.Contains(out.String(), cloud.DefaultErrorMessage) {
		t.Fatalf("expected generic warning, got %q", out.String())
	}
	if saved.saved {
		t.Fatalf("descriptor must not be persisted")
	}
}

func TestProvisionOffersLoginAfterConfigFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	}))
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceSkip}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)

	err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompter.selectTitles) != 1 {
		t.Fatalf("expected the login offer after a successful config fetch, got %v", prompter.selectTitles)
	}
}

func TestProvisionSkipChoice(t *testing.T) {
	var projectCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(http.ResponseWriter, *http.Request) {
		projectCalls++
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceSkip}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)

	err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if projectCalls != 0 {
		t.Fatalf("expected no project creation, got %d calls", projectCalls)
	}
	if saved.saved {
		t.Fatalf("descriptor must not be persisted")
	}
}

func TestProvisionForbiddenUsesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Trial limit reached."}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)
	out := &bytes.Buffer{}

	err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(out))
	if err != nil {
		t.Fatalf("expected contained failure, got %v", err)
	}
	if !strings.Contains(out.String(), "Trial limit reached.") {
		t.Fatalf("expected server message, got %q", out.String())
	}
	if saved.saved {
		t.Fatalf("descriptor must not be persisted on 403")
	}
}

func TestProvisionForbiddenFallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)
	out := &bytes.Buffer{}

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(out)); err != nil {
		t.Fatalf("expected contained failure, got %v", err)
	}
	if !strings.Contains(out.String(), cloud.ForbiddenMessage) {
		t.Fatalf("expected fallback message, got %q", out.String())
	}
}

func TestProvisionSuccessPersistsDescriptor(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Fatalf("unexpected auth header: %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"id":"proj_7","name":"myapp","plan":"trial","region":"eu-west","createdAt":"2026-08-31T10:00:00Z"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)
	out := &bytes.Buffer{}

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(out)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved.saved {
		t.Fatalf("expected descriptor to be persisted")
	}
	if saved.path != "/work/myapp" {
		t.Fatalf("unexpected key: %q", saved.path)
	}
	if saved.entry.ID != "proj_7" || saved.entry.Name != "myapp" {
		t.Fatalf("unexpected entry: %#v", saved.entry)
	}
	if !strings.Contains(out.String(), meta.DashboardURL) {
		t.Fatalf("expected dashboard pointer, got %q", out.String())
	}
}

func TestProvisionSpinnerFailureKeepsCreatedProject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"proj_9","name":"myapp"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)
	deps.Cloud.Spin = func(_ string, action func()) error {
		action()
		return context.Canceled
	}

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved.saved {
		t.Fatalf("expected descriptor persisted despite spinner failure")
	}
	if saved.entry.ID != "proj_9" {
		t.Fatalf("unexpected entry: %#v", saved.entry)
	}
}

func TestProvisionLoginFlowPersistsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"proj_8","name":"myapp"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "", saved)

	var persisted string
	deps.Cloud.Tokens.Save = func(token string) error {
		persisted = token
		return nil
	}
	deps.Cloud.Login = func(context.Context, *cloud.Client, func(cloud.DeviceAuth)) (string, error) {
		return "tok-fresh", nil
	}

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted != "tok-fresh" {
		t.Fatalf("expected fresh token persisted, got %q", persisted)
	}
	if !saved.saved {
		t.Fatalf("expected descriptor persisted after login")
	}
}

func TestProvisionLoginDeclinedIsSilent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selects: []string{cloudChoiceLogin}}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "", saved)
	deps.Cloud.Login = func(context.Context, *cloud.Client, func(cloud.DeviceAuth)) (string, error) {
		return "", cloud.ErrLoginDeclined
	}

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{})); err != nil {
		t.Fatalf("declined login must not fail the run, got %v", err)
	}
	if saved.saved {
		t.Fatalf("descriptor must not be persisted")
	}
}

func TestProvisionPromptCancellationIsFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(validConfigBody))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	prompter := &fakePrompter{selectErr: context.Canceled}
	saved := &savedProject{}
	deps := cloudTestDeps(prompter, server, "tok", saved)

	if err := provisionCloudProject(context.Background(), "myapp", "/work/myapp", deps, ui.New(&bytes.Buffer{})); err == nil {
		t.Fatalf("expected cancelled prompt to propagate")
	}
}
