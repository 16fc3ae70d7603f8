package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/byetz/internal/api"
	"github.com/desertthunder/byetz/internal/shared"
	tu "github.com/desertthunder/byetz/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			client := api.New("http://localhost:9", httpClient, nil, logger)

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Client:     client,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.client != client {
				t.Error("expected client to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil client builds one from config", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.client == nil {
				t.Fatal("expected a client to be built")
			}
			if runner.client.BaseURL() != shared.DefaultConfig().API.BaseURL {
				t.Errorf("expected client bound to config base URL, got %s", runner.client.BaseURL())
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if result := output.String(); result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Fatal("expected registered commands")
		}

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "auth", "feed", "taste", "settings", "profile", "library", "browse"} {
			if !names[want] {
				t.Errorf("expected %s command registered", want)
			}
		}
	})
}

// newBackedRunner builds a Runner whose client talks to the given handler.
func newBackedRunner(t *testing.T, handler http.HandlerFunc) (*Runner, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	output := &bytes.Buffer{}
	logger := shared.NewLogger(io.Discard)
	runner := NewRunner(RunnerOpts{
		Client: api.New(server.URL, nil, nil, logger),
		Logger: logger,
		Output: output,
	})
	return runner, output
}

func runCommand(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "byetz",
		Commands: runner.register(),
	}
	return app.Run(context.Background(), append([]string{"byetz"}, args...))
}

func TestActions(t *testing.T) {
	t.Run("feed page renders clip lines", func(t *testing.T) {
		runner, output := newBackedRunner(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/feed" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"clips":[{"title":"The Long Walk","duration_ms":95000,"season_episode":"S01E03"}],"has_more":true}`))
		})

		if err := runCommand(t, runner, "feed", "page"); err != nil {
			t.Fatal(err)
		}

		text := output.String()
		if !strings.Contains(text, "The Long Walk") || !strings.Contains(text, "[1:35]") {
			t.Errorf("expected rendered clip line, got:\n%s", text)
		}
		if !strings.Contains(text, "--offset 1") {
			t.Errorf("expected next-page hint, got:\n%s", text)
		}
	})

	t.Run("settings show renders the record", func(t *testing.T) {
		runner, output := newBackedRunner(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"clip_quality":"720p","content_maturity_filter":"all","subtitle_overlay":true,"notifications_enabled":false}`))
		})

		if err := runCommand(t, runner, "settings", "show"); err != nil {
			t.Fatal(err)
		}

		text := output.String()
		if !strings.Contains(text, "720p") || !strings.Contains(text, "Subtitle overlay:  on") {
			t.Errorf("expected rendered settings, got:\n%s", text)
		}
	})

	t.Run("settings set pushes merged record", func(t *testing.T) {
		var putBody []byte
		runner, output := newBackedRunner(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPut {
				putBody, _ = io.ReadAll(r.Body)
			}
			w.Write([]byte(`{"clip_quality":"480p","content_maturity_filter":"all"}`))
		})

		if err := runCommand(t, runner, "settings", "set", "--quality", "480p"); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(string(putBody), `"clip_quality":"480p"`) {
			t.Errorf("expected merged record in PUT body, got %s", putBody)
		}
		if !strings.Contains(output.String(), "Settings saved") {
			t.Errorf("expected confirmation, got %s", output.String())
		}
	})

	t.Run("profile show renders totals", func(t *testing.T) {
		runner, output := newBackedRunner(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"plex_username":"thorn","total_likes":3,"total_saves":1,"total_clips_watched":42}`))
		})

		if err := runCommand(t, runner, "profile", "show"); err != nil {
			t.Fatal(err)
		}

		text := output.String()
		if !strings.Contains(text, "thorn") || !strings.Contains(text, "Clips watched:  42") {
			t.Errorf("expected rendered profile, got:\n%s", text)
		}
	})

	t.Run("library status renders sections", func(t *testing.T) {
		runner, output := newBackedRunner(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"server_name":"den","server_reachable":true,"libraries":[{"library_title":"Movies","library_type":"movie","enabled":true,"total_items":100,"processed_items":40,"processing_percentage":40.0}]}`))
		})

		if err := runCommand(t, runner, "library", "status"); err != nil {
			t.Fatal(err)
		}

		text := output.String()
		if !strings.Contains(text, "den") || !strings.Contains(text, "40/100") {
			t.Errorf("expected rendered library status, got:\n%s", text)
		}
	})
}
