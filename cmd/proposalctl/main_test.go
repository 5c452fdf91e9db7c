package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"proposal_relay/internal/domain/entities"
	"proposal_relay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeForm(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFormYAML), 0o600))
	return path
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := runCLI(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "Furnace Inspection")
	assert.Contains(t, out, "250.00")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 11)
}

func TestSubmitCommand_Delivered(t *testing.T) {
	t.Setenv("WEBHOOK_MOCK", "false")

	var received entities.Proposal
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		_, _ = w.Write([]byte("OK"))
	}))
	defer upstream.Close()

	out, errOut, err := runCLI(t, "submit", "--file", writeForm(t), "--url", upstream.URL)
	require.NoError(t, err)

	assert.True(t, entities.IsProposalID(received.ProposalID))
	assert.Len(t, received.LineItems, 3)
	assert.Contains(t, out, `"proposal_id": "`+received.ProposalID+`"`)
	assert.Contains(t, errOut, usecase.NoticeSubmitted)
}

func TestSubmitCommand_Rejected(t *testing.T) {
	t.Setenv("WEBHOOK_MOCK", "false")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad data"))
	}))
	defer upstream.Close()

	out, errOut, err := runCLI(t, "submit", "--file", writeForm(t), "--url", upstream.URL)
	require.Error(t, err)

	assert.ErrorIs(t, err, usecase.ErrWebhookRejected)
	assert.Contains(t, err.Error(), "bad data")
	assert.Contains(t, out, `"line_items"`)
	assert.Contains(t, errOut, usecase.NoticeRejected)
}

func TestSubmitCommand_RequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "submit")
	assert.Error(t, err)
}
