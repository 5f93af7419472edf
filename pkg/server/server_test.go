package server

import (
	"bytes"
	"testing"

	"acrostic/pkg/config"
	"acrostic/pkg/dictionary"
	"acrostic/pkg/index"
	"acrostic/pkg/trietable"

	"github.com/vmihailenco/msgpack/v5"
)

func buildTestServer(t *testing.T, in *bytes.Buffer, out *bytes.Buffer) *Server {
	t.Helper()
	words := []dictionary.Word{
		dictionary.NewWord("catnip", 900),
		dictionary.NewWord("napkin", 800),
	}
	d := &dictionary.Dictionary{Words: words}

	dir := t.TempDir()
	if err := index.Build(dir, d, nil); err != nil {
		t.Fatalf("index.Build: %v", err)
	}
	table, err := trietable.New(dir)
	if err != nil {
		t.Fatalf("trietable.New: %v", err)
	}
	t.Cleanup(func() { table.Close() })

	cfg := config.DefaultConfig()
	return NewServerIO(table, d, cfg, in, out)
}

func TestProcessRequestSolvesAndEncodesResponse(t *testing.T) {
	var in, out bytes.Buffer
	if err := msgpack.NewEncoder(&in).Encode(&SolveRequest{
		ID:           "req1",
		QuoteLetters: "CATNIP",
		Attribution:  "C",
		Seed:         1,
		Concurrency:  2,
	}); err != nil {
		t.Fatalf("encoding request: %v", err)
	}

	s := buildTestServer(t, &in, &out)
	if err := s.processRequest(); err != nil {
		t.Fatalf("processRequest: %v", err)
	}

	var resp SolveResponse
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "req1" {
		t.Fatalf("resp.ID = %q, want req1", resp.ID)
	}
	if len(resp.Words) != 1 || resp.Words[0] != "catnip" {
		t.Fatalf("resp.Words = %v, want [catnip]", resp.Words)
	}
}

func TestProcessRequestRejectsEmptyQuoteLetters(t *testing.T) {
	var in, out bytes.Buffer
	if err := msgpack.NewEncoder(&in).Encode(&SolveRequest{ID: "req2"}); err != nil {
		t.Fatalf("encoding request: %v", err)
	}

	s := buildTestServer(t, &in, &out)
	if err := s.processRequest(); err != nil {
		t.Fatalf("processRequest: %v", err)
	}

	var resp SolveError
	if err := msgpack.NewDecoder(&out).Decode(&resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.ID != "req2" {
		t.Fatalf("resp.ID = %q, want req2", resp.ID)
	}
}
