package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"acrostic/pkg/config"
	"acrostic/pkg/dictionary"
	"acrostic/pkg/letter"
	"acrostic/pkg/search"
	"acrostic/pkg/trietable"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server keeps a dictionary, trie table, and solver resident in memory and
// answers solve requests read as MessagePack from stdin.
type Server struct {
	search *search.Search
	config *config.Config

	decoder    *msgpack.Decoder
	out        io.Writer
	writeMutex sync.Mutex

	requestCount int64
}

// NewServer builds a server around an already-loaded trie table and
// dictionary, reading requests from stdin and writing responses to stdout.
func NewServer(table *trietable.Table, dict *dictionary.Dictionary, cfg *config.Config) *Server {
	return NewServerIO(table, dict, cfg, os.Stdin, os.Stdout)
}

// NewServerIO builds a server over explicit reader/writer endpoints,
// letting tests drive the request loop without touching os.Stdin/Stdout.
func NewServerIO(table *trietable.Table, dict *dictionary.Dictionary, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	return &Server{
		search:  search.New(table, dict, &cfg.Solver),
		config:  cfg,
		decoder: msgpack.NewDecoder(in),
		out:     out,
	}
}

// errDecode marks a request that could not be decoded from the input stream.
var errDecode = errors.New("server: decoding request")

// Start runs the request loop until stdin is closed or a fatal decode error
// occurs.
func (s *Server) Start() error {
	log.Debug("starting msgpack solve daemon")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			if errors.Is(err, errDecode) {
				return err
			}
			log.Errorf("solve request failed: %v", err)
			continue
		}
	}
}

func (s *Server) processRequest() error {
	var req SolveRequest
	if err := s.decoder.Decode(&req); err != nil {
		if err == io.EOF {
			return err
		}
		return fmt.Errorf("%w: %v", errDecode, err)
	}
	s.requestCount++

	if req.QuoteLetters == "" {
		return s.sendError(req.ID, "empty quote_letters")
	}

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = s.config.Server.DefaultConcurrency
	}

	timeout := time.Duration(s.config.Server.RequestTimeoutSec) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	var attribution []letter.Letter
	for i := 0; i < len(req.Attribution); i++ {
		attribution = append(attribution, letter.New(req.Attribution[i]))
	}
	quote := letter.FromString(req.QuoteLetters)

	sol, err := s.search.Solve(ctx, quote, attribution, req.Seed, concurrency)
	if err != nil {
		return s.sendError(req.ID, err.Error())
	}

	words, ok := s.search.Materialize(sol)
	if !ok {
		return s.sendError(req.ID, "solution could not be materialized against the dictionary")
	}

	spellings := make([]string, len(words))
	for i, w := range words {
		spellings[i] = w.Spelling
	}

	return s.sendResponse(&SolveResponse{
		ID:     req.ID,
		Words:  spellings,
		TimeMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) sendResponse(v any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string) error {
	return s.sendResponse(&SolveError{ID: id, Error: message})
}
