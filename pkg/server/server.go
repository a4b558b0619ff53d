package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bleyesh/Nepali-Stemmer/pkg/stemmer"
)

// Server handles the IPC for stemming requests
type Server struct {
	stemmer *stemmer.Stemmer
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a stemming server using stdin/stdout for IPC
func NewServer(s *stemmer.Stemmer) *Server {
	return NewServerWithIO(s, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over the given streams, used by tests.
func NewServerWithIO(s *stemmer.Stemmer, r io.Reader, w io.Writer) *Server {
	return &Server{
		stemmer: s,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting stem server.")

	for {
		var request StemRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// A broken msgpack stream cannot be resynchronized.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return err
		}
		s.handleStem(request)
	}
}

// handleStem processes one stemming request and writes the reply.
func (s *Server) handleStem(request StemRequest) {
	if request.Word == "" {
		s.sendError(request.ID, "missing 'w' field", 400)
		log.Debug("Word is empty in request", "id", request.ID)
		return
	}

	start := time.Now()
	result, err := s.stemmer.Stem(request.Word)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 422)
		return
	}

	s.send(StemResponse{
		ID:        request.ID,
		Root:      result.Root,
		Suffix:    result.Suffix,
		TimeTaken: elapsed.Microseconds(),
	})
}

// send encodes a reply onto the output stream.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error reply
func (s *Server) sendError(id, message string, code int) {
	s.send(StemError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
