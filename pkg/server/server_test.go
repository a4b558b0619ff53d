package server

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bleyesh/Nepali-Stemmer/pkg/catalogue"
	"github.com/bleyesh/Nepali-Stemmer/pkg/stemmer"
)

func newTestServer(t *testing.T, in io.Reader, out io.Writer) *Server {
	t.Helper()
	cat, err := catalogue.Load([]string{"हरू", "को", "ले"})
	if err != nil {
		t.Fatalf("catalogue.Load failed: %v", err)
	}
	return NewServerWithIO(stemmer.New(cat), in, out)
}

func encodeRequests(t *testing.T, reqs ...StemRequest) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, req := range reqs {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	return &buf
}

func TestServerStemRequest(t *testing.T) {
	in := encodeRequests(t,
		StemRequest{ID: "req_001", Word: "केटाहरूले"},
		StemRequest{ID: "req_002", Word: "नेपाल"},
	)
	var out bytes.Buffer

	srv := newTestServer(t, in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	dec := msgpack.NewDecoder(&out)

	var first StemResponse
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decoding first response: %v", err)
	}
	if first.ID != "req_001" || first.Root != "केटाहरू" || first.Suffix != "ले" {
		t.Errorf("first response = %+v, want केटाहरू + ले", first)
	}
	if first.TimeTaken < 0 {
		t.Errorf("negative timing: %d", first.TimeTaken)
	}

	var second StemResponse
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decoding second response: %v", err)
	}
	if second.ID != "req_002" || second.Root != "नेपाल" || second.Suffix != "" {
		t.Errorf("second response = %+v, want passthrough", second)
	}

	var extra StemResponse
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF after two responses, got %v", err)
	}
}

func TestServerMissingWord(t *testing.T) {
	in := encodeRequests(t, StemRequest{ID: "bad_001"})
	var out bytes.Buffer

	srv := newTestServer(t, in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var reply StemError
	if err := msgpack.NewDecoder(&out).Decode(&reply); err != nil {
		t.Fatalf("decoding error reply: %v", err)
	}
	if reply.ID != "bad_001" || reply.Code != 400 {
		t.Errorf("error reply = %+v, want ID bad_001 and code 400", reply)
	}
}

func TestServerEmptyStream(t *testing.T) {
	srv := newTestServer(t, bytes.NewReader(nil), io.Discard)
	if err := srv.Start(); err != nil {
		t.Errorf("Start on an empty stream = %v, want nil", err)
	}
}
