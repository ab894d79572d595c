package submit

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
	"testing"

	"napt/internal/creds"
	"napt/internal/history"
	"napt/internal/napkin"
)

type fakeSender struct {
	calls    int
	lastReq  napkin.ThoughtRequest
	response *napkin.ThoughtResponse
	err      error
}

func (f *fakeSender) CreateThought(ctx context.Context, req napkin.ThoughtRequest) (*napkin.ThoughtResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeCreds struct {
	pair creds.Credentials
	err  error
}

func (f fakeCreds) Get() (creds.Credentials, error) { return f.pair, f.err }
func (f fakeCreds) Save(creds.Credentials) error    { return nil }
func (f fakeCreds) Clear() error                    { return nil }

type fakeRecorder struct {
	entries []history.Entry
	err     error
}

func (f *fakeRecorder) Record(e history.Entry) (int64, error) {
	f.entries = append(f.entries, e)
	return int64(len(f.entries)), f.err
}

var configuredCreds = fakeCreds{pair: creds.Credentials{Email: "user@example.com", Token: "tok"}}

func TestSubmit_EmptyThoughtSkipsNetwork(t *testing.T) {
	sender := &fakeSender{}
	s := New(sender, configuredCreds, nil, nil)

	for _, thought := range []string{"", "   ", "\t\n"} {
		state := s.Submit(context.Background(), thought, "x")
		if state.Phase() != PhaseError || state.Message() != MsgEmptyThought {
			t.Fatalf("Submit(%q) = %v %q, want error %q", thought, state.Phase(), state.Message(), MsgEmptyThought)
		}
	}
	if sender.calls != 0 {
		t.Fatalf("sender called %d times, want 0", sender.calls)
	}
}

func TestSubmit_MissingCredentialsSkipsNetwork(t *testing.T) {
	sender := &fakeSender{}

	for name, store := range map[string]creds.Store{
		"not configured": fakeCreds{err: creds.ErrNotConfigured},
		"partial pair":   fakeCreds{pair: creds.Credentials{Email: "user@example.com"}},
		"load failure":   fakeCreds{err: errors.New("disk on fire")},
	} {
		s := New(sender, store, nil, nil)
		state := s.Submit(context.Background(), "Idea", "")
		if state.Phase() != PhaseError || state.Message() != MsgNoCredentials {
			t.Fatalf("%s: Submit = %v %q, want error %q", name, state.Phase(), state.Message(), MsgNoCredentials)
		}
	}
	if sender.calls != 0 {
		t.Fatalf("sender called %d times, want 0", sender.calls)
	}
}

func TestSubmit_SuccessTrimsAndRecords(t *testing.T) {
	sender := &fakeSender{response: &napkin.ThoughtResponse{ThoughtID: "abc", URL: "https://app.napkin.one/t/abc"}}
	recorder := &fakeRecorder{}
	s := New(sender, configuredCreds, recorder, nil)

	state := s.Submit(context.Background(), "  Buy milk  ", "https://example.com")
	if state.Phase() != PhaseSuccess {
		t.Fatalf("Submit = %v %q, want success", state.Phase(), state.Message())
	}
	resp, ok := state.Response()
	if !ok || resp.ThoughtID != "abc" {
		t.Fatalf("Response = %#v ok=%v, want thoughtId=abc", resp, ok)
	}

	want := napkin.ThoughtRequest{Email: "user@example.com", Token: "tok", Thought: "Buy milk", SourceURL: "https://example.com"}
	if sender.lastReq != want {
		t.Fatalf("request = %#v, want %#v", sender.lastReq, want)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(recorder.entries))
	}
	e := recorder.entries[0]
	if e.ThoughtID != "abc" || e.Thought != "Buy milk" || e.SourceURL != "https://example.com" {
		t.Fatalf("recorded entry = %#v, want abc/Buy milk", e)
	}
}

func TestSubmit_RecorderFailureStillSucceeds(t *testing.T) {
	sender := &fakeSender{response: &napkin.ThoughtResponse{ThoughtID: "abc", URL: "u"}}
	recorder := &fakeRecorder{err: errors.New("db locked")}
	s := New(sender, configuredCreds, recorder, nil)

	state := s.Submit(context.Background(), "Idea", "")
	if state.Phase() != PhaseSuccess {
		t.Fatalf("Submit = %v %q, want success despite recorder failure", state.Phase(), state.Message())
	}
}

func TestSubmit_ErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"http 401", &napkin.StatusError{Code: 401}, MsgInvalidCredentials},
		{"http 403", &napkin.StatusError{Code: 403}, MsgInvalidCredentials},
		{"http 500", &napkin.StatusError{Code: 500}, MsgServerError},
		{"http 503", &napkin.StatusError{Code: 503}, MsgServerError},
		{"http 404", &napkin.StatusError{Code: 404}, MsgSendFailed},
		{"http 429", &napkin.StatusError{Code: 429}, MsgSendFailed},
		{"deadline", context.DeadlineExceeded, MsgTimeout},
		{"net timeout", &net.OpError{Op: "dial", Err: os.ErrDeadlineExceeded}, MsgTimeout},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "app.napkin.one", IsNotFound: true}, MsgOffline},
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, MsgOffline},
		{"network unreachable", &net.OpError{Op: "dial", Err: syscall.ENETUNREACH}, MsgOffline},
		{"other", errors.New("tls handshake broke"), MsgNetwork},
	}

	for _, tc := range cases {
		sender := &fakeSender{err: tc.err}
		s := New(sender, configuredCreds, nil, nil)
		state := s.Submit(context.Background(), "Idea", "")
		if state.Phase() != PhaseError || state.Message() != tc.want {
			t.Fatalf("%s: Submit = %v %q, want %q", tc.name, state.Phase(), state.Message(), tc.want)
		}
	}
}
