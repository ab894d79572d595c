package submit

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"napt/internal/creds"
	"napt/internal/history"
	"napt/internal/napkin"
)

// User-facing outcome messages. Failures never surface raw errors; they are
// classified into one of these fixed strings at this boundary.
const (
	MsgEmptyThought       = "Please enter a thought"
	MsgNoCredentials      = "Please configure credentials in settings"
	MsgInvalidCredentials = "Invalid credentials. Please check your settings."
	MsgServerError        = "Server error. Please try again later."
	MsgSendFailed         = "Failed to send thought. Please try again."
	MsgOffline            = "No internet connection. Please check your network."
	MsgTimeout            = "Request timed out. Please try again."
	MsgNetwork            = "Network error. Please try again."
)

// Recorder persists a record of a successful send. *history.Store implements
// it; tests substitute fakes.
type Recorder interface {
	Record(e history.Entry) (int64, error)
}

// Submitter validates input, loads credentials, issues the createThought
// call, and maps every outcome to a RequestState.
type Submitter struct {
	sender   napkin.ThoughtSender
	creds    creds.Store
	recorder Recorder
	log      *slog.Logger
}

// New builds a Submitter. recorder may be nil to skip history; log may be
// nil to discard logs.
func New(sender napkin.ThoughtSender, store creds.Store, recorder Recorder, log *slog.Logger) *Submitter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Submitter{sender: sender, creds: store, recorder: recorder, log: log}
}

// Submit sends one thought. Validation failures return an Error state
// without touching the network. The returned state is always Success or
// Error; the caller owns rendering Loading while the call is in flight.
func (s *Submitter) Submit(ctx context.Context, thoughtText, sourceURLText string) RequestState {
	thought := strings.TrimSpace(thoughtText)
	if thought == "" {
		return Failed(MsgEmptyThought)
	}

	pair, err := s.creds.Get()
	if err != nil || !pair.Configured() {
		if err != nil && !errors.Is(err, creds.ErrNotConfigured) {
			s.log.Error("credential load failed", "error", err)
		}
		return Failed(MsgNoCredentials)
	}

	id := uuid.NewString()
	log := s.log.With("submission_id", id)
	log.Info("submitting thought", "thought_len", len(thought), "has_source", sourceURLText != "")

	resp, err := s.sender.CreateThought(ctx, napkin.ThoughtRequest{
		Email:     pair.Email,
		Token:     pair.Token,
		Thought:   thought,
		SourceURL: sourceURLText,
	})
	if err != nil {
		msg := classify(err)
		log.Warn("submission failed", "error", err, "user_message", msg)
		return Failed(msg)
	}

	log.Info("submission succeeded", "thought_id", resp.ThoughtID)
	if s.recorder != nil {
		_, recErr := s.recorder.Record(history.Entry{
			ThoughtID: resp.ThoughtID,
			URL:       resp.URL,
			Thought:   thought,
			SourceURL: sourceURLText,
			SentAt:    time.Now().UTC(),
		})
		if recErr != nil {
			// History is a convenience record; its failure never fails a send.
			log.Warn("history record failed", "error", recErr)
		}
	}
	return Succeeded(*resp)
}

// classify maps an error from the client into a fixed user-safe message.
// HTTP statuses are authoritative; transport failures are split into
// timeout, no-connectivity, and everything else.
func classify(err error) string {
	var statusErr *napkin.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == 401 || statusErr.Code == 403:
			return MsgInvalidCredentials
		case statusErr.Code >= 500:
			return MsgServerError
		default:
			return MsgSendFailed
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return MsgTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return MsgOffline
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
		syscall.ENETDOWN,
	} {
		if errors.Is(err, errno) {
			return MsgOffline
		}
	}

	return MsgNetwork
}
