package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/medicare-web/internal/backend"
	"github.com/odyssey-erp/medicare-web/internal/shared"
)

// State is the position of a session in the route guard's state machine.
type State int

const (
	// StateLoading is the unresolved state before restoration completes.
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

// verifiedKey holds the boot id of the process that last accepted the
// stored credential.
const verifiedKey = "verified_boot"

// DefaultProbeCompany is the company id sent with the restoration probe.
const DefaultProbeCompany = "test"

// Prober issues the trial request that proves a stored credential is live.
type Prober interface {
	DashboardSummary(ctx context.Context, token, companyID string) (*backend.DashboardSummary, error)
}

// StoreConfig tunes the session store.
type StoreConfig struct {
	ProbeCompany    string
	FallbackCompany string
}

// Store keeps the signed-in identity and credential in the browser session.
type Store struct {
	logger   *slog.Logger
	prober   Prober
	sessions *shared.SessionManager
	cfg      StoreConfig
	bootID   string
	now      func() time.Time
}

// NewStore constructs a Store. Each Store has its own boot id, so a restart
// re-verifies every stored credential once.
func NewStore(logger *slog.Logger, prober Prober, sessions *shared.SessionManager, cfg StoreConfig) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ProbeCompany == "" {
		cfg.ProbeCompany = DefaultProbeCompany
	}
	if cfg.FallbackCompany == "" {
		cfg.FallbackCompany = DefaultFallbackCompany
	}
	return &Store{
		logger:   logger,
		prober:   prober,
		sessions: sessions,
		cfg:      cfg,
		bootID:   uuid.NewString(),
		now:      time.Now,
	}
}

// Login records identity and token in the session and marks it verified.
func (s *Store) Login(sess *shared.Session, identity Identity, token string) error {
	if sess == nil {
		return shared.ErrSessionMissing
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	s.sessions.Renew(sess)
	sess.Set(TokenKey, token)
	sess.Set(UserKey, string(raw))
	sess.Set(verifiedKey, s.bootID)
	sess.SetUser(identity.Key())
	return nil
}

// Logout forgets the identity and credential. The backend is not contacted.
func (s *Store) Logout(sess *shared.Session) {
	if sess == nil {
		return
	}
	sess.Delete(TokenKey, UserKey, verifiedKey)
	sess.SetUser("")
	s.sessions.Renew(sess)
}

// Restore resolves the session's state. A stored credential is checked
// against the backend once per process; on any failure the session is
// silently logged out. The identity is always the stored one.
func (s *Store) Restore(ctx context.Context, sess *shared.Session) (State, *Principal) {
	if sess == nil {
		return StateUnauthenticated, nil
	}
	token := sess.Get(TokenKey)
	if token == "" {
		return StateUnauthenticated, nil
	}

	identity, err := IdentityFromJSON([]byte(sess.Get(UserKey)))
	if err != nil {
		s.logger.Warn("stored identity unreadable", slog.Any("error", err))
		s.clear(sess)
		return StateUnauthenticated, nil
	}

	if sess.Get(verifiedKey) != s.bootID {
		if tokenExpired(token, s.now()) {
			s.logger.Info("stored credential expired")
			s.clear(sess)
			return StateUnauthenticated, nil
		}
		if _, err := s.prober.DashboardSummary(ctx, token, s.cfg.ProbeCompany); err != nil {
			s.logger.Info("stored credential rejected", slog.Any("error", err))
			s.clear(sess)
			return StateUnauthenticated, nil
		}
		sess.Set(verifiedKey, s.bootID)
	}

	return StateAuthenticated, NewPrincipal(identity, token, s.cfg.FallbackCompany)
}

func (s *Store) clear(sess *shared.Session) {
	sess.Delete(TokenKey, UserKey, verifiedKey)
	sess.SetUser("")
}
