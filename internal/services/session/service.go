package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/common/clock"
	"github.com/drinkwise/drinkwise/internal/models"
	draftrepo "github.com/drinkwise/drinkwise/internal/repositories/draft"
	partyrepo "github.com/drinkwise/drinkwise/internal/repositories/party"
	"github.com/drinkwise/drinkwise/internal/services/progression"
)

// Default tuning when the config leaves them zero
const (
	defaultAutosaveInterval  = 10 * time.Second
	defaultReopenSuppression = 2 * time.Minute
)

// Config holds dependencies for the session service
type Config struct {
	DraftRepo   draftrepo.Repository
	PartyRepo   partyrepo.Repository
	Progression progression.Service
	Clock       clock.Clock
	Logger      *zap.SugaredLogger

	// AutosaveInterval is the cadence of background draft persists
	AutosaveInterval time.Duration

	// ReopenSuppression is how long after a close Resume refuses to
	// rehydrate, shielding against stale autosaves from other devices
	ReopenSuppression time.Duration
}

// session is one user's live draft plus its autosave loop. All field
// access goes through mu.
type session struct {
	mu    sync.Mutex
	draft *models.Draft
	stop  chan struct{}
}

type service struct {
	draftRepo   draftrepo.Repository
	partyRepo   partyrepo.Repository
	progression progression.Service
	clock       clock.Clock
	log         *zap.SugaredLogger

	autosaveInterval  time.Duration
	reopenSuppression time.Duration

	mu         sync.Mutex
	sessions   map[string]*session
	suppressed map[string]time.Time
	wg         sync.WaitGroup
	closed     bool
}

// NewService creates a new session service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DraftRepo == nil {
		return nil, errors.New("draft repository cannot be nil")
	}
	if cfg.PartyRepo == nil {
		return nil, errors.New("party repository cannot be nil")
	}
	if cfg.Progression == nil {
		return nil, errors.New("progression service cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.AutosaveInterval <= 0 {
		cfg.AutosaveInterval = defaultAutosaveInterval
	}
	if cfg.ReopenSuppression <= 0 {
		cfg.ReopenSuppression = defaultReopenSuppression
	}

	return &service{
		draftRepo:         cfg.DraftRepo,
		partyRepo:         cfg.PartyRepo,
		progression:       cfg.Progression,
		clock:             cfg.Clock,
		log:               cfg.Logger,
		autosaveInterval:  cfg.AutosaveInterval,
		reopenSuppression: cfg.ReopenSuppression,
		sessions:          make(map[string]*session),
		suppressed:        make(map[string]time.Time),
	}, nil
}

func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	s.mu.Lock()
	if _, active := s.sessions[input.UserID]; active {
		s.mu.Unlock()
		return nil, ErrSessionActive
	}

	now := s.clock.Now()
	sess := &session{
		draft: &models.Draft{
			UserID:    input.UserID,
			StartTime: now,
			Events:    map[string]int{},
			Status:    models.DraftStatusDraft,
			LastSaved: now,
		},
		stop: make(chan struct{}),
	}
	s.sessions[input.UserID] = sess
	delete(s.suppressed, input.UserID)
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.draftRepo.SaveDraft(ctx, &draftrepo.SaveDraftInput{Draft: sess.draft}); err != nil {
		s.dropSession(input.UserID)
		return nil, fmt.Errorf("failed to persist draft: %w", err)
	}

	s.spawnAutosave(input.UserID, sess)
	s.log.Infow("party session started", "user_id", input.UserID)

	return &StartOutput{Draft: snapshot(sess.draft)}, nil
}

func (s *service) Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	s.mu.Lock()
	if sess, active := s.sessions[input.UserID]; active {
		s.mu.Unlock()
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return &ResumeOutput{Draft: snapshot(sess.draft)}, nil
	}

	if until, ok := s.suppressed[input.UserID]; ok {
		if s.clock.Now().Before(until) {
			s.mu.Unlock()
			return nil, ErrNoSession
		}
		delete(s.suppressed, input.UserID)
	}
	s.mu.Unlock()

	draft, err := s.draftRepo.GetDraft(ctx, &draftrepo.GetDraftInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, draftrepo.ErrDraftNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	s.mu.Lock()
	if existing, active := s.sessions[input.UserID]; active {
		// Raced with another resume or start
		s.mu.Unlock()
		existing.mu.Lock()
		defer existing.mu.Unlock()
		return &ResumeOutput{Draft: snapshot(existing.draft)}, nil
	}

	sess := &session{draft: draft, stop: make(chan struct{})}
	s.sessions[input.UserID] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.spawnAutosave(input.UserID, sess)
	s.log.Infow("party session resumed", "user_id", input.UserID)

	return &ResumeOutput{Draft: snapshot(sess.draft)}, nil
}

func (s *service) AddDrink(ctx context.Context, input *AddDrinkInput) (*DraftSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}
	if input.Type == "" || input.Quantity <= 0 {
		return nil, ErrInvalidDrink
	}

	return s.mutate(ctx, input.UserID, func(d *models.Draft) {
		for _, entry := range d.Drinks {
			if entry.Type == input.Type {
				entry.Quantity += input.Quantity
				if input.Brand != "" {
					entry.Brand = input.Brand
				}
				return
			}
		}
		d.Drinks = append(d.Drinks, &models.DrinkEntry{
			Type:     input.Type,
			Brand:    input.Brand,
			Quantity: input.Quantity,
			AddedAt:  s.clock.Now(),
		})
	})
}

func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*DraftSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}
	if input.Type == "" || input.Quantity <= 0 {
		return nil, ErrInvalidDrink
	}

	return s.mutate(ctx, input.UserID, func(d *models.Draft) {
		for i, entry := range d.Drinks {
			if entry.Type != input.Type {
				continue
			}
			entry.Quantity -= input.Quantity
			if entry.Quantity <= 0 {
				d.Drinks = append(d.Drinks[:i], d.Drinks[i+1:]...)
			}
			return
		}
	})
}

func (s *service) AddEvent(ctx context.Context, input *AddEventInput) (*DraftSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}
	if input.Name == "" {
		return nil, errors.New("event name cannot be empty")
	}

	delta := input.Delta
	if delta == 0 {
		delta = 1
	}

	return s.mutate(ctx, input.UserID, func(d *models.Draft) {
		if d.Events == nil {
			d.Events = map[string]int{}
		}
		d.Events[input.Name] += delta
		if d.Events[input.Name] < 0 {
			d.Events[input.Name] = 0
		}
	})
}

func (s *service) SetDetails(ctx context.Context, input *SetDetailsInput) (*DraftSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return s.mutate(ctx, input.UserID, func(d *models.Draft) {
		if input.Location != "" {
			d.Location = input.Location
		}
		if input.Category != "" {
			d.Category = input.Category
		}
		if input.Notes != "" {
			d.Notes = input.Notes
		}
	})
}

func (s *service) Get(ctx context.Context, input *GetInput) (*DraftSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sess := s.lookup(input.UserID)
	if sess == nil {
		return nil, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess.draft), nil
}

func (s *service) Discard(ctx context.Context, input *DiscardInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	sess := s.lookup(input.UserID)
	if sess == nil {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.draftRepo.DeleteDraft(ctx, &draftrepo.DeleteDraftInput{UserID: input.UserID}); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	s.closeSession(input.UserID, sess)
	s.log.Infow("party session discarded", "user_id", input.UserID)
	return nil
}

func (s *service) Finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	sess := s.lookup(input.UserID)
	if sess == nil {
		return nil, nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	party := partyFromDraft(sess.draft, input, s.clock.Now())

	// The party must be durable before the draft disappears; crashing
	// between the two leaves a stale draft, never a lost party.
	created, err := s.partyRepo.CreateParty(ctx, &partyrepo.CreatePartyInput{Party: party})
	if err != nil {
		return nil, fmt.Errorf("failed to persist party: %w", err)
	}

	if err := s.draftRepo.DeleteDraft(ctx, &draftrepo.DeleteDraftInput{UserID: input.UserID}); err != nil {
		return nil, fmt.Errorf("failed to delete draft: %w", err)
	}

	s.closeSession(input.UserID, sess)

	recorded, err := s.progression.RecordParty(ctx, &progression.RecordPartyInput{
		Party:    created.Party,
		Username: input.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record party: %w", err)
	}

	s.log.Infow("party session finalized",
		"user_id", input.UserID,
		"party_id", created.Party.ID,
		"drinks", created.Party.TotalDrinks(),
	)

	return &FinalizeOutput{
		Party:       created.Party,
		Progression: recorded,
	}, nil
}

func (s *service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, sess := range s.sessions {
		close(sess.stop)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// mutate applies fn to the live draft and persists the result before
// returning, so acknowledged mutations are durable in submission
// order.
func (s *service) mutate(ctx context.Context, userID string, fn func(*models.Draft)) (*DraftSnapshot, error) {
	sess := s.lookup(userID)
	if sess == nil {
		return nil, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess.draft)
	sess.draft.LastSaved = s.clock.Now()

	if err := s.draftRepo.UpdateDraft(ctx, &draftrepo.UpdateDraftInput{Draft: sess.draft}); err != nil {
		if errors.Is(err, draftrepo.ErrDraftNotFound) {
			// The draft was closed from elsewhere; drop local state
			s.closeSession(userID, sess)
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to persist draft: %w", err)
	}

	return snapshot(sess.draft), nil
}

func (s *service) lookup(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// closeSession removes the session and arms the resume suppression
// window. Callers hold sess.mu.
func (s *service) closeSession(userID string, sess *session) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.suppressed[userID] = s.clock.Now().Add(s.reopenSuppression)
	s.mu.Unlock()

	select {
	case <-sess.stop:
	default:
		close(sess.stop)
	}
}

// dropSession removes a session that never persisted, without arming
// the suppression window.
func (s *service) dropSession(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// spawnAutosave starts the periodic persist loop for a session.
func (s *service) spawnAutosave(userID string, sess *session) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.autosaveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-sess.stop:
				return
			case <-ticker.C:
				s.autosave(userID, sess)
			}
		}
	}()
}

func (s *service) autosave(userID string, sess *session) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	select {
	case <-sess.stop:
		return
	default:
	}

	sess.draft.LastSaved = s.clock.Now()
	err := s.draftRepo.UpdateDraft(ctx, &draftrepo.UpdateDraftInput{Draft: sess.draft})
	if err == nil {
		return
	}

	if errors.Is(err, draftrepo.ErrDraftNotFound) {
		// Closed from another device between ticks
		s.log.Infow("draft gone, stopping autosave", "user_id", userID)
		s.closeSession(userID, sess)
		return
	}

	// Transient store trouble; the next tick retries
	s.log.Errorw("autosave failed", "user_id", userID, "error", err)
}

func partyFromDraft(d *models.Draft, input *FinalizeInput, now time.Time) *models.Party {
	location := d.Location
	if input.Location != "" {
		location = input.Location
	}
	category := d.Category
	if input.Category != "" {
		category = input.Category
	}
	notes := d.Notes
	if input.Notes != "" {
		notes = input.Notes
	}

	drinks := make([]*models.DrinkEntry, len(d.Drinks))
	for i, entry := range d.Drinks {
		copied := *entry
		drinks[i] = &copied
	}

	events := make(map[string]int, len(d.Events))
	for name, count := range d.Events {
		events[name] = count
	}

	return &models.Party{
		UserID:        d.UserID,
		StartTime:     d.StartTime,
		EndTime:       now,
		Drinks:        drinks,
		Events:        events,
		Location:      location,
		Category:      category,
		Notes:         notes,
		Description:   input.Description,
		Photos:        input.Photos,
		Companions:    input.Companions,
		Mood:          input.Mood,
		TransportMode: input.TransportMode,
	}
}

func snapshot(d *models.Draft) *DraftSnapshot {
	drinks := make([]models.DrinkEntry, len(d.Drinks))
	for i, entry := range d.Drinks {
		drinks[i] = *entry
	}

	events := make(map[string]int, len(d.Events))
	for name, count := range d.Events {
		events[name] = count
	}

	return &DraftSnapshot{
		UserID:    d.UserID,
		StartTime: d.StartTime,
		Drinks:    drinks,
		Events:    events,
		Location:  d.Location,
		Category:  d.Category,
		Notes:     d.Notes,
		LastSaved: d.LastSaved,
	}
}
