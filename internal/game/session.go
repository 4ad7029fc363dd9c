package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/score"
	"github.com/vovakirdan/wordfall/internal/words"
)

// Session is one player's game: the live words, the typed input, the
// timers and the round flags. It is not safe for concurrent use; a single
// driver goroutine calls Update and HandleInput.
type Session struct {
	field   config.Field
	table   config.DifficultyTable
	catalog *words.Catalog
	planner *Planner
	keeper  *score.Keeper
	clock   Clock
	logger  *log.Logger

	words      []*FallingWord
	activeWord *FallingWord
	input      string
	nextSeq    uint64

	started  bool
	paused   bool
	gameOver bool
	active   bool

	elapsed   time.Duration // Accrued play time, paused spans excluded
	startTime time.Time
	lastSpawn time.Time
	lastTick  time.Time // Reference for the next frame delta; zero until started

	wordsTyped    int
	level         config.Level
	fallSpeed     float64
	spawnInterval time.Duration

	speed        int // Final WPM, set on game over
	newHighScore bool
	result       *Result
	events       []Event
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithSeed makes word choice and placement reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.planner = NewPlanner(rand.New(rand.NewSource(seed)))
	}
}

// NewSession creates a session at cfg.DefaultLevel. The catalog supplies
// words and the keeper holds the best scores.
func NewSession(cfg config.Config, catalog *words.Catalog, keeper *score.Keeper, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || keeper == nil {
		return nil, fmt.Errorf("game: session needs a word catalog and a score keeper")
	}
	s := &Session{
		field:   cfg.Field,
		table:   cfg.Difficulty,
		catalog: catalog,
		keeper:  keeper,
		clock:   SystemClock(),
		logger:  log.New(io.Discard),
		level:   cfg.DefaultLevel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.planner == nil {
		s.planner = NewPlanner(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	now := s.clock.Now()
	s.startTime = now
	s.lastSpawn = now
	if err := s.applyDifficulty(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the round. Every call clears the words and input and
// restarts the timers; only the first call on a fresh round marks it
// started and applies the difficulty.
func (s *Session) Start() {
	now := s.clock.Now()
	s.active = true
	s.paused = false
	s.startTime = now
	s.lastSpawn = now
	s.lastTick = now
	s.words = nil
	s.input = ""
	s.activeWord = nil

	if s.started || s.gameOver {
		return
	}
	s.started = true
	//nolint:errcheck // level was validated when it was set
	s.applyDifficulty()
	s.logger.Debug("round started", "difficulty", s.level)
}

// TogglePause flips the paused flag. It does nothing before Start or after
// game over. Resuming moves the frame reference to now so the paused span
// is not counted.
func (s *Session) TogglePause() {
	if !s.started || s.gameOver {
		return
	}
	s.paused = !s.paused
	if !s.paused {
		s.lastTick = s.clock.Now()
	}
}

// Reset returns to a fresh, not yet started round.
func (s *Session) Reset() {
	now := s.clock.Now()
	s.words = nil
	s.input = ""
	s.activeWord = nil
	s.elapsed = 0
	s.wordsTyped = 0
	s.speed = 0
	s.newHighScore = false
	s.result = nil
	s.gameOver = false
	s.paused = false
	s.active = true
	s.started = false
	s.startTime = now
	s.lastSpawn = now
	s.lastTick = time.Time{}
	//nolint:errcheck // level was validated when it was set
	s.applyDifficulty()
	s.logger.Debug("round reset")
}

// Update advances the round to now: accrue elapsed time, spawn a word if
// the interval has passed, move every word and end the round if one
// reaches the loss threshold.
func (s *Session) Update(now time.Time) {
	if !s.started || s.paused || s.gameOver {
		return
	}

	if s.lastTick.IsZero() {
		s.lastTick = now
	}
	if delta := now.Sub(s.lastTick); delta > 0 {
		s.elapsed += delta
	}
	s.lastTick = now

	if !s.active {
		return
	}

	if now.Sub(s.lastSpawn) >= s.spawnInterval {
		s.spawn()
		s.lastSpawn = now
	}

	lossY := s.field.LossY()
	for _, w := range s.words {
		w.Move(s.fallSpeed)
		if w.Y >= lossY {
			s.finish()
			return
		}
	}
}

// spawn appends a new word that is not already in flight, if possible.
func (s *Session) spawn() {
	inFlight := make(map[string]struct{}, len(s.words))
	for _, w := range s.words {
		inFlight[w.Text] = struct{}{}
	}

	text := s.catalog.NextWord(inFlight)
	x, placed := s.planner.PlanX(text, s.words, s.field)
	if !placed {
		s.logger.Debug("no clear spot, using left margin", "word", text)
	}

	s.nextSeq++
	s.words = append(s.words, &FallingWord{
		Text: text,
		X:    x,
		Y:    s.field.SpawnY,
		seq:  s.nextSeq,
	})
}

// finish ends the round and settles the score.
func (s *Session) finish() {
	s.gameOver = true
	s.speed = score.ComputeSpeed(s.wordsTyped, s.elapsed.Seconds())

	isNew, err := s.keeper.RecordIfBest(s.level, s.speed)
	if err != nil {
		s.logger.Warn("best score not saved", "error", err)
	}
	s.newHighScore = isNew
	s.active = false
	s.input = ""
	s.activeWord = nil

	s.result = &Result{
		Level:      s.level,
		WPM:        s.speed,
		WordsTyped: s.wordsTyped,
		Elapsed:    s.elapsed,
		Best:       s.keeper.Best(s.level),
		NewRecord:  isNew,
		PersistErr: err,
	}
	s.events = append(s.events, Event{Kind: EventGameOver, Result: s.result})
	s.logger.Info("round over",
		"difficulty", s.level,
		"wpm", s.speed,
		"words", s.wordsTyped,
		"elapsed", s.elapsed.Round(time.Second),
		"new_record", isNew,
	)
}

// SetDifficulty switches to the named level (case-insensitive) and applies
// its speed and spawn interval immediately.
func (s *Session) SetDifficulty(name string) error {
	lvl, err := config.ParseLevel(name)
	if err != nil {
		return err
	}
	return s.SetLevel(lvl)
}

// SetLevel is SetDifficulty for an already parsed level.
func (s *Session) SetLevel(lvl config.Level) error {
	if !lvl.Valid() {
		return fmt.Errorf("%w: %q", config.ErrInvalidDifficulty, string(lvl))
	}
	prev := s.level
	s.level = lvl
	if err := s.applyDifficulty(); err != nil {
		s.level = prev
		return err
	}
	return nil
}

func (s *Session) applyDifficulty() error {
	st, err := s.table.SettingsFor(s.level)
	if err != nil {
		return err
	}
	s.fallSpeed = st.FallSpeed
	s.spawnInterval = st.Interval()
	return nil
}

// TakeEvents returns the events emitted since the last call.
func (s *Session) TakeEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Elapsed returns the accrued play time.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// WPM returns the final speed once over, otherwise the speed so far.
func (s *Session) WPM() int {
	if s.gameOver {
		return s.speed
	}
	return score.ComputeSpeed(s.wordsTyped, s.elapsed.Seconds())
}

// WordsTyped returns the number of words cleared this round.
func (s *Session) WordsTyped() int { return s.wordsTyped }

// Best returns the stored best for the current level.
func (s *Session) Best() int { return s.keeper.Best(s.level) }

// Level returns the current difficulty.
func (s *Session) Level() config.Level { return s.level }

// Field returns the play field geometry.
func (s *Session) Field() config.Field { return s.field }

// Input returns the typed, still matching prefix.
func (s *Session) Input() string { return s.input }

// Started reports whether the round has been started.
func (s *Session) Started() bool { return s.started }

// Paused reports whether the round is paused.
func (s *Session) Paused() bool { return s.paused }

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Active reports whether the session accepts typing.
func (s *Session) Active() bool { return s.active }

// NewHighScore reports whether the finished round set a new best.
func (s *Session) NewHighScore() bool { return s.newHighScore }

// Result returns the final numbers, or nil while the round is running.
func (s *Session) Result() *Result { return s.result }

// ActiveWord returns the text of the word being typed, if any.
func (s *Session) ActiveWord() (string, bool) {
	if s.activeWord == nil {
		return "", false
	}
	return s.activeWord.Text, true
}

// Words returns a snapshot of the in-flight words in spawn order.
func (s *Session) Words() []WordView {
	out := make([]WordView, 0, len(s.words))
	typed := len([]rune(s.input))
	for _, w := range s.words {
		v := WordView{Text: w.Text, X: w.X, Y: w.Y}
		if w == s.activeWord {
			v.Active = true
			v.Typed = typed
		}
		out = append(out, v)
	}
	return out
}

// State returns the per-frame summary for the driver.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.WPM(),
		Words:    s.wordsTyped,
		Started:  s.started,
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
}
