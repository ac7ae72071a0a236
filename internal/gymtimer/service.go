package gymtimer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/timer"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const notifyTimeout = 5 * time.Second

type NewServiceParams struct {
	Clock          timer.Clock
	MaxSessions    int
	Notifier       Notifier
	MetricsManager *metrics.Manager
}

type Service struct {
	registry       *Registry
	clock          timer.Clock
	notifier       Notifier
	metricsManager *metrics.Manager

	notifyWG sync.WaitGroup
}

func NewService(params NewServiceParams) *Service {
	clock := params.Clock
	if clock == nil {
		clock = timer.SystemClock
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = LogNotifier{}
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	return &Service{
		registry:       NewRegistry(clock, params.MaxSessions),
		clock:          clock,
		notifier:       notifier,
		metricsManager: metricsManager,
	}
}

func (s *Service) Presets() []timer.Preset {
	return timer.Presets()
}

func (s *Service) Create(ctx context.Context) (_ *SessionView, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.gymtimer.create")
	defer func() { tracing.EndSpan(span, err) }()

	session, err := s.registry.Create(s.hooksFor)
	s.countCommand("create", err)
	if err != nil {
		return nil, err
	}
	s.metricsManager.GaugeTimerSessions.Inc()
	span.SetAttributes(attribute.String("session.id", session.ID))

	log.Debugf("timer session [%s] created", session.ID)
	view := session.View()
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *SessionView, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.gymtimer.get")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("session.id", id))

	session, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}
	view := session.View()
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.gymtimer.delete")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("session.id", id))

	err = s.registry.Delete(id)
	s.countCommand("delete", err)
	if err != nil {
		return err
	}
	s.metricsManager.GaugeTimerSessions.Dec()

	log.Debugf("timer session [%s] deleted", id)
	return nil
}

func (s *Service) Start(ctx context.Context, id string) (*SessionView, error) {
	return s.command(ctx, "start", id, func(e *timer.Engine) error {
		return e.Start()
	})
}

func (s *Service) Pause(ctx context.Context, id string) (*SessionView, error) {
	return s.command(ctx, "pause", id, func(e *timer.Engine) error {
		e.Pause()
		return nil
	})
}

func (s *Service) Reset(ctx context.Context, id string) (*SessionView, error) {
	return s.command(ctx, "reset", id, func(e *timer.Engine) error {
		e.Reset()
		return nil
	})
}

func (s *Service) SetMode(ctx context.Context, id string, mode timer.Mode) (*SessionView, error) {
	return s.command(ctx, "set_mode", id, func(e *timer.Engine) error {
		return e.SetMode(mode)
	})
}

// SetDuration takes the raw duration input, as typed by the user.
func (s *Service) SetDuration(ctx context.Context, id string, raw string) (*SessionView, error) {
	return s.command(ctx, "set_duration", id, func(e *timer.Engine) error {
		seconds, err := timer.ParseSeconds(raw)
		if err != nil {
			return err
		}
		return e.SetCountdownDuration(seconds)
	})
}

func (s *Service) ApplyPreset(ctx context.Context, id string, name string) (*SessionView, error) {
	return s.command(ctx, "apply_preset", id, func(e *timer.Engine) error {
		return e.ApplyPresetByName(name)
	})
}

// Close unmounts every session and waits for pending notifications.
func (s *Service) Close() {
	closed := s.registry.CloseAll()
	s.metricsManager.GaugeTimerSessions.Sub(float64(closed))
	s.notifyWG.Wait()
}

func (s *Service) command(
	ctx context.Context,
	name string,
	id string,
	cmd func(e *timer.Engine) error,
) (_ *SessionView, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.gymtimer."+name)
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("session.id", id))

	session, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	err = cmd(session.Engine)
	s.countCommand(name, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	view := session.View()
	return &view, nil
}

func (s *Service) countCommand(name string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, timer.ErrInvalidConfiguration),
		errors.Is(err, timer.ErrInvalidCommand),
		errors.Is(err, ErrTooManySessions):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	s.metricsManager.CounterTimerCommands.WithLabelValues(name, outcome).Inc()
}

func (s *Service) hooksFor(session *Session) timer.Hooks {
	return timer.Hooks{
		OnComplete: func(state timer.State) {
			s.onComplete(session, state)
		},
		OnSourceAcquired: s.metricsManager.GaugeRunningTickSource.Inc,
		OnSourceReleased: s.metricsManager.GaugeRunningTickSource.Dec,
	}
}

// onComplete runs on the tick path, so the notification itself is handed off.
func (s *Service) onComplete(session *Session, state timer.State) {
	now := s.clock.Now()
	session.recordCompletion(now)
	s.metricsManager.CounterTimerCompletions.Inc()

	event := CompletionEvent{
		SessionID:   session.ID,
		Duration:    state.CountdownDuration,
		CompletedAt: now,
	}

	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, event); err != nil {
			s.metricsManager.CounterTimerNotifyErrors.Inc()
			log.Errorf("notify timer [%s] completion: %s", event.SessionID, err)
		}
	}()
}
