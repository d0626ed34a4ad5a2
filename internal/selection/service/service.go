package service

import (
	"context"

	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/internal/selection/repository"
	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/logger"

	"github.com/google/uuid"
)

// Service drives the selection controller for server-held sessions.
type Service struct {
	ctrl  *domain.Controller
	store repository.Store
	log   *logger.Logger
}

func New(ctrl *domain.Controller, store repository.Store, log *logger.Logger) *Service {
	return &Service{ctrl: ctrl, store: store, log: log}
}

// Create starts a session with the city list loaded. A city list that cannot
// be loaded leaves the session with no cities.
func (s *Service) Create(ctx context.Context) (string, *domain.State, error) {
	id := uuid.NewString()
	ctx = withSession(ctx, id)

	st := &domain.State{}
	if err := s.ctrl.Init(ctx, st); err != nil {
		s.loadFailed(ctx, "selection.Create", err)
	}
	if err := s.store.Save(ctx, id, st); err != nil {
		return "", nil, err
	}

	s.log.WithContext(ctx).Info("selection session created", "cities", len(st.Cities))
	return id, st, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.State, error) {
	return s.store.Get(withSession(ctx, id), id)
}

func (s *Service) SelectCity(ctx context.Context, id, city string) (*domain.State, error) {
	return s.update(ctx, "selection.SelectCity", id, func(ctx context.Context, st *domain.State) error {
		return s.ctrl.SelectCity(ctx, st, city)
	})
}

func (s *Service) SelectStreet(ctx context.Context, id, street string) (*domain.State, error) {
	return s.update(ctx, "selection.SelectStreet", id, func(_ context.Context, st *domain.State) error {
		s.ctrl.SelectStreet(st, street)
		return nil
	})
}

func (s *Service) SelectAddress(ctx context.Context, id, fullAddress string) (*domain.State, error) {
	return s.update(ctx, "selection.SelectAddress", id, func(ctx context.Context, st *domain.State) error {
		return s.ctrl.SelectAddress(ctx, st, fullAddress)
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ctx = withSession(ctx, id)
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithContext(ctx).Info("selection session deleted")
	return nil
}

// update loads the session, applies fn and saves the result. Invalid input
// leaves the stored session untouched; load failures are logged and the
// cleared state is saved.
func (s *Service) update(ctx context.Context, op, id string, fn func(context.Context, *domain.State) error) (*domain.State, error) {
	ctx = withSession(ctx, id)

	st, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(ctx, st); err != nil {
		if apperr.Is(err, apperr.KindValidation) || apperr.Is(err, apperr.KindBadRequest) {
			return nil, err
		}
		s.loadFailed(ctx, op, err)
	}

	if err := s.store.Save(ctx, id, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) loadFailed(ctx context.Context, op string, err error) {
	s.log.WithContext(ctx).Warn("selection load failed", "operation", op, "error", err)
}

func withSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, logger.SessionIDKey, id)
}
