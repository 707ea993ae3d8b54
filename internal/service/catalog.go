package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/model"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
)

// CatalogService owns the ordered goal/level/medal reference data. Positions
// are assigned by the store at insert time; nothing here ever reuses one.
type CatalogService struct {
	goalRepo  repository.GoalRepository
	levelRepo repository.LevelRepository
	medalRepo repository.MedalRepository
}

func NewCatalogService(
	goalRepo repository.GoalRepository,
	levelRepo repository.LevelRepository,
	medalRepo repository.MedalRepository,
) *CatalogService {
	return &CatalogService{
		goalRepo:  goalRepo,
		levelRepo: levelRepo,
		medalRepo: medalRepo,
	}
}

func (s *CatalogService) CreateGoal(title, description, note, icon string, distance, timeMinutes, speedAvg *float64) (*model.Goal, error) {
	goal := &model.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Note:        note,
		Distance:    distance,
		Time:        timeMinutes,
		SpeedAvg:    speedAvg,
		Icon:        icon,
		CreatedAt:   time.Now(),
	}

	err := s.goalRepo.Create(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *CatalogService) CreateLevel(title, note string) (*model.Level, error) {
	level := &model.Level{
		ID:    uuid.New().String(),
		Title: title,
		Note:  note,
	}

	err := s.levelRepo.Create(level)
	if err != nil {
		return nil, err
	}

	return level, nil
}

func (s *CatalogService) CreateMedal(title, note, icon string) (*model.Medal, error) {
	medal := &model.Medal{
		ID:    uuid.New().String(),
		Title: title,
		Note:  note,
		Icon:  icon,
	}

	err := s.medalRepo.Create(medal)
	if err != nil {
		return nil, err
	}

	return medal, nil
}

func (s *CatalogService) Goals() ([]*model.Goal, error) {
	return s.goalRepo.Catalog()
}

func (s *CatalogService) Levels() ([]*model.Level, error) {
	return s.levelRepo.Catalog()
}

func (s *CatalogService) Medals() ([]*model.Medal, error) {
	return s.medalRepo.Catalog()
}
