package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// dashboardCountsTTL keeps the counters fresh enough for an admin landing
// page without hitting eight COUNT(*) queries per load.
const dashboardCountsTTL = 30 * time.Second

// DashboardData is the admin dashboard payload.
type DashboardData struct {
	Counts        *repository.DashboardCounts `json:"counts"`
	RecentNotices []model.Notice              `json:"recent_notices"`
}

// DashboardService aggregates dashboard data.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
	rdb           *redis.Client
	log           zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo *repository.DashboardRepository, rdb *redis.Client, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		rdb:           rdb,
		log:           log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetData retrieves entity counters (cached briefly) and recent notices.
func (s *DashboardService) GetData(ctx context.Context) (*DashboardData, error) {
	counts, err := s.getCounts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboardRepo.GetRecentNotices(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardData{Counts: counts, RecentNotices: recent}, nil
}

func (s *DashboardService) getCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	key := config.CacheKey.DashboardCountsKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		counts := &repository.DashboardCounts{}
		if err := json.Unmarshal([]byte(raw), counts); err == nil {
			return counts, nil
		}
	}

	counts, err := s.dashboardRepo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(counts); err == nil {
		if err := s.rdb.Set(ctx, key, data, dashboardCountsTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("cache set failed")
		}
	}
	return counts, nil
}
