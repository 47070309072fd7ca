package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"hacktheshell/internal/entity"
	"hacktheshell/internal/repo/persistent"
	"hacktheshell/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	configCachePrefix = "site_config:"
	configCacheTTL    = 30 * time.Second
)

type SiteConfigUseCase interface {
	GetConfig(ctx context.Context, key string) (*entity.SiteConfig, error)
	ListConfig(ctx context.Context) ([]*entity.SiteConfig, error)
	SetConfig(ctx context.Context, actor Actor, key, value, description string) (*entity.SiteConfig, error)
	SetMaintenanceMode(ctx context.Context, actor Actor, enabled bool) (*entity.SiteConfig, error)
	IsMaintenanceMode(ctx context.Context) (bool, error)
}

type siteConfigUseCase struct {
	configRepo  persistent.SiteConfigRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewSiteConfigUseCase(configRepo persistent.SiteConfigRepository, redisClient *redis.Client, logger *logger.Logger) SiteConfigUseCase {
	return &siteConfigUseCase{
		configRepo:  configRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *siteConfigUseCase) GetConfig(ctx context.Context, key string) (*entity.SiteConfig, error) {
	return uc.configRepo.Get(ctx, key)
}

func (uc *siteConfigUseCase) ListConfig(ctx context.Context) ([]*entity.SiteConfig, error) {
	return uc.configRepo.List(ctx)
}

// SetConfig upserts a key. The maintenance flag only accepts boolean values
// and is stored as "true" or "false".
func (uc *siteConfigUseCase) SetConfig(ctx context.Context, actor Actor, key, value, description string) (*entity.SiteConfig, error) {
	if key == entity.ConfigMaintenanceMode {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, ErrInvalidConfigValue
		}
		value = strconv.FormatBool(enabled)
	}

	saved, err := uc.configRepo.Set(ctx, &entity.SiteConfig{
		Key:         key,
		Value:       value,
		UpdatedBy:   actor.UserID,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, key)
	return saved, nil
}

func (uc *siteConfigUseCase) SetMaintenanceMode(ctx context.Context, actor Actor, enabled bool) (*entity.SiteConfig, error) {
	return uc.SetConfig(ctx, actor, entity.ConfigMaintenanceMode, strconv.FormatBool(enabled), "Site-wide maintenance mode")
}

// IsMaintenanceMode reads the maintenance flag through a short-lived Redis
// cache. A missing key means maintenance is off.
func (uc *siteConfigUseCase) IsMaintenanceMode(ctx context.Context) (bool, error) {
	value, err := uc.cachedValue(ctx, entity.ConfigMaintenanceMode)
	if err != nil {
		return false, err
	}
	if value == "" {
		return false, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		uc.logger.Warn("Ignoring unparsable %s value %q", entity.ConfigMaintenanceMode, value)
		return false, nil
	}
	return enabled, nil
}

func (uc *siteConfigUseCase) cachedValue(ctx context.Context, key string) (string, error) {
	cacheKey := configCachePrefix + key
	if uc.redisClient != nil {
		value, err := uc.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("Config cache read failed for %s: %v", key, err)
		}
	}

	var value string
	cfg, err := uc.configRepo.Get(ctx, key)
	switch {
	case err == nil:
		value = cfg.Value
	case errors.Is(err, entity.ErrNotFound):
	default:
		return "", err
	}

	if uc.redisClient != nil {
		if err := uc.redisClient.Set(ctx, cacheKey, value, configCacheTTL).Err(); err != nil {
			uc.logger.Warn("Config cache write failed for %s: %v", key, err)
		}
	}
	return value, nil
}

func (uc *siteConfigUseCase) invalidate(ctx context.Context, key string) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(ctx, configCachePrefix+key).Err(); err != nil {
		uc.logger.Warn("Config cache invalidation failed for %s: %v", key, err)
	}
}
