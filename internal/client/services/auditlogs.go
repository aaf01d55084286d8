package services

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/models"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
)

const auditLogDateLayout = "2006-01-02"

// AuditLogsKey returns the cache key for one day of the audit trail.
func AuditLogsKey(date time.Time) string {
	return "auditLogs:" + date.Format(auditLogDateLayout)
}

// AuditLogs exposes the server-side audit trail, one resource per day,
// created lazily as dates are browsed.
type AuditLogs struct {
	api   *api.Client
	cache *query.Cache

	mu     sync.Mutex
	byDate map[string]*query.Resource[[]models.AuditLog]
}

func NewAuditLogs(apiClient *api.Client, cache *query.Cache) *AuditLogs {
	return &AuditLogs{
		api:    apiClient,
		cache:  cache,
		byDate: make(map[string]*query.Resource[[]models.AuditLog]),
	}
}

func (s *AuditLogs) resource(date time.Time) *query.Resource[[]models.AuditLog] {
	key := AuditLogsKey(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.byDate[key]; ok {
		return r
	}

	day := date.Format(auditLogDateLayout)
	r := query.NewResource(s.cache, key, auditLogPollInterval, func(ctx context.Context) ([]models.AuditLog, error) {
		path := "/audit-logs?" + url.Values{"date": {day}}.Encode()
		return api.FetchPayload[[]models.AuditLog](ctx, s.api, path)
	})
	s.byDate[key] = r
	return r
}

// List returns the audit logs recorded on the given date.
func (s *AuditLogs) List(ctx context.Context, date time.Time) ([]models.AuditLog, error) {
	return s.resource(date).Get(ctx)
}

// ListResource exposes one day's resource for background polling.
func (s *AuditLogs) ListResource(date time.Time) query.Pollable {
	return s.resource(date)
}
