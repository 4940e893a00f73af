package service

import (
	"context"
	"sync"
	"time"

	"airjustice/metrics"
	"airjustice/models"
	"airjustice/notification"
	"airjustice/utils"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 10 * time.Second

// NotificationService publishes ledger events to authorities.
// Publishing is async and never fails the caller; errors are logged and counted.
type NotificationService struct {
	publisher notification.Publisher
	clock     utils.Clock
	wg        sync.WaitGroup
}

// NewNotificationService creates a new notification service
func NewNotificationService(publisher notification.Publisher, clock utils.Clock) *NotificationService {
	return &NotificationService{publisher: publisher, clock: clock}
}

// ComplaintFiledAsync queues a complaint_filed event. Non-blocking.
func (s *NotificationService) ComplaintFiledAsync(c *models.Complaint) {
	s.publishAsync(&models.LedgerEvent{
		Type:        models.EventComplaintFiled,
		ComplaintID: c.ID,
		Status:      c.Status,
		Aqi:         c.Violation.Aqi,
		Authorities: append([]string(nil), c.Processing.AuthoritiesNotified...),
		OccurredAt:  s.clock(),
	})
}

// StatusChangedAsync queues a status_changed event. Non-blocking.
func (s *NotificationService) StatusChangedAsync(c *models.Complaint, oldStatus, newStatus models.ComplaintStatus) {
	s.publishAsync(&models.LedgerEvent{
		Type:        models.EventStatusChanged,
		ComplaintID: c.ID,
		Status:      newStatus,
		OldStatus:   oldStatus,
		Aqi:         c.Violation.Aqi,
		OccurredAt:  s.clock(),
	})
}

func (s *NotificationService) publishAsync(event *models.LedgerEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.publisher.Publish(ctx, event); err != nil {
			metrics.EventsPublished.WithLabelValues("error").Inc()
			log.Error().Err(err).
				Str("component", "notify").
				Str("complaint_id", event.ComplaintID).
				Str("event_type", string(event.Type)).
				Msg("failed to publish ledger event")
			return
		}
		metrics.EventsPublished.WithLabelValues("ok").Inc()
	}()
}

// Wait blocks until every queued event has been handed to the publisher
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

// Close drains pending events and closes the publisher
func (s *NotificationService) Close() error {
	s.wg.Wait()
	return s.publisher.Close()
}
