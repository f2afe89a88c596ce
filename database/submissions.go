package database

import (
	"context"
	courseModels "fomo/models/course"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Submissions stores the outcome of every draft submit.
type Submissions struct {
	db *gorm.DB
}

func NewSubmissions(db *gorm.DB) *Submissions {
	return &Submissions{db: db}
}

func (s *Submissions) Record(ctx context.Context, sub *courseModels.CourseSubmission) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(sub).Error
}

// Recent returns the latest submissions, newest first.
func (s *Submissions) Recent(ctx context.Context, limit int) ([]courseModels.CourseSubmission, error) {
	var out []courseModels.CourseSubmission
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

type SubmissionStats struct {
	Total     int64 `json:"total"`
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
}

// Stats counts submissions overall and since the start of at's day and
// week (weeks start on Monday).
func (s *Submissions) Stats(ctx context.Context, at time.Time) (SubmissionStats, error) {
	var stats SubmissionStats
	at = at.UTC()
	dayStart := now.With(at).BeginningOfDay()
	weekStart := (&now.Config{WeekStartDay: time.Monday}).With(at).BeginningOfWeek()

	base := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&courseModels.CourseSubmission{})
	}
	if err := base().Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := base().Where("status = ?", courseModels.SubmissionSucceeded).Count(&stats.Succeeded).Error; err != nil {
		return stats, err
	}
	if err := base().Where("status = ?", courseModels.SubmissionFailed).Count(&stats.Failed).Error; err != nil {
		return stats, err
	}
	if err := base().Where("created_at >= ?", dayStart).Count(&stats.Today).Error; err != nil {
		return stats, err
	}
	if err := base().Where("created_at >= ?", weekStart).Count(&stats.ThisWeek).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
