package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Submission operations, chosen by the editor at submit time.
const (
	OperationCreate            = "create"
	OperationCreateWithContent = "create_with_content"
	OperationUpdate            = "update"
)

const (
	SubmissionSucceeded = "SUCCEEDED"
	SubmissionFailed    = "FAILED"
)

// CourseSubmission records one attempt to hand a draft to the backend.
type CourseSubmission struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	DraftID      uuid.UUID      `json:"draft_id" gorm:"type:uuid;index;not null"`
	OperatorID   uint           `json:"operator_id" gorm:"index;not null"`
	CourseID     string         `json:"course_id" gorm:"index"`
	Operation    string         `json:"operation" gorm:"not null"`
	SectionCount int            `json:"section_count"`
	TotalVideos  int            `json:"total_videos"`
	Status       string         `json:"status" gorm:"index;not null"`
	ErrorMessage string         `json:"error_message"`
	Payload      datatypes.JSON `json:"payload"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}
