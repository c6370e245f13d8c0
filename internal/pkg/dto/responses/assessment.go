package responses

import (
	"time"
	"vitalab-service/internal/app/models"
)

type Assessment struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	QuestionCount int                `json:"question_count"`
	Questions     []*models.Question `json:"questions,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
