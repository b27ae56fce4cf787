package entity

type Player struct {
	ID     string `json:"id"`
	QuizID string `json:"quiz_id,omitempty"`
}
