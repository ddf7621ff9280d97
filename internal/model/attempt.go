package model

// MaxScore максимальный балл по каждой из осей оценки.
const MaxScore = 5

// Attempt одна отправленная стажёром попытка ответа на вопрос.
type Attempt struct {
	AttemptID         string `json:"attempt_id"`
	UserID            string `json:"user_id"`
	QuestionID        string `json:"question_id"`
	Answer            string `json:"answer"`
	SystemName        string `json:"system_name"`
	SystemURL         string `json:"system_url"`
	Date              string `json:"date"`
	AccuracyScore     int    `json:"accuracy_score"`
	PrecisionScore    int    `json:"precision_score"`
	ToneScore         int    `json:"tone_score"`
	AccuracyFeedback  string `json:"accuracy_feedback,omitempty"`
	PrecisionFeedback string `json:"precision_feedback,omitempty"`
	ToneFeedback      string `json:"tone_feedback,omitempty"`
	Feedback          string `json:"feedback,omitempty"`

	// Заполняются бэкендом при выборке попыток пользователя.
	QuestionTitle   string `json:"question_title,omitempty"`
	QuestionDetails string `json:"question_details,omitempty"`
	SchemeName      string `json:"scheme_name,omitempty"`
}

// NewAttempt тело POST /attempt.
type NewAttempt struct {
	UserID     string `json:"user_id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	SystemName string `json:"system_name"`
	SystemURL  string `json:"system_url"`
}

// SchemeScores средние баллы пользователя по схеме (или по всем схемам, если SchemeName == "All").
type SchemeScores struct {
	SchemeName        string  `json:"scheme_name"`
	AccuracyScoreAvg  float64 `json:"accuracy_score_avg"`
	PrecisionScoreAvg float64 `json:"precision_score_avg"`
	ToneScoreAvg      float64 `json:"tone_score_avg"`
}
