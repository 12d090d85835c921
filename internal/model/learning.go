package model

// VideoProgress 观看进度，按 (userId, videoId) 维度整条覆盖写入
type VideoProgress struct {
	VideoID     string  `json:"videoId"`
	Timestamp   float64 `json:"timestamp"` // 上次观看位置（秒）
	Completed   bool    `json:"completed"`
	LastUpdated int64   `json:"lastUpdated"` // Unix 毫秒
}

// ProgressKey 进度的复合存储键
func ProgressKey(userID, videoID string) string {
	return userID + "_" + videoID
}

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	Subjective     QuestionType = "subjective"
)

type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer *int         `json:"correctAnswer,omitempty"`
	Explanation   string       `json:"explanation"`
}

// MistakeRecord 错题记录。WrongAnswer 可能是选项下标或主观题文本，
// 与客户端提交的原始形态一致。
type MistakeRecord struct {
	ID          string       `json:"id"`
	Question    QuizQuestion `json:"question"`
	WrongAnswer any          `json:"wrongAnswer"`
	Topic       string       `json:"topic"`
	Timestamp   int64        `json:"timestamp"` // Unix 毫秒
}

type ScheduleItem struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	TimeSlot   string `json:"timeSlot"`
	CourseName string `json:"courseName"`
	Location   string `json:"location,omitempty"`
}

// QuizResult AI 测验的整卷成绩
type QuizResult struct {
	ID             string `json:"id"`
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Timestamp      int64  `json:"timestamp"`
}

type ReportScores struct {
	Relevance int `json:"relevance"`
	Logic     int `json:"logic"`
	Coverage  int `json:"coverage"`
	Style     int `json:"style"`
}

type ReportAnalysis struct {
	Scores       ReportScores `json:"scores"`
	OverallScore int          `json:"overallScore"`
	Suggestions  []string     `json:"suggestions"`
	Comparison   string       `json:"comparison,omitempty"`
}

// SavedReport AI 批改后的实验报告存档
type SavedReport struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Analysis  *ReportAnalysis `json:"analysis,omitempty"`
	Timestamp int64           `json:"timestamp"`
}
