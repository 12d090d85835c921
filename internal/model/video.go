package model

// VideoChapter 视频章节，startTime/duration 单位为秒
type VideoChapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime int    `json:"startTime"`
	Duration  int    `json:"duration"`
}

// VideoQuiz 视频内嵌测验，timestamp 为触发时间（秒）
type VideoQuiz struct {
	ID            string   `json:"id"`
	Timestamp     int      `json:"timestamp"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type Video struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail"`
	URL         string         `json:"url"`
	Duration    string         `json:"duration"`    // 展示用，如 "10:00"
	DurationSec int            `json:"durationSec"` // 逻辑用，总秒数
	Category    string         `json:"category"`
	UploaderID  string         `json:"uploaderId"`
	UploadDate  int64          `json:"uploadDate"` // Unix 毫秒
	Chapters    []VideoChapter `json:"chapters,omitempty"`
	Quizzes     []VideoQuiz    `json:"quizzes,omitempty"`
}
