package model

// LearningStats 学习统计聚合。当前为模拟数据，每次读取重新生成，
// 客户端不做持久化。
type LearningStats struct {
	TotalStudyHours  int      `json:"totalStudyHours"`
	CompletedCourses int      `json:"completedCourses"`
	QuizAccuracy     int      `json:"quizAccuracy"`
	WeakPoints       []string `json:"weakPoints"`
	LearningTrend    []int    `json:"learningTrend"`
}
