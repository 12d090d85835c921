// Package mockdata 提供演示数据集：两个默认账号、四条示例视频，
// 以及随机生成的学习统计。服务端数据库初始化和客户端本地回退存储
// 共用同一份种子，保证两个后端在空库时表现一致。
package mockdata

import (
	"math/rand"

	"hitedu_backend/internal/model"
)

// DefaultUsers 预置账号。同一组用户名/密码在 student 和 teacher
// 两个角色下各注册一次，对应 (username, role) 唯一性规则。
func DefaultUsers() []model.User {
	return []model.User{
		{
			ID:       "student_123456",
			Username: "123456",
			Password: "123456",
			Email:    "student@hitedu.com",
			Role:     model.RoleStudent,
			Avatar:   "https://ui-avatars.com/api/?name=123456&background=0ea5e9&color=fff",
		},
		{
			ID:       "teacher_123456",
			Username: "123456",
			Password: "123456",
			Email:    "teacher@hitedu.com",
			Role:     model.RoleTeacher,
			Avatar:   "https://ui-avatars.com/api/?name=Teacher&background=7c3aed&color=fff",
		},
	}
}

// DefaultVideos 预置课程视频
func DefaultVideos() []model.Video {
	return []model.Video{
		{
			ID:          "v1",
			Title:       "计算机科学导论",
			Description: "全面概述计算机科学基础、算法和数据结构。适合初学者的入门课程。",
			Thumbnail:   "https://picsum.photos/id/1/800/450",
			URL:         "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:    "10:00",
			DurationSec: 600,
			Category:    "计算机科学",
			UploaderID:  "teacher_mock",
			UploadDate:  1714521600000,
			Chapters: []model.VideoChapter{
				{ID: "c1", Title: "片头与背景介绍", StartTime: 0, Duration: 60},
				{ID: "c2", Title: "核心冲突展开", StartTime: 60, Duration: 300},
				{ID: "c3", Title: "高潮与结局", StartTime: 360, Duration: 236},
			},
			Quizzes: []model.VideoQuiz{
				{
					ID:            "q1",
					Timestamp:     10,
					Question:      "计算机的核心部件是什么？",
					Options:       []string{"CPU", "显示器", "键盘", "鼠标"},
					CorrectAnswer: 0,
					Explanation:   "CPU（中央处理器）是计算机的大脑，负责执行指令。",
				},
			},
		},
		{
			ID:          "v2",
			Title:       "进阶机器学习",
			Description: "深入探讨神经网络、反向传播和现代人工智能架构。",
			Thumbnail:   "https://picsum.photos/id/20/800/450",
			URL:         "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Duration:    "15:30",
			DurationSec: 930,
			Category:    "人工智能",
			UploaderID:  "teacher_mock",
			UploadDate:  1714608000000,
			Chapters: []model.VideoChapter{
				{ID: "c1", Title: "神经网络基础", StartTime: 0, Duration: 300},
				{ID: "c2", Title: "反向传播算法", StartTime: 300, Duration: 400},
				{ID: "c3", Title: "Transformer 架构", StartTime: 700, Duration: 230},
			},
		},
		{
			ID:          "v3",
			Title:       "现代艺术史",
			Description: "探索从19世纪末至今的艺术运动演变。",
			Thumbnail:   "https://picsum.photos/id/26/800/450",
			URL:         "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Duration:    "08:45",
			DurationSec: 525,
			Category:    "人文艺术",
			UploaderID:  "teacher_mock",
			UploadDate:  1714694400000,
		},
		{
			ID:          "v4",
			Title:       "量子物理基础",
			Description: "了解量子力学和粒子物理的奇妙世界。",
			Thumbnail:   "https://picsum.photos/id/119/800/450",
			URL:         "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Duration:    "12:20",
			DurationSec: 740,
			Category:    "物理学",
			UploaderID:  "teacher_mock",
			UploadDate:  1714780800000,
		},
	}
}

var weakPointPool = []string{"量子物理", "高阶函数", "现代艺术流派"}

// RandomStats 生成一份模拟统计：10-59 学习小时、0-7 门完课、
// 60-89% 正确率、两个随机薄弱点、近 7 天的随机学习时长
func RandomStats(r *rand.Rand) model.LearningStats {
	points := append([]string(nil), weakPointPool...)
	r.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	trend := make([]int, 7)
	for i := range trend {
		trend[i] = r.Intn(120)
	}

	return model.LearningStats{
		TotalStudyHours:  r.Intn(50) + 10,
		CompletedCourses: r.Intn(8),
		QuizAccuracy:     r.Intn(30) + 60,
		WeakPoints:       points[:2],
		LearningTrend:    trend,
	}
}
