package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hitedu_backend/internal/model"
)

// Remote 主存储适配器：把每个业务操作翻译成一次 HTTP 请求。
// 自身不持有任何状态；网络层失败原样上抛，交给编排器分类。
type Remote struct {
	baseURL string
	http    *http.Client
}

func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// doJSON 发送请求并解码响应。
// 非 2xx 响应解析 {"error": msg} 后包装成 StatusError；
// 响应体解析失败包装成 DecodeError；两者都不会触发降级。
func (r *Remote) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		// 传输层错误，保留错误链供 IsTransportError 判定
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		var errBody struct {
			Error string `json:"error"`
		}
		if raw, readErr := io.ReadAll(resp.Body); readErr == nil {
			if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
				message = errBody.Error
			}
		}
		return &StatusError{Code: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: method + " " + path, Err: err}
	}
	return nil
}

func (r *Remote) Login(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	var user model.User
	err := r.doJSON(ctx, http.MethodPost, "/auth/login", map[string]any{
		"username": username,
		"password": password,
		"role":     role,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Remote) Register(ctx context.Context, username, password, email string, role model.Role) (*model.User, error) {
	var user model.User
	err := r.doJSON(ctx, http.MethodPost, "/auth/register", map[string]any{
		"username": username,
		"password": password,
		"email":    email,
		"role":     role,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Remote) UpdateUserAvatar(ctx context.Context, userID, avatar string) (*model.User, error) {
	var user model.User
	err := r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/avatar", map[string]any{
		"avatar": avatar,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Remote) Videos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	if err := r.doJSON(ctx, http.MethodGet, "/videos", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *Remote) AddVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	var created model.Video
	if err := r.doJSON(ctx, http.MethodPost, "/videos", video, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Remote) SaveVideoProgress(ctx context.Context, userID, videoID string, timestamp float64) error {
	return r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/progress", map[string]any{
		"videoId":   videoID,
		"timestamp": timestamp,
	}, nil)
}

// VideoProgress 服务端对从未观看过的视频返回 {timestamp: 0}，
// 读不到值不是错误。
func (r *Remote) VideoProgress(ctx context.Context, userID, videoID string) (float64, error) {
	var payload struct {
		Timestamp float64 `json:"timestamp"`
	}
	if err := r.doJSON(ctx, http.MethodGet, "/users/"+userID+"/progress/"+videoID, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Timestamp, nil
}

func (r *Remote) SaveMistake(ctx context.Context, userID string, mistake model.MistakeRecord) error {
	return r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/mistakes", map[string]any{
		"question":    mistake.Question,
		"wrongAnswer": mistake.WrongAnswer,
		"topic":       mistake.Topic,
	}, nil)
}

func (r *Remote) Mistakes(ctx context.Context, userID string) ([]model.MistakeRecord, error) {
	var mistakes []model.MistakeRecord
	if err := r.doJSON(ctx, http.MethodGet, "/users/"+userID+"/mistakes", nil, &mistakes); err != nil {
		return nil, err
	}
	return mistakes, nil
}

func (r *Remote) SaveQuizResult(ctx context.Context, userID string, result model.QuizResult) error {
	return r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/quiz-results", map[string]any{
		"topic":          result.Topic,
		"score":          result.Score,
		"totalQuestions": result.TotalQuestions,
	}, nil)
}

func (r *Remote) SaveReport(ctx context.Context, userID string, report model.SavedReport) error {
	return r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/reports", map[string]any{
		"title":    report.Title,
		"content":  report.Content,
		"analysis": report.Analysis,
	}, nil)
}

func (r *Remote) Reports(ctx context.Context, userID string) ([]model.SavedReport, error) {
	var reports []model.SavedReport
	if err := r.doJSON(ctx, http.MethodGet, "/users/"+userID+"/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *Remote) SaveSchedule(ctx context.Context, userID string, items []model.ScheduleItem) error {
	return r.doJSON(ctx, http.MethodPost, "/users/"+userID+"/schedule", items, nil)
}

func (r *Remote) Schedule(ctx context.Context, userID string) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	if err := r.doJSON(ctx, http.MethodGet, "/users/"+userID+"/schedule", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Remote) UserStats(ctx context.Context, userID string) (model.LearningStats, error) {
	var stats model.LearningStats
	if err := r.doJSON(ctx, http.MethodGet, "/users/"+userID+"/stats", nil, &stats); err != nil {
		return model.LearningStats{}, err
	}
	return stats, nil
}
