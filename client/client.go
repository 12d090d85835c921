package client

import (
	"context"

	"github.com/spf13/afero"

	"hitedu_backend/client/localdb"
	"hitedu_backend/client/session"
	"hitedu_backend/internal/config"
	"hitedu_backend/internal/model"
	"hitedu_backend/pkg/kvstore"
)

// Client 对上层暴露统一的数据操作入口。每个操作在远端和本地
// 存储上各有一份等价实现，经 runWithFallback 路由：远端优先，
// 传输失败时静默切换到本地，业务错误原样上抛。
type Client struct {
	remote  *Remote
	local   *localdb.Store
	session *session.Store
}

// New 按配置构建客户端，本地数据落在 cfg.DataDir 下
func New(cfg config.ClientConfig) *Client {
	return NewWithKV(cfg, kvstore.New(afero.NewOsFs(), cfg.DataDir))
}

// NewWithKV 指定底层键值存储，测试用 afero.MemMapFs 构造
func NewWithKV(cfg config.ClientConfig, kv *kvstore.Store) *Client {
	sess := session.NewStore(kv)
	return &Client{
		remote:  NewRemote(cfg.BaseURL, cfg.Timeout()),
		local:   localdb.New(kv, sess, cfg.Latency()),
		session: sess,
	}
}

// Login 登录成功后把用户写入会话槽（无论哪个存储服务了请求）
func (c *Client) Login(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	user, err := runWithFallback(ctx, "login",
		func(ctx context.Context) (*model.User, error) {
			return c.remote.Login(ctx, username, password, role)
		},
		func(ctx context.Context) (*model.User, error) {
			return c.local.Login(ctx, username, password, role)
		},
	)
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Register(ctx context.Context, username, password, email string, role model.Role) (*model.User, error) {
	user, err := runWithFallback(ctx, "register",
		func(ctx context.Context) (*model.User, error) {
			return c.remote.Register(ctx, username, password, email, role)
		},
		func(ctx context.Context) (*model.User, error) {
			return c.local.Register(ctx, username, password, email, role)
		},
	)
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout 只清理本地会话，不通知服务端
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear()
}

// Session 恢复上次登录的用户；没有会话时返回 (nil, nil)
func (c *Client) Session(ctx context.Context) (*model.User, error) {
	return c.session.Current()
}

func (c *Client) UpdateUserAvatar(ctx context.Context, userID, avatar string) (*model.User, error) {
	user, err := runWithFallback(ctx, "updateUserAvatar",
		func(ctx context.Context) (*model.User, error) {
			return c.remote.UpdateUserAvatar(ctx, userID, avatar)
		},
		func(ctx context.Context) (*model.User, error) {
			return c.local.UpdateUserAvatar(ctx, userID, avatar)
		},
	)
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Videos(ctx context.Context) ([]model.Video, error) {
	return runWithFallback(ctx, "getVideos",
		func(ctx context.Context) ([]model.Video, error) { return c.remote.Videos(ctx) },
		func(ctx context.Context) ([]model.Video, error) { return c.local.Videos(ctx) },
	)
}

func (c *Client) AddVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	return runWithFallback(ctx, "addVideo",
		func(ctx context.Context) (*model.Video, error) { return c.remote.AddVideo(ctx, video) },
		func(ctx context.Context) (*model.Video, error) { return c.local.AddVideo(ctx, video) },
	)
}

func (c *Client) SaveVideoProgress(ctx context.Context, userID, videoID string, timestamp float64) error {
	return runWithFallbackErr(ctx, "saveVideoProgress",
		func(ctx context.Context) error {
			return c.remote.SaveVideoProgress(ctx, userID, videoID, timestamp)
		},
		func(ctx context.Context) error {
			return c.local.SaveVideoProgress(ctx, userID, videoID, timestamp)
		},
	)
}

func (c *Client) VideoProgress(ctx context.Context, userID, videoID string) (float64, error) {
	return runWithFallback(ctx, "getVideoProgress",
		func(ctx context.Context) (float64, error) { return c.remote.VideoProgress(ctx, userID, videoID) },
		func(ctx context.Context) (float64, error) { return c.local.VideoProgress(ctx, userID, videoID) },
	)
}

func (c *Client) SaveMistake(ctx context.Context, userID string, mistake model.MistakeRecord) error {
	return runWithFallbackErr(ctx, "saveMistake",
		func(ctx context.Context) error { return c.remote.SaveMistake(ctx, userID, mistake) },
		func(ctx context.Context) error { return c.local.SaveMistake(ctx, userID, mistake) },
	)
}

func (c *Client) Mistakes(ctx context.Context, userID string) ([]model.MistakeRecord, error) {
	return runWithFallback(ctx, "getMistakes",
		func(ctx context.Context) ([]model.MistakeRecord, error) { return c.remote.Mistakes(ctx, userID) },
		func(ctx context.Context) ([]model.MistakeRecord, error) { return c.local.Mistakes(ctx, userID) },
	)
}

func (c *Client) SaveQuizResult(ctx context.Context, userID string, result model.QuizResult) error {
	return runWithFallbackErr(ctx, "saveQuizResult",
		func(ctx context.Context) error { return c.remote.SaveQuizResult(ctx, userID, result) },
		func(ctx context.Context) error { return c.local.SaveQuizResult(ctx, userID, result) },
	)
}

func (c *Client) SaveReport(ctx context.Context, userID string, report model.SavedReport) error {
	return runWithFallbackErr(ctx, "saveReport",
		func(ctx context.Context) error { return c.remote.SaveReport(ctx, userID, report) },
		func(ctx context.Context) error { return c.local.SaveReport(ctx, userID, report) },
	)
}

func (c *Client) Reports(ctx context.Context, userID string) ([]model.SavedReport, error) {
	return runWithFallback(ctx, "getReports",
		func(ctx context.Context) ([]model.SavedReport, error) { return c.remote.Reports(ctx, userID) },
		func(ctx context.Context) ([]model.SavedReport, error) { return c.local.Reports(ctx, userID) },
	)
}

func (c *Client) SaveSchedule(ctx context.Context, userID string, items []model.ScheduleItem) error {
	return runWithFallbackErr(ctx, "saveSchedule",
		func(ctx context.Context) error { return c.remote.SaveSchedule(ctx, userID, items) },
		func(ctx context.Context) error { return c.local.SaveSchedule(ctx, userID, items) },
	)
}

func (c *Client) Schedule(ctx context.Context, userID string) ([]model.ScheduleItem, error) {
	return runWithFallback(ctx, "getSchedule",
		func(ctx context.Context) ([]model.ScheduleItem, error) { return c.remote.Schedule(ctx, userID) },
		func(ctx context.Context) ([]model.ScheduleItem, error) { return c.local.Schedule(ctx, userID) },
	)
}

func (c *Client) UserStats(ctx context.Context, userID string) (model.LearningStats, error) {
	return runWithFallback(ctx, "getUserStats",
		func(ctx context.Context) (model.LearningStats, error) { return c.remote.UserStats(ctx, userID) },
		func(ctx context.Context) (model.LearningStats, error) { return c.local.UserStats(ctx, userID) },
	)
}
