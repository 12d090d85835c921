package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitedu_backend/client/localdb"
	"hitedu_backend/internal/config"
	"hitedu_backend/internal/model"
	"hitedu_backend/pkg/kvstore"
)

func newTestClient(t *testing.T, baseURL string) (*Client, *kvstore.Store) {
	t.Helper()
	kv := kvstore.New(afero.NewMemMapFs(), "data")
	cfg := config.ClientConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 5,
		LatencyMS:      0,
	}
	return NewWithKV(cfg, kv), kv
}

// unreachableURL 返回一个必然 connection refused 的地址
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url + "/api"
}

func TestLogin_FallsBackToSeededAccountWhenServerDown(t *testing.T) {
	c, _ := newTestClient(t, unreachableURL(t))

	user, err := c.Login(context.Background(), "123456", "123456", model.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, model.RoleStudent, user.Role)
	assert.Equal(t, "123456", user.Username)
	assert.Empty(t, user.Password, "密码不得出现在返回的用户中")

	// 序列化形状里也不能有 password 字段
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	// 会话已持久化
	sessionUser, err := c.Session(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sessionUser)
	assert.Equal(t, user.ID, sessionUser.ID)
}

func TestLogin_ServerRejectionPropagatesExactMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"用户名、密码或角色错误"}`))
	}))
	defer srv.Close()

	c, kv := newTestClient(t, srv.URL+"/api")

	_, err := c.Login(context.Background(), "123456", "wrong", model.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, "用户名、密码或角色错误", err.Error())

	// 本地存储从未被触碰：账号集合没有被懒初始化
	_, ok, kvErr := kv.Get(localdb.KeyUsers)
	require.NoError(t, kvErr)
	assert.False(t, ok, "业务拒绝不得触发本地回退")
}

func TestLogin_NoFallbackOnMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": broken`))
	}))
	defer srv.Close()

	c, kv := newTestClient(t, srv.URL+"/api")

	_, err := c.Login(context.Background(), "123456", "123456", model.RoleStudent)
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, ok, kvErr := kv.Get(localdb.KeyUsers)
	require.NoError(t, kvErr)
	assert.False(t, ok)
}

func TestLogin_PrimarySuccessWritesSession(t *testing.T) {
	want := model.User{
		ID:       "student_123456",
		Username: "123456",
		Email:    "student@hitedu.com",
		Role:     model.RoleStudent,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var req struct {
			Username string     `json:"username"`
			Password string     `json:"password"`
			Role     model.Role `json:"role"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "123456", req.Username)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api")

	user, err := c.Login(context.Background(), "123456", "123456", model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, want.ID, user.ID)

	sessionUser, err := c.Session(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sessionUser)
	assert.Equal(t, want.ID, sessionUser.ID)
}

func TestVideos_FallbackSeedsFixedDataset(t *testing.T) {
	c, _ := newTestClient(t, unreachableURL(t))

	first, err := c.Videos(context.Background())
	require.NoError(t, err)
	second, err := c.Videos(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Equal(t, first, second, "重复读取不得重复播种")
}

func TestVideos_PrimaryListServed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/videos", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Video{{ID: "v9", Title: "线性代数"}})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL+"/api")

	videos, err := c.Videos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "v9", videos[0].ID)
}

func TestSaveAndReadProgress_Fallback(t *testing.T) {
	c, _ := newTestClient(t, unreachableURL(t))
	ctx := context.Background()

	// 未观看过返回 0
	ts, err := c.VideoProgress(ctx, "u1", "v1")
	require.NoError(t, err)
	assert.Zero(t, ts)

	require.NoError(t, c.SaveVideoProgress(ctx, "u1", "v1", 30))
	require.NoError(t, c.SaveVideoProgress(ctx, "u1", "v1", 45))

	ts, err = c.VideoProgress(ctx, "u1", "v1")
	require.NoError(t, err)
	assert.Equal(t, float64(45), ts)
}

func TestLogoutClearsSession(t *testing.T) {
	c, _ := newTestClient(t, unreachableURL(t))
	ctx := context.Background()

	_, err := c.Login(ctx, "123456", "123456", model.RoleTeacher)
	require.NoError(t, err)

	require.NoError(t, c.Logout(ctx))

	sessionUser, err := c.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, sessionUser)
}

func TestRemote_StatusWithoutErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := NewRemote(srv.URL+"/api", 0)
	_, err := r.Videos(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "request failed with status 502", statusErr.Message)
}
