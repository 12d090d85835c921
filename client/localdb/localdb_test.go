package localdb

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hitedu_backend/client/session"
	"hitedu_backend/internal/model"
	"hitedu_backend/pkg/kvstore"
)

func newTestStore(t *testing.T) (*Store, *session.Store) {
	t.Helper()
	kv := kvstore.New(afero.NewMemMapFs(), "data")
	sess := session.NewStore(kv)
	return New(kv, sess, 0), sess
}

func TestLogin_SeededAccounts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student, err := s.Login(ctx, "123456", "123456", model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "student_123456", student.ID)
	assert.Empty(t, student.Password)

	teacher, err := s.Login(ctx, "123456", "123456", model.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, "teacher_123456", teacher.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Login(context.Background(), "123456", "nope", model.RoleStudent)
	require.Error(t, err)
	assert.Equal(t, "用户名或密码错误", err.Error())
}

func TestLogin_RoleMismatchMessage(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// 只注册为学生的账号，以教师身份登录
	_, err := s.Register(ctx, "xiaoming", "secret", "xm@hitedu.com", model.RoleStudent)
	require.NoError(t, err)

	_, err = s.Login(ctx, "xiaoming", "secret", model.RoleTeacher)
	require.Error(t, err)

	var mismatch *RoleMismatchError
	require.ErrorAs(t, err, &mismatch, "角色不符必须区别于一般的凭据错误")
	assert.Equal(t, "该账号不能以教师身份登录", err.Error())
}

func TestRegister_RoleScopedUniqueness(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student, err := s.Register(ctx, "xiaoming", "secret", "xm@hitedu.com", model.RoleStudent)
	require.NoError(t, err)

	teacher, err := s.Register(ctx, "xiaoming", "secret", "xm@hitedu.com", model.RoleTeacher)
	require.NoError(t, err, "同一用户名允许在另一角色下再注册")
	assert.NotEqual(t, student.ID, teacher.ID)

	_, err = s.Register(ctx, "xiaoming", "other", "xm2@hitedu.com", model.RoleStudent)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegister_SetsSession(t *testing.T) {
	s, sess := newTestStore(t)

	user, err := s.Register(context.Background(), "lily", "pw", "lily@hitedu.com", model.RoleStudent)
	require.NoError(t, err)

	current, err := sess.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestVideos_IdempotentSeeding(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.Videos(ctx)
	require.NoError(t, err)
	second, err := s.Videos(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 4)
	assert.Equal(t, first, second)
}

func TestAddVideo_PrependsWithGeneratedFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.AddVideo(ctx, model.Video{Title: "数据库系统", URL: "http://example.com/v.mp4"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.UploadDate)

	videos, err := s.Videos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 5)
	assert.Equal(t, created.ID, videos[0].ID, "新视频在列表最前")
}

func TestProgress_UpsertByCompositeKey(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVideoProgress(ctx, "u1", "v1", 30))
	require.NoError(t, s.SaveVideoProgress(ctx, "u1", "v1", 45))
	require.NoError(t, s.SaveVideoProgress(ctx, "u1", "v2", 10))

	ts, err := s.VideoProgress(ctx, "u1", "v1")
	require.NoError(t, err)
	assert.Equal(t, float64(45), ts, "后写覆盖先写，旧值不可再读到")

	// 底层也只有一条 u1_v1 记录
	all, ok, err := read[map[string]model.VideoProgress](s, KeyProgress)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, all, 2)

	ts, err = s.VideoProgress(ctx, "u1", "v3")
	require.NoError(t, err)
	assert.Zero(t, ts)
}

func TestSchedule_ReplaceNotMerge(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a := []model.ScheduleItem{{ID: "a", Day: "周一", TimeSlot: "08:00-09:40", CourseName: "高等数学"}}
	b := []model.ScheduleItem{{ID: "b", Day: "周三", TimeSlot: "10:00-11:40", CourseName: "大学物理"}}

	require.NoError(t, s.SaveSchedule(ctx, "u1", a))
	require.NoError(t, s.SaveSchedule(ctx, "u1", b))

	got, err := s.Schedule(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestMistakes_PrependNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	m1 := model.MistakeRecord{Topic: "量子物理", Question: model.QuizQuestion{Question: "第一题"}}
	m2 := model.MistakeRecord{Topic: "高阶函数", Question: model.QuizQuestion{Question: "第二题"}}

	require.NoError(t, s.SaveMistake(ctx, "u1", m1))
	require.NoError(t, s.SaveMistake(ctx, "u1", m2))

	got, err := s.Mistakes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "高阶函数", got[0].Topic)
	assert.Equal(t, "量子物理", got[1].Topic)
	assert.NotEmpty(t, got[0].ID)

	other, err := s.Mistakes(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateUserAvatar_SyncsSession(t *testing.T) {
	s, sess := newTestStore(t)
	ctx := context.Background()

	user, err := s.Login(ctx, "123456", "123456", model.RoleStudent)
	require.NoError(t, err)

	updated, err := s.UpdateUserAvatar(ctx, user.ID, "data:image/png;base64,xxxx")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,xxxx", updated.Avatar)

	current, err := sess.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, updated.Avatar, current.Avatar, "当前会话的头像同步更新")

	// 其他用户的头像更新不影响会话
	_, err = s.UpdateUserAvatar(ctx, "teacher_123456", "http://example.com/t.png")
	require.NoError(t, err)
	current, err = sess.Current()
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, updated.Avatar, current.Avatar)
}

func TestUpdateUserAvatar_UnknownUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "123456", "123456", model.RoleStudent)
	require.NoError(t, err)

	_, err = s.UpdateUserAvatar(ctx, "ghost", "http://example.com/a.png")
	assert.Error(t, err)
}

func TestQuizResultsAndReports(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveQuizResult(ctx, "u1", model.QuizResult{Topic: "线性代数", Score: 4, TotalQuestions: 5}))

	require.NoError(t, s.SaveReport(ctx, "u1", model.SavedReport{Title: "实验一", Content: "..."}))
	require.NoError(t, s.SaveReport(ctx, "u1", model.SavedReport{Title: "实验二", Content: "..."}))

	reports, err := s.Reports(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "实验二", reports[0].Title)
}

func TestUserStats_ShapeWithinBounds(t *testing.T) {
	s, _ := newTestStore(t)

	stats, err := s.UserStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stats.TotalStudyHours, 10)
	assert.Less(t, stats.TotalStudyHours, 60)
	assert.GreaterOrEqual(t, stats.QuizAccuracy, 60)
	assert.Less(t, stats.QuizAccuracy, 90)
	assert.Len(t, stats.WeakPoints, 2)
	assert.Len(t, stats.LearningTrend, 7)
}

func TestDelay_HonorsContext(t *testing.T) {
	kv := kvstore.New(afero.NewMemMapFs(), "data")
	s := New(kv, session.NewStore(kv), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Videos(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
