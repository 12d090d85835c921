package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"hitedu_backend/internal/mockdata"
	"hitedu_backend/internal/model"
)

// Data 数据库文件的整体结构，对应磁盘上的 db.json
type Data struct {
	Users       []model.User                     `json:"users"`
	Videos      []model.Video                    `json:"videos"`
	Progress    map[string]model.VideoProgress   `json:"progress"`
	Mistakes    map[string][]model.MistakeRecord `json:"mistakes"`
	Schedules   map[string][]model.ScheduleItem  `json:"schedules"`
	QuizResults map[string][]model.QuizResult    `json:"quizResults"`
	Reports     map[string][]model.SavedReport   `json:"reports"`
}

func defaultData() *Data {
	return &Data{
		Users:       mockdata.DefaultUsers(),
		Videos:      mockdata.DefaultVideos(),
		Progress:    map[string]model.VideoProgress{},
		Mistakes:    map[string][]model.MistakeRecord{},
		Schedules:   map[string][]model.ScheduleItem{},
		QuizResults: map[string][]model.QuizResult{},
		Reports:     map[string][]model.SavedReport{},
	}
}

// FileDB 互斥锁保护的 JSON 文件数据库。每次写操作整体落盘，
// 读写都在锁内，单进程使用。
type FileDB struct {
	path string
	mu   sync.Mutex
	data *Data
}

// Open 加载数据库文件；文件不存在时用种子数据创建
func Open(path string) (*FileDB, error) {
	db := &FileDB{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		data := &Data{}
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("filedb: parse %s: %w", path, err)
		}
		db.data = data
		db.normalize()
	case os.IsNotExist(err):
		db.data = defaultData()
		if err := db.save(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("filedb: open %s: %w", path, err)
	}

	return db, nil
}

// normalize 补齐旧文件中缺失的 map，避免后续写入 nil map
func (db *FileDB) normalize() {
	if db.data.Progress == nil {
		db.data.Progress = map[string]model.VideoProgress{}
	}
	if db.data.Mistakes == nil {
		db.data.Mistakes = map[string][]model.MistakeRecord{}
	}
	if db.data.Schedules == nil {
		db.data.Schedules = map[string][]model.ScheduleItem{}
	}
	if db.data.QuizResults == nil {
		db.data.QuizResults = map[string][]model.QuizResult{}
	}
	if db.data.Reports == nil {
		db.data.Reports = map[string][]model.SavedReport{}
	}
}

func (db *FileDB) save() error {
	raw, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("filedb: marshal: %w", err)
	}

	tmp := db.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("filedb: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, db.path); err != nil {
		return fmt.Errorf("filedb: rename: %w", err)
	}
	return nil
}

// View 在锁内执行只读访问
func (db *FileDB) View(fn func(*Data) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.data)
}

// Update 在锁内执行修改并落盘。fn 返回错误时不写文件。
func (db *FileDB) Update(fn func(*Data) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := fn(db.data); err != nil {
		return err
	}
	return db.save()
}
