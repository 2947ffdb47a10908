package ailogstore

import (
	dbmodels "jd-generator/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.AiLog) (string, error)
	Update(id string, updMap map[string]any) error
	GetByID(id string) (*dbmodels.AiLog, error)
	List(page, limit int) ([]dbmodels.AiLog, int64, error)
}

// NewInstance при DB == nil журнал не ведется
func NewInstance(DB *gorm.DB) Provider {
	if DB == nil {
		return noop{}
	}
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.AiLog) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]any) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.AiLog{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.AiLog, error) {
	rec := dbmodels.AiLog{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(page, limit int) (list []dbmodels.AiLog, rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.AiLog{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	err = i.db.
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

type noop struct{}

func (noop) Save(rec dbmodels.AiLog) (string, error) {
	return "", nil
}

func (noop) Update(id string, updMap map[string]any) error {
	return nil
}

func (noop) GetByID(id string) (*dbmodels.AiLog, error) {
	return nil, nil
}

func (noop) List(page, limit int) ([]dbmodels.AiLog, int64, error) {
	return []dbmodels.AiLog{}, 0, nil
}
