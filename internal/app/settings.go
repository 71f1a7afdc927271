package app

import (
	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// ConfigManager reads runtime settings from the sys_config table.
type ConfigManager struct {
	app *Application
}

func NewConfigManager(app *Application) *ConfigManager {
	return &ConfigManager{app: app}
}

func (cm *ConfigManager) getValue(category, name string) (string, bool) {
	var cfg domain.SysConfig
	err := cm.app.gormDB.
		Where("type = ? and name = ?", category, name).
		First(&cfg).Error
	if err != nil {
		return "", false
	}
	return cfg.Value, true
}

func (cm *ConfigManager) GetString(category, name string) string {
	v, _ := cm.getValue(category, name)
	return v
}

func (cm *ConfigManager) GetInt(category, name string) int {
	v, ok := cm.getValue(category, name)
	if !ok {
		return 0
	}
	return cast.ToInt(v)
}

func (cm *ConfigManager) GetInt64(category, name string) int64 {
	v, ok := cm.getValue(category, name)
	if !ok {
		return 0
	}
	return cast.ToInt64(v)
}

func (cm *ConfigManager) GetBool(category, name string) bool {
	v, ok := cm.getValue(category, name)
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// SetValue creates or updates a setting.
func (cm *ConfigManager) SetValue(category, name, value string) error {
	var cfg domain.SysConfig
	err := cm.app.gormDB.
		Where("type = ? and name = ?", category, name).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return cm.app.gormDB.Create(&domain.SysConfig{
			Type:  category,
			Name:  name,
			Value: value,
		}).Error
	}
	if err != nil {
		return err
	}
	return cm.app.gormDB.Model(&domain.SysConfig{}).
		Where("id = ?", cfg.ID).
		Update("value", value).Error
}
