package app

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "arecamart"

	hashedPassword := common.Sha256HashWithSalt(defaultPassword, common.GetSecretSalt())

	var operator domain.SysOpr
	err := a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Mobile:    "0000",
			Email:     "N/A",
			Username:  superUsername,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetLevel := !strings.EqualFold(operator.Level, "super")
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)

	if !resetPassword && !resetLevel && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetLevel {
		updates["level"] = "super"
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("levelReset", resetLevel),
		zap.Bool("statusEnabled", resetStatus))
}

func (a *Application) checkSettings() {
	defaultSettings := []domain.SysConfig{
		{Type: "marketplace", Name: "TrialDays", Value: "7", Remark: "Free trial length for new sellers"},
		{Type: "marketplace", Name: "OrderHistoryDays", Value: "365", Remark: "Days of order history kept before cleanup"},
		{Type: "scheduler", Name: "SweepHour", Value: "2", Remark: "Hour of day the subscription sweep runs"},
	}

	for sortid, setting := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", setting.Type, setting.Name).
			Count(&count)

		if count == 0 {
			setting.Sort = sortid
			a.gormDB.Create(&setting)
			zap.L().Info("initialized config",
				zap.String("key", setting.Type+"."+setting.Name),
				zap.String("default", setting.Value))
		}
	}
}

// checkCategories initializes the default storefront categories
func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{Code: "arecanut", Name: "Arecanut", Sort: 1},
		{Code: "farm-accessories", Name: "Farm Accessories", Sort: 2},
		{Code: "saplings", Name: "Saplings", Sort: 3},
		{Code: "fertilizers", Name: "Fertilizers", Sort: 4},
	}

	for _, cat := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("code = ?", cat.Code).Count(&count)
		if count == 0 {
			cat.ID = common.UUIDint64()
			cat.CreatedAt = time.Now()
			cat.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&cat).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("code", cat.Code), zap.Error(err))
			} else {
				zap.L().Info("initialized default category", zap.String("code", cat.Code), zap.String("name", cat.Name))
			}
		}
	}
}
