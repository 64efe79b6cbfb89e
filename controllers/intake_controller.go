package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/middleware"
	"github.com/HyNS00/caffine-tracker/models"
)

// RecordPresetIntake : 프리셋 음료 섭취 기록
func RecordPresetIntake(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var beverage models.PresetBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return
	}

	var input models.IntakeCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 시간 입력이 없으면 현재 시각으로 설정
	consumedAt := time.Now()
	if input.ConsumedAt != nil {
		consumedAt = *input.ConsumedAt
	}

	beverageID := beverage.ID
	intake := models.CaffeineIntake{
		UserID:           userID,
		BeverageName:     beverage.Name,
		BrandName:        beverage.BrandName,
		Category:         beverage.Category,
		VolumeMl:         beverage.VolumeMl,
		CaffeineMg:       beverage.CaffeineMg,
		ConsumedAt:       consumedAt,
		SourceType:       models.BeverageTypePreset,
		SourceBeverageID: &beverageID,
	}

	if err := config.DB.Create(&intake).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "섭취 기록 저장 실패"})
		return
	}

	c.JSON(http.StatusCreated, intake)
}

// RecordCustomIntake : 커스텀 음료 섭취 기록
func RecordCustomIntake(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var beverage models.CustomBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return
	}

	// 권한 검증: 본인의 음료인지 확인
	if beverage.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "본인의 음료만 기록할 수 있습니다"})
		return
	}

	var input models.IntakeCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumedAt := time.Now()
	if input.ConsumedAt != nil {
		consumedAt = *input.ConsumedAt
	}

	beverageID := beverage.ID
	intake := models.CaffeineIntake{
		UserID:           userID,
		BeverageName:     beverage.Name,
		Category:         beverage.Category,
		VolumeMl:         beverage.VolumeMl,
		CaffeineMg:       beverage.CaffeineMg,
		ConsumedAt:       consumedAt,
		SourceType:       models.BeverageTypeCustom,
		SourceBeverageID: &beverageID,
	}

	if err := config.DB.Create(&intake).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "섭취 기록 저장 실패"})
		return
	}

	c.JSON(http.StatusCreated, intake)
}

// GetTodayIntakes : 오늘의 섭취 기록 목록
func GetTodayIntakes(c *gin.Context) {
	userID := middleware.GetUserID(c)

	intakes := fetchTodayIntakes(userID, time.Now())
	c.JSON(http.StatusOK, intakes)
}

// GetIntakeHistory : 최근 N일 섭취 기록 히스토리 (기본 7일)
func GetIntakeHistory(c *gin.Context) {
	userID := middleware.GetUserID(c)

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days는 1 이상의 정수여야 합니다"})
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := startOfDay.AddDate(0, 0, -(days - 1))

	intakes := fetchIntakesBetween(userID, start, now)
	c.JSON(http.StatusOK, intakes)
}

// DeleteIntake : 섭취 기록 삭제
func DeleteIntake(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var intake models.CaffeineIntake
	if err := config.DB.First(&intake, c.Param("intakeId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "섭취 기록을 찾을 수 없습니다"})
		return
	}

	if intake.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "본인의 기록만 삭제할 수 있습니다"})
		return
	}

	config.DB.Delete(&intake)
	c.Status(http.StatusNoContent)
}
