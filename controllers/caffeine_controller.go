package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/middleware"
	"github.com/HyNS00/caffine-tracker/models"
	"github.com/HyNS00/caffine-tracker/services"
)

// 감쇠 계산용 조회 윈도우
// 반감기 5시간 기준 24시간이면 잔존율이 4% 미만이라 그 이전 기록은 버려도 된다.
const lookbackHours = 24

// currentUser : 토큰의 사용자 조회 + 엔진 파라미터 변환
func currentUser(c *gin.Context) (*models.User, models.CaffeineSettings, bool) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다"})
		return nil, models.CaffeineSettings{}, false
	}

	settings, err := user.Settings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "취침 시각 설정이 잘못되었습니다"})
		return nil, models.CaffeineSettings{}, false
	}

	return &user, settings, true
}

// fetchRecentIntakes : 감쇠 계산용 최근 24시간 섭취 기록
func fetchRecentIntakes(userID uint, now time.Time) []models.CaffeineIntake {
	start := now.Add(-lookbackHours * time.Hour)

	var intakes []models.CaffeineIntake
	config.DB.Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, start, now).Find(&intakes)
	return intakes
}

// fetchIntakesBetween : 기간 내 섭취 기록
func fetchIntakesBetween(userID uint, start, end time.Time) []models.CaffeineIntake {
	var intakes []models.CaffeineIntake
	config.DB.Where("user_id = ? AND consumed_at BETWEEN ? AND ?", userID, start, end).
		Order("consumed_at DESC").Find(&intakes)
	return intakes
}

// fetchTodayIntakes : 오늘 달력 날짜의 섭취 기록 (양 끝 포함)
func fetchTodayIntakes(userID uint, now time.Time) []models.CaffeineIntake {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return fetchIntakesBetween(userID, startOfDay, endOfDay)
}

// GetCaffeineStatus : 현재 체내 카페인 상태 + 판정
func GetCaffeineStatus(c *gin.Context) {
	user, settings, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	intakes := fetchRecentIntakes(user.ID, now)
	todayIntakes := fetchTodayIntakes(user.ID, now)

	status, recommendation := services.CurrentStatus(intakes, todayIntakes, now, settings)

	c.JSON(http.StatusOK, models.CurrentCaffeineResponse{
		Status:         status,
		Settings:       models.SettingsFromUser(user),
		Recommendation: recommendation.Info(),
	})
}

// CheckPresetBeverage : 프리셋 음료 "마셔도 될까?" 체크
func CheckPresetBeverage(c *gin.Context) {
	user, settings, ok := currentUser(c)
	if !ok {
		return
	}

	var beverage models.PresetBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return
	}

	info := models.BeverageInfo{
		Name:       beverage.Name,
		BrandName:  beverage.BrandName,
		Category:   beverage.Category,
		VolumeMl:   beverage.VolumeMl,
		CaffeineMg: beverage.CaffeineMg,
	}

	respondDrinkCheck(c, user, settings, info)
}

// CheckCustomBeverage : 커스텀 음료 체크
func CheckCustomBeverage(c *gin.Context) {
	user, settings, ok := currentUser(c)
	if !ok {
		return
	}

	var beverage models.CustomBeverage
	if err := config.DB.First(&beverage, c.Param("beverageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "음료를 찾을 수 없습니다"})
		return
	}

	if beverage.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "본인의 음료만 체크할 수 있습니다"})
		return
	}

	info := models.BeverageInfo{
		Name:       beverage.Name,
		Category:   beverage.Category,
		VolumeMl:   beverage.VolumeMl,
		CaffeineMg: beverage.CaffeineMg,
	}

	respondDrinkCheck(c, user, settings, info)
}

// respondDrinkCheck : 전/후 비교 응답 조립
func respondDrinkCheck(c *gin.Context, user *models.User, settings models.CaffeineSettings, info models.BeverageInfo) {
	now := time.Now()
	intakes := fetchRecentIntakes(user.ID, now)
	todayIntakes := fetchTodayIntakes(user.ID, now)

	result := services.CheckDrink(intakes, todayIntakes, now, settings, info.CaffeineMg)

	c.JSON(http.StatusOK, models.DrinkCheckResponse{
		Beverage:       info,
		Before:         result.Before,
		After:          result.After,
		Settings:       models.SettingsFromUser(user),
		Recommendation: result.Recommendation.Info(),
		IsSafe:         result.IsSafe,
	})
}
