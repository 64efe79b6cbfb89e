package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/models"
	"github.com/HyNS00/caffine-tracker/services"
)

// 자주 마신 음료 순위 개수
const topBeverageLimit = 5

// GetTimeline : 시간별 예상 카페인량 (기본 12시간)
func GetTimeline(c *gin.Context) {
	user, settings, ok := currentUser(c)
	if !ok {
		return
	}

	hours, err := strconv.Atoi(c.DefaultQuery("hours", "12"))
	if err != nil || hours < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hours는 0 이상의 정수여야 합니다"})
		return
	}

	now := time.Now()
	intakes := fetchRecentIntakes(user.ID, now)

	dataPoints := services.BuildTimeline(intakes, now, settings, hours)
	bedtime := services.NextBedtime(now, settings.BedHour, settings.BedMinute)

	c.JSON(http.StatusOK, models.CaffeineTimelineResponse{
		DataPoints:          dataPoints,
		CurrentTime:         now,
		Bedtime:             bedtime,
		TargetSleepCaffeine: settings.TargetSleepMg,
	})
}

// GetDailyStatistics : 일별 섭취 통계 (기본 7일, 오늘 포함 양 끝 포함)
func GetDailyStatistics(c *gin.Context) {
	user, settings, ok := currentUser(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days는 1 이상의 정수여야 합니다"})
		return
	}

	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// 오늘 포함 days일이므로 days-1일 전이 시작일
	startDate := endDate.AddDate(0, 0, -(days - 1))
	endOfPeriod := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)

	intakes := fetchIntakesBetween(user.ID, startDate, endOfPeriod)
	dailyStats, periodAverage := services.BuildDailyStats(intakes, startDate, days)

	c.JSON(http.StatusOK, models.DailyStatisticsResponse{
		Period: models.StatisticsPeriod{
			StartDate: startDate.Format("2006-01-02"),
			EndDate:   endDate.Format("2006-01-02"),
		},
		DailyStats:    dailyStats,
		PeriodAverage: periodAverage,
		DailyLimit:    settings.DailyLimitMg,
	})
}

// GetTopBeverages : 자주 마신 음료 순위 (기본 최근 7일)
func GetTopBeverages(c *gin.Context) {
	user, _, ok := currentUser(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days는 1 이상의 정수여야 합니다"})
		return
	}

	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDate := endDate.AddDate(0, 0, -(days - 1))
	endOfPeriod := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)

	intakes := fetchIntakesBetween(user.ID, startDate, endOfPeriod)
	stats := services.TopBeverages(intakes, topBeverageLimit)

	c.JSON(http.StatusOK, stats)
}
